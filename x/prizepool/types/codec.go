package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "prizepool/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "prizepool/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "prizepool/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgSetLenderPool{}, "prizepool/MsgSetLenderPool", nil)
	cdc.RegisterConcrete(&MsgSupplyToLender{}, "prizepool/MsgSupplyToLender", nil)
	cdc.RegisterConcrete(&MsgWithdrawFromLender{}, "prizepool/MsgWithdrawFromLender", nil)
	cdc.RegisterConcrete(&MsgHarvestYield{}, "prizepool/MsgHarvestYield", nil)
	cdc.RegisterConcrete(&MsgExecuteDraw{}, "prizepool/MsgExecuteDraw", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "prizepool/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgSetLenderPool{},
		&MsgSupplyToLender{},
		&MsgWithdrawFromLender{},
		&MsgHarvestYield{},
		&MsgExecuteDraw{},
		&MsgUpdateParams{},
	)
}

// ModuleCdc is the module codec. Stored records (pools, draws, params) and
// legacy sign bytes go through it.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
