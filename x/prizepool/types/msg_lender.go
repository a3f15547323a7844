package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetLenderPool{}
	_ sdk.Msg = &MsgSupplyToLender{}
	_ sdk.Msg = &MsgWithdrawFromLender{}
	_ sdk.Msg = &MsgHarvestYield{}
)

// MsgSetLenderPool configures the external lending pool a pool relends into.
// Replacing an existing lender requires all supplied principal withdrawn.
type MsgSetLenderPool struct {
	Admin      string `json:"admin"`
	PoolId     uint64 `json:"pool_id"`
	LenderPool string `json:"lender_pool"`
}

// NewMsgSetLenderPool creates a new MsgSetLenderPool instance
func NewMsgSetLenderPool(admin string, poolID uint64, lenderPool string) *MsgSetLenderPool {
	return &MsgSetLenderPool{Admin: admin, PoolId: poolID, LenderPool: lenderPool}
}

// Route implements the sdk.Msg interface
func (msg MsgSetLenderPool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetLenderPool) Type() string { return "set_lender_pool" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetLenderPool) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetLenderPool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetLenderPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrNotInitialized, "pool id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(msg.LenderPool); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid lender pool address: %s", err)
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgSetLenderPool) Reset() { *msg = MsgSetLenderPool{} }

// String implements the proto.Message interface
func (msg *MsgSetLenderPool) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetLenderPool) ProtoMessage() {}

// MsgSupplyToLender moves undeployed principal from the module account into
// the configured lender.
type MsgSupplyToLender struct {
	Admin  string   `json:"admin"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

// NewMsgSupplyToLender creates a new MsgSupplyToLender instance
func NewMsgSupplyToLender(admin string, poolID uint64, amount math.Int) *MsgSupplyToLender {
	return &MsgSupplyToLender{Admin: admin, PoolId: poolID, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgSupplyToLender) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSupplyToLender) Type() string { return "supply_to_lender" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSupplyToLender) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSupplyToLender) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSupplyToLender) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrNotInitialized, "pool id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "supply amount must be positive")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgSupplyToLender) Reset() { *msg = MsgSupplyToLender{} }

// String implements the proto.Message interface
func (msg *MsgSupplyToLender) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgSupplyToLender) ProtoMessage() {}

// MsgWithdrawFromLender pulls principal back from the lender. The realized
// balance delta must meet min_return or the whole message aborts.
type MsgWithdrawFromLender struct {
	Admin     string   `json:"admin"`
	PoolId    uint64   `json:"pool_id"`
	Amount    math.Int `json:"amount"`
	MinReturn math.Int `json:"min_return"`
}

// NewMsgWithdrawFromLender creates a new MsgWithdrawFromLender instance
func NewMsgWithdrawFromLender(admin string, poolID uint64, amount, minReturn math.Int) *MsgWithdrawFromLender {
	return &MsgWithdrawFromLender{Admin: admin, PoolId: poolID, Amount: amount, MinReturn: minReturn}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawFromLender) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdrawFromLender) Type() string { return "withdraw_from_lender" }

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdrawFromLender) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdrawFromLender) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdrawFromLender) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrNotInitialized, "pool id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "withdraw amount must be positive")
	}
	if msg.MinReturn.IsNil() || msg.MinReturn.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "min_return cannot be negative")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgWithdrawFromLender) Reset() { *msg = MsgWithdrawFromLender{} }

// String implements the proto.Message interface
func (msg *MsgWithdrawFromLender) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgWithdrawFromLender) ProtoMessage() {}

// MsgHarvestYield realizes accrued lender yield into the prize fund. Same
// slippage-guarded pattern as MsgWithdrawFromLender, but the realized delta
// grows the prize fund instead of reducing supplied principal.
type MsgHarvestYield struct {
	Admin     string   `json:"admin"`
	PoolId    uint64   `json:"pool_id"`
	Amount    math.Int `json:"amount"`
	MinReturn math.Int `json:"min_return"`
}

// NewMsgHarvestYield creates a new MsgHarvestYield instance
func NewMsgHarvestYield(admin string, poolID uint64, amount, minReturn math.Int) *MsgHarvestYield {
	return &MsgHarvestYield{Admin: admin, PoolId: poolID, Amount: amount, MinReturn: minReturn}
}

// Route implements the sdk.Msg interface
func (msg MsgHarvestYield) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgHarvestYield) Type() string { return "harvest_yield" }

// GetSigners implements the sdk.Msg interface
func (msg MsgHarvestYield) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgHarvestYield) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgHarvestYield) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrNotInitialized, "pool id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "harvest amount must be positive")
	}
	if msg.MinReturn.IsNil() || msg.MinReturn.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "min_return cannot be negative")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgHarvestYield) Reset() { *msg = MsgHarvestYield{} }

// String implements the proto.Message interface
func (msg *MsgHarvestYield) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgHarvestYield) ProtoMessage() {}
