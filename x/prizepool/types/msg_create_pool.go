package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool initializes a new prize-savings pool for a denom and lock
// period. The signer becomes the pool admin.
type MsgCreatePool struct {
	Admin      string `json:"admin"`
	Denom      string `json:"denom"`
	PeriodDays uint32 `json:"period_days"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(admin, denom string, periodDays uint32) *MsgCreatePool {
	return &MsgCreatePool{
		Admin:      admin,
		Denom:      denom,
		PeriodDays: periodDays,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string { return "create_pool" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "invalid denom: %s", err)
	}
	if msg.PeriodDays < MinPeriodDays || msg.PeriodDays > MaxPeriodDays {
		return sdkerrors.Wrapf(ErrBadPeriod, "period_days %d outside [%d, %d]",
			msg.PeriodDays, MinPeriodDays, MaxPeriodDays)
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements the proto.Message interface
func (msg *MsgCreatePool) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgCreatePool) ProtoMessage() {}
