package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
)

// MsgDeposit locks principal into a pool. Tickets amount x period_days are
// issued atomically with the credit.
type MsgDeposit struct {
	Depositor string   `json:"depositor"`
	PoolId    uint64   `json:"pool_id"`
	Amount    math.Int `json:"amount"`
}

// NewMsgDeposit creates a new MsgDeposit instance
func NewMsgDeposit(depositor string, poolID uint64, amount math.Int) *MsgDeposit {
	return &MsgDeposit{
		Depositor: depositor,
		PoolId:    poolID,
		Amount:    amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDeposit) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDeposit) Type() string { return "deposit" }

// GetSigners implements the sdk.Msg interface
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDeposit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid depositor address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrNotInitialized, "pool id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "deposit amount must be positive")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgDeposit) Reset() { *msg = MsgDeposit{} }

// String implements the proto.Message interface
func (msg *MsgDeposit) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgDeposit) ProtoMessage() {}

// MsgWithdraw returns principal to the depositor, burning tickets
// proportionally. A full withdrawal removes the depositor from the draw list.
type MsgWithdraw struct {
	Depositor string   `json:"depositor"`
	PoolId    uint64   `json:"pool_id"`
	Amount    math.Int `json:"amount"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance
func NewMsgWithdraw(depositor string, poolID uint64, amount math.Int) *MsgWithdraw {
	return &MsgWithdraw{
		Depositor: depositor,
		PoolId:    poolID,
		Amount:    amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdraw) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdraw) Type() string { return "withdraw" }

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdraw) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid depositor address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrNotInitialized, "pool id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "withdraw amount must be positive")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgWithdraw) Reset() { *msg = MsgWithdraw{} }

// String implements the proto.Message interface
func (msg *MsgWithdraw) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgWithdraw) ProtoMessage() {}
