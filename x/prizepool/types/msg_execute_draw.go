package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgExecuteDraw{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgExecuteDraw selects one winner proportionally to tickets and pays out
// the prize fund. The winner's principal is untouched.
type MsgExecuteDraw struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

// NewMsgExecuteDraw creates a new MsgExecuteDraw instance
func NewMsgExecuteDraw(admin string, poolID uint64) *MsgExecuteDraw {
	return &MsgExecuteDraw{Admin: admin, PoolId: poolID}
}

// Route implements the sdk.Msg interface
func (msg MsgExecuteDraw) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgExecuteDraw) Type() string { return "execute_draw" }

// GetSigners implements the sdk.Msg interface
func (msg MsgExecuteDraw) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgExecuteDraw) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgExecuteDraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrNotInitialized, "pool id cannot be zero")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgExecuteDraw) Reset() { *msg = MsgExecuteDraw{} }

// String implements the proto.Message interface
func (msg *MsgExecuteDraw) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgExecuteDraw) ProtoMessage() {}

// MsgUpdateParams updates the module parameters. Governance-gated.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateParams) Type() string { return "update_params" }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}

// Reset implements the proto.Message interface
func (msg *MsgUpdateParams) Reset() { *msg = MsgUpdateParams{} }

// String implements the proto.Message interface
func (msg *MsgUpdateParams) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// ProtoMessage implements the proto.Message interface
func (*MsgUpdateParams) ProtoMessage() {}
