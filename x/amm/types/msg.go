package types

// proto.Message plumbing for the hand-written message types. The module
// routes messages through the legacy amino handler, but sdk.Msg still
// requires these methods.

func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string {
	out, _ := ModuleCdc.MarshalJSON(msg)
	return string(out)
}
func (*MsgAddLiquidity) ProtoMessage() {}

func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string {
	out, _ := ModuleCdc.MarshalJSON(msg)
	return string(out)
}
func (*MsgRemoveLiquidity) ProtoMessage() {}

func (msg *MsgSwapExactIn) Reset() { *msg = MsgSwapExactIn{} }
func (msg *MsgSwapExactIn) String() string {
	out, _ := ModuleCdc.MarshalJSON(msg)
	return string(out)
}
func (*MsgSwapExactIn) ProtoMessage() {}
