package types

import "fmt"

// Hand-written proto.Message implementations for the message types. The
// module routes messages through its own msg server and encodes state with
// amino, so no generated marshalers are needed; these methods exist to
// satisfy the sdk.Msg interface.

func (msg *MsgSubmitRequest) Reset()         { *msg = MsgSubmitRequest{} }
func (msg *MsgSubmitRequest) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgSubmitRequest) ProtoMessage()  {}

func (msg *MsgSubmitRequestResponse) Reset()         { *msg = MsgSubmitRequestResponse{} }
func (msg *MsgSubmitRequestResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgSubmitRequestResponse) ProtoMessage()  {}

func (msg *MsgCompleteRequest) Reset()         { *msg = MsgCompleteRequest{} }
func (msg *MsgCompleteRequest) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgCompleteRequest) ProtoMessage()  {}

func (msg *MsgCompleteRequestResponse) Reset()         { *msg = MsgCompleteRequestResponse{} }
func (msg *MsgCompleteRequestResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgCompleteRequestResponse) ProtoMessage()  {}

func (msg *MsgForceTimeout) Reset()         { *msg = MsgForceTimeout{} }
func (msg *MsgForceTimeout) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgForceTimeout) ProtoMessage()  {}

func (msg *MsgForceTimeoutResponse) Reset()         { *msg = MsgForceTimeoutResponse{} }
func (msg *MsgForceTimeoutResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgForceTimeoutResponse) ProtoMessage()  {}

func (msg *MsgClaimRefund) Reset()         { *msg = MsgClaimRefund{} }
func (msg *MsgClaimRefund) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgClaimRefund) ProtoMessage()  {}

func (msg *MsgClaimRefundResponse) Reset()         { *msg = MsgClaimRefundResponse{} }
func (msg *MsgClaimRefundResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgClaimRefundResponse) ProtoMessage()  {}

func (msg *MsgApproveExecutor) Reset()         { *msg = MsgApproveExecutor{} }
func (msg *MsgApproveExecutor) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgApproveExecutor) ProtoMessage()  {}

func (msg *MsgApproveExecutorResponse) Reset()         { *msg = MsgApproveExecutorResponse{} }
func (msg *MsgApproveExecutorResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgApproveExecutorResponse) ProtoMessage()  {}

func (msg *MsgRevokeExecutor) Reset()         { *msg = MsgRevokeExecutor{} }
func (msg *MsgRevokeExecutor) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgRevokeExecutor) ProtoMessage()  {}

func (msg *MsgRevokeExecutorResponse) Reset()         { *msg = MsgRevokeExecutorResponse{} }
func (msg *MsgRevokeExecutorResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgRevokeExecutorResponse) ProtoMessage()  {}

func (msg *MsgWithdrawFees) Reset()         { *msg = MsgWithdrawFees{} }
func (msg *MsgWithdrawFees) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgWithdrawFees) ProtoMessage()  {}

func (msg *MsgWithdrawFeesResponse) Reset()         { *msg = MsgWithdrawFeesResponse{} }
func (msg *MsgWithdrawFeesResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgWithdrawFeesResponse) ProtoMessage()  {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()  {}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return fmt.Sprintf("%v", *msg) }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
