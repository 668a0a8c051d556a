// Message and service bindings for billing.proto, laid out as protoc-gen-go
// v1.3 emits them. The file descriptor is built in descriptor.go.
// source: billing.proto

package pb

import (
	context "context"
	fmt "fmt"
	math "math"

	proto "github.com/golang/protobuf/proto"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this generated file
// is compatible with the proto package it is being compiled against.
// A compilation error at this line likely means your copy of the
// proto package needs to be updated.
const _ = proto.ProtoPackageIsVersion3 // please upgrade the proto package

type Response_Status int32

const (
	Response_OK     Response_Status = 0
	Response_FAILED Response_Status = 1
)

var Response_Status_name = map[int32]string{
	0: "OK",
	1: "FAILED",
}

var Response_Status_value = map[string]int32{
	"OK":     0,
	"FAILED": 1,
}

func (x Response_Status) String() string {
	return proto.EnumName(Response_Status_name, int32(x))
}

func (Response_Status) EnumDescriptor() ([]byte, []int) {
	return fileDescriptor_billing, []int{4, 0}
}

type None struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *None) Reset()         { *m = None{} }
func (m *None) String() string { return proto.CompactTextString(m) }
func (*None) ProtoMessage()    {}
func (*None) Descriptor() ([]byte, []int) {
	return fileDescriptor_billing, []int{0}
}

func (m *None) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_None.Unmarshal(m, b)
}
func (m *None) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_None.Marshal(b, m, deterministic)
}
func (m *None) XXX_Merge(src proto.Message) {
	xxx_messageInfo_None.Merge(m, src)
}
func (m *None) XXX_Size() int {
	return xxx_messageInfo_None.Size(m)
}
func (m *None) XXX_DiscardUnknown() {
	xxx_messageInfo_None.DiscardUnknown(m)
}

var xxx_messageInfo_None proto.InternalMessageInfo

type UserProfile struct {
	Name                 string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Rating               int64    `protobuf:"varint,2,opt,name=rating,proto3" json:"rating,omitempty"`
	Amount               int64    `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *UserProfile) Reset()         { *m = UserProfile{} }
func (m *UserProfile) String() string { return proto.CompactTextString(m) }
func (*UserProfile) ProtoMessage()    {}
func (*UserProfile) Descriptor() ([]byte, []int) {
	return fileDescriptor_billing, []int{1}
}

func (m *UserProfile) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_UserProfile.Unmarshal(m, b)
}
func (m *UserProfile) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_UserProfile.Marshal(b, m, deterministic)
}
func (m *UserProfile) XXX_Merge(src proto.Message) {
	xxx_messageInfo_UserProfile.Merge(m, src)
}
func (m *UserProfile) XXX_Size() int {
	return xxx_messageInfo_UserProfile.Size(m)
}
func (m *UserProfile) XXX_DiscardUnknown() {
	xxx_messageInfo_UserProfile.DiscardUnknown(m)
}

var xxx_messageInfo_UserProfile proto.InternalMessageInfo

func (m *UserProfile) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *UserProfile) GetRating() int64 {
	if m != nil {
		return m.Rating
	}
	return 0
}

func (m *UserProfile) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type EmissionAmount struct {
	Amount               int64    `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *EmissionAmount) Reset()         { *m = EmissionAmount{} }
func (m *EmissionAmount) String() string { return proto.CompactTextString(m) }
func (*EmissionAmount) ProtoMessage()    {}
func (*EmissionAmount) Descriptor() ([]byte, []int) {
	return fileDescriptor_billing, []int{2}
}

func (m *EmissionAmount) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_EmissionAmount.Unmarshal(m, b)
}
func (m *EmissionAmount) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_EmissionAmount.Marshal(b, m, deterministic)
}
func (m *EmissionAmount) XXX_Merge(src proto.Message) {
	xxx_messageInfo_EmissionAmount.Merge(m, src)
}
func (m *EmissionAmount) XXX_Size() int {
	return xxx_messageInfo_EmissionAmount.Size(m)
}
func (m *EmissionAmount) XXX_DiscardUnknown() {
	xxx_messageInfo_EmissionAmount.DiscardUnknown(m)
}

var xxx_messageInfo_EmissionAmount proto.InternalMessageInfo

func (m *EmissionAmount) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type MoveCoinsTransaction struct {
	SrcUser              string   `protobuf:"bytes,1,opt,name=src_user,json=srcUser,proto3" json:"src_user,omitempty"`
	DstUser              string   `protobuf:"bytes,2,opt,name=dst_user,json=dstUser,proto3" json:"dst_user,omitempty"`
	Amount               int64    `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MoveCoinsTransaction) Reset()         { *m = MoveCoinsTransaction{} }
func (m *MoveCoinsTransaction) String() string { return proto.CompactTextString(m) }
func (*MoveCoinsTransaction) ProtoMessage()    {}
func (*MoveCoinsTransaction) Descriptor() ([]byte, []int) {
	return fileDescriptor_billing, []int{3}
}

func (m *MoveCoinsTransaction) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_MoveCoinsTransaction.Unmarshal(m, b)
}
func (m *MoveCoinsTransaction) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_MoveCoinsTransaction.Marshal(b, m, deterministic)
}
func (m *MoveCoinsTransaction) XXX_Merge(src proto.Message) {
	xxx_messageInfo_MoveCoinsTransaction.Merge(m, src)
}
func (m *MoveCoinsTransaction) XXX_Size() int {
	return xxx_messageInfo_MoveCoinsTransaction.Size(m)
}
func (m *MoveCoinsTransaction) XXX_DiscardUnknown() {
	xxx_messageInfo_MoveCoinsTransaction.DiscardUnknown(m)
}

var xxx_messageInfo_MoveCoinsTransaction proto.InternalMessageInfo

func (m *MoveCoinsTransaction) GetSrcUser() string {
	if m != nil {
		return m.SrcUser
	}
	return ""
}

func (m *MoveCoinsTransaction) GetDstUser() string {
	if m != nil {
		return m.DstUser
	}
	return ""
}

func (m *MoveCoinsTransaction) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type Response struct {
	Status               Response_Status `protobuf:"varint,1,opt,name=status,proto3,enum=billing.Response_Status" json:"status,omitempty"`
	Comment              string          `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	Receipt              string          `protobuf:"bytes,3,opt,name=receipt,proto3" json:"receipt,omitempty"`
	XXX_NoUnkeyedLiteral struct{}        `json:"-"`
	XXX_unrecognized     []byte          `json:"-"`
	XXX_sizecache        int32           `json:"-"`
}

func (m *Response) Reset()         { *m = Response{} }
func (m *Response) String() string { return proto.CompactTextString(m) }
func (*Response) ProtoMessage()    {}
func (*Response) Descriptor() ([]byte, []int) {
	return fileDescriptor_billing, []int{4}
}

func (m *Response) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Response.Unmarshal(m, b)
}
func (m *Response) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Response.Marshal(b, m, deterministic)
}
func (m *Response) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Response.Merge(m, src)
}
func (m *Response) XXX_Size() int {
	return xxx_messageInfo_Response.Size(m)
}
func (m *Response) XXX_DiscardUnknown() {
	xxx_messageInfo_Response.DiscardUnknown(m)
}

var xxx_messageInfo_Response proto.InternalMessageInfo

func (m *Response) GetStatus() Response_Status {
	if m != nil {
		return m.Status
	}
	return Response_OK
}

func (m *Response) GetComment() string {
	if m != nil {
		return m.Comment
	}
	return ""
}

func (m *Response) GetReceipt() string {
	if m != nil {
		return m.Receipt
	}
	return ""
}

type Coin struct {
	Id                   int64    `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	History              string   `protobuf:"bytes,2,opt,name=history,proto3" json:"history,omitempty"`
	Holders              []string `protobuf:"bytes,3,rep,name=holders,proto3" json:"holders,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Coin) Reset()         { *m = Coin{} }
func (m *Coin) String() string { return proto.CompactTextString(m) }
func (*Coin) ProtoMessage()    {}
func (*Coin) Descriptor() ([]byte, []int) {
	return fileDescriptor_billing, []int{5}
}

func (m *Coin) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Coin.Unmarshal(m, b)
}
func (m *Coin) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Coin.Marshal(b, m, deterministic)
}
func (m *Coin) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Coin.Merge(m, src)
}
func (m *Coin) XXX_Size() int {
	return xxx_messageInfo_Coin.Size(m)
}
func (m *Coin) XXX_DiscardUnknown() {
	xxx_messageInfo_Coin.DiscardUnknown(m)
}

var xxx_messageInfo_Coin proto.InternalMessageInfo

func (m *Coin) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Coin) GetHistory() string {
	if m != nil {
		return m.History
	}
	return ""
}

func (m *Coin) GetHolders() []string {
	if m != nil {
		return m.Holders
	}
	return nil
}

func init() {
	proto.RegisterEnum("billing.Response_Status", Response_Status_name, Response_Status_value)
	proto.RegisterType((*None)(nil), "billing.None")
	proto.RegisterType((*UserProfile)(nil), "billing.UserProfile")
	proto.RegisterType((*EmissionAmount)(nil), "billing.EmissionAmount")
	proto.RegisterType((*MoveCoinsTransaction)(nil), "billing.MoveCoinsTransaction")
	proto.RegisterType((*Response)(nil), "billing.Response")
	proto.RegisterType((*Coin)(nil), "billing.Coin")
}

func init() { proto.RegisterFile("billing.proto", fileDescriptor_billing) }

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion4

// BillingClient is the client API for Billing service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://godoc.org/google.golang.org/grpc#ClientConn.NewStream.
type BillingClient interface {
	ListUsers(ctx context.Context, in *None, opts ...grpc.CallOption) (Billing_ListUsersClient, error)
	CoinsEmission(ctx context.Context, in *EmissionAmount, opts ...grpc.CallOption) (*Response, error)
	MoveCoins(ctx context.Context, in *MoveCoinsTransaction, opts ...grpc.CallOption) (*Response, error)
	LongestHistoryCoin(ctx context.Context, in *None, opts ...grpc.CallOption) (*Coin, error)
}

type billingClient struct {
	cc *grpc.ClientConn
}

func NewBillingClient(cc *grpc.ClientConn) BillingClient {
	return &billingClient{cc}
}

func (c *billingClient) ListUsers(ctx context.Context, in *None, opts ...grpc.CallOption) (Billing_ListUsersClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Billing_serviceDesc.Streams[0], "/billing.Billing/ListUsers", opts...)
	if err != nil {
		return nil, err
	}
	x := &billingListUsersClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Billing_ListUsersClient interface {
	Recv() (*UserProfile, error)
	grpc.ClientStream
}

type billingListUsersClient struct {
	grpc.ClientStream
}

func (x *billingListUsersClient) Recv() (*UserProfile, error) {
	m := new(UserProfile)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *billingClient) CoinsEmission(ctx context.Context, in *EmissionAmount, opts ...grpc.CallOption) (*Response, error) {
	out := new(Response)
	err := c.cc.Invoke(ctx, "/billing.Billing/CoinsEmission", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billingClient) MoveCoins(ctx context.Context, in *MoveCoinsTransaction, opts ...grpc.CallOption) (*Response, error) {
	out := new(Response)
	err := c.cc.Invoke(ctx, "/billing.Billing/MoveCoins", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billingClient) LongestHistoryCoin(ctx context.Context, in *None, opts ...grpc.CallOption) (*Coin, error) {
	out := new(Coin)
	err := c.cc.Invoke(ctx, "/billing.Billing/LongestHistoryCoin", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BillingServer is the server API for Billing service.
type BillingServer interface {
	ListUsers(*None, Billing_ListUsersServer) error
	CoinsEmission(context.Context, *EmissionAmount) (*Response, error)
	MoveCoins(context.Context, *MoveCoinsTransaction) (*Response, error)
	LongestHistoryCoin(context.Context, *None) (*Coin, error)
}

// UnimplementedBillingServer can be embedded to have forward compatible implementations.
type UnimplementedBillingServer struct {
}

func (*UnimplementedBillingServer) ListUsers(req *None, srv Billing_ListUsersServer) error {
	return status.Errorf(codes.Unimplemented, "method ListUsers not implemented")
}
func (*UnimplementedBillingServer) CoinsEmission(ctx context.Context, req *EmissionAmount) (*Response, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CoinsEmission not implemented")
}
func (*UnimplementedBillingServer) MoveCoins(ctx context.Context, req *MoveCoinsTransaction) (*Response, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MoveCoins not implemented")
}
func (*UnimplementedBillingServer) LongestHistoryCoin(ctx context.Context, req *None) (*Coin, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LongestHistoryCoin not implemented")
}

func RegisterBillingServer(s *grpc.Server, srv BillingServer) {
	s.RegisterService(&_Billing_serviceDesc, srv)
}

func _Billing_ListUsers_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(None)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BillingServer).ListUsers(m, &billingListUsersServer{stream})
}

type Billing_ListUsersServer interface {
	Send(*UserProfile) error
	grpc.ServerStream
}

type billingListUsersServer struct {
	grpc.ServerStream
}

func (x *billingListUsersServer) Send(m *UserProfile) error {
	return x.ServerStream.SendMsg(m)
}

func _Billing_CoinsEmission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmissionAmount)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillingServer).CoinsEmission(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/billing.Billing/CoinsEmission",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillingServer).CoinsEmission(ctx, req.(*EmissionAmount))
	}
	return interceptor(ctx, in, info, handler)
}

func _Billing_MoveCoins_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MoveCoinsTransaction)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillingServer).MoveCoins(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/billing.Billing/MoveCoins",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillingServer).MoveCoins(ctx, req.(*MoveCoinsTransaction))
	}
	return interceptor(ctx, in, info, handler)
}

func _Billing_LongestHistoryCoin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(None)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillingServer).LongestHistoryCoin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/billing.Billing/LongestHistoryCoin",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillingServer).LongestHistoryCoin(ctx, req.(*None))
	}
	return interceptor(ctx, in, info, handler)
}

var _Billing_serviceDesc = grpc.ServiceDesc{
	ServiceName: "billing.Billing",
	HandlerType: (*BillingServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CoinsEmission",
			Handler:    _Billing_CoinsEmission_Handler,
		},
		{
			MethodName: "MoveCoins",
			Handler:    _Billing_MoveCoins_Handler,
		},
		{
			MethodName: "LongestHistoryCoin",
			Handler:    _Billing_LongestHistoryCoin_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ListUsers",
			Handler:       _Billing_ListUsers_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "billing.proto",
}
