package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The dashboard service exchanges protobuf well-known types only, so no
// generated message code is needed.

const (
	DashboardServiceName = "apar.v1.DashboardService"

	DashboardService_GetAdminDashboard_FullMethodName   = "/" + DashboardServiceName + "/GetAdminDashboard"
	DashboardService_GetUserDashboard_FullMethodName    = "/" + DashboardServiceName + "/GetUserDashboard"
	DashboardService_DeriveOverallStatus_FullMethodName = "/" + DashboardServiceName + "/DeriveOverallStatus"
)

type DashboardServiceServer interface {
	GetAdminDashboard(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetUserDashboard(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// DeriveOverallStatus takes item statuses as a list of strings and returns
	// the overall status as a string value.
	DeriveOverallStatus(context.Context, *structpb.ListValue) (*structpb.Value, error)
}

func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

func _DashboardService_GetAdminDashboard_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardServiceServer).GetAdminDashboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DashboardService_GetAdminDashboard_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DashboardServiceServer).GetAdminDashboard(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DashboardService_GetUserDashboard_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardServiceServer).GetUserDashboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DashboardService_GetUserDashboard_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DashboardServiceServer).GetUserDashboard(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DashboardService_DeriveOverallStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardServiceServer).DeriveOverallStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DashboardService_DeriveOverallStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DashboardServiceServer).DeriveOverallStatus(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DashboardServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAdminDashboard",
			Handler:    _DashboardService_GetAdminDashboard_Handler,
		},
		{
			MethodName: "GetUserDashboard",
			Handler:    _DashboardService_GetUserDashboard_Handler,
		},
		{
			MethodName: "DeriveOverallStatus",
			Handler:    _DashboardService_DeriveOverallStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "apar/v1/dashboard.proto",
}

type DashboardServiceClient interface {
	GetAdminDashboard(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetUserDashboard(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeriveOverallStatus(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.Value, error)
}

type dashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDashboardServiceClient(cc grpc.ClientConnInterface) DashboardServiceClient {
	return &dashboardServiceClient{cc}
}

func (c *dashboardServiceClient) GetAdminDashboard(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DashboardService_GetAdminDashboard_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) GetUserDashboard(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DashboardService_GetUserDashboard_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) DeriveOverallStatus(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, DashboardService_DeriveOverallStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
