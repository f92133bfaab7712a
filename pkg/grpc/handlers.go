package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// toStruct converts a report into a protobuf Struct through its JSON form.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func toStatus(err error) error {
	switch {
	case apar.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case apar.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	default:
		common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Call failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *DashboardServer) GetAdminDashboard(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	d, err := s.Apar.Report.AdminDashboard(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := toStruct(d)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

func (s *DashboardServer) GetUserDashboard(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	d, err := s.Apar.Report.UserDashboard(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := toStruct(d)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

func (s *DashboardServer) DeriveOverallStatus(_ context.Context, req *structpb.ListValue) (*structpb.Value, error) {
	verr := apar.NewValidationError()
	statuses := make([]models.ItemStatus, 0, len(req.GetValues()))

	for i, v := range req.GetValues() {
		itemStatus := models.ItemStatus(v.GetStringValue())
		if !slices.Contains(models.AllItemStatuses(), itemStatus) {
			verr.Add(fmt.Sprintf("items.%d.status", i), "is not a valid item status")
			continue
		}
		statuses = append(statuses, itemStatus)
	}
	if err := verr.OrNil(); err != nil {
		return nil, toStatus(err)
	}

	return structpb.NewStringValue(string(apar.DeriveOverallStatus(statuses))), nil
}
