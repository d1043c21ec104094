// Package v1alpha1 serves the talent administration gRPC services.
//
// The services carry google.protobuf.Struct payloads so clients can submit
// loosely typed forms and receive the path-addressed validation issues the
// schema reports for them.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully qualified service names
const (
	TalentServiceName = "talents.v1alpha1.TalentService"
	RarityServiceName = "talents.v1alpha1.RarityService"
	ReportServiceName = "talents.v1alpha1.ReportService"
)

type unaryFunc func(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// unary adapts a Struct-in, Struct-out method into a grpc.MethodDesc
func unary(service, method string, pick func(srv any) unaryFunc) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			call := pick(srv)
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(service, method),
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(ctx, req.(*structpb.Struct))
			})
		},
	}
}

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// TalentServiceServer is the server API for TalentService
type TalentServiceServer interface {
	ValidateTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListTalents(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewEffects(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RevalidateTalents(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func talentMethod(name string, pick func(TalentServiceServer) unaryFunc) grpc.MethodDesc {
	return unary(TalentServiceName, name, func(srv any) unaryFunc { return pick(srv.(TalentServiceServer)) })
}

// TalentServiceDesc describes TalentService
var TalentServiceDesc = grpc.ServiceDesc{
	ServiceName: TalentServiceName,
	HandlerType: (*TalentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		talentMethod("ValidateTalent", func(s TalentServiceServer) unaryFunc { return s.ValidateTalent }),
		talentMethod("CreateTalent", func(s TalentServiceServer) unaryFunc { return s.CreateTalent }),
		talentMethod("UpdateTalent", func(s TalentServiceServer) unaryFunc { return s.UpdateTalent }),
		talentMethod("GetTalent", func(s TalentServiceServer) unaryFunc { return s.GetTalent }),
		talentMethod("ListTalents", func(s TalentServiceServer) unaryFunc { return s.ListTalents }),
		talentMethod("DeleteTalent", func(s TalentServiceServer) unaryFunc { return s.DeleteTalent }),
		talentMethod("PreviewEffects", func(s TalentServiceServer) unaryFunc { return s.PreviewEffects }),
		talentMethod("RevalidateTalents", func(s TalentServiceServer) unaryFunc { return s.RevalidateTalents }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talents/v1alpha1/talent.proto",
}

// RegisterTalentServiceServer registers srv with s
func RegisterTalentServiceServer(s grpc.ServiceRegistrar, srv TalentServiceServer) {
	s.RegisterService(&TalentServiceDesc, srv)
}

// RarityServiceServer is the server API for RarityService
type RarityServiceServer interface {
	ListRarities(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateRarity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateRarity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteRarity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MoveRarity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetRarities(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func rarityMethod(name string, pick func(RarityServiceServer) unaryFunc) grpc.MethodDesc {
	return unary(RarityServiceName, name, func(srv any) unaryFunc { return pick(srv.(RarityServiceServer)) })
}

// RarityServiceDesc describes RarityService
var RarityServiceDesc = grpc.ServiceDesc{
	ServiceName: RarityServiceName,
	HandlerType: (*RarityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rarityMethod("ListRarities", func(s RarityServiceServer) unaryFunc { return s.ListRarities }),
		rarityMethod("CreateRarity", func(s RarityServiceServer) unaryFunc { return s.CreateRarity }),
		rarityMethod("UpdateRarity", func(s RarityServiceServer) unaryFunc { return s.UpdateRarity }),
		rarityMethod("DeleteRarity", func(s RarityServiceServer) unaryFunc { return s.DeleteRarity }),
		rarityMethod("MoveRarity", func(s RarityServiceServer) unaryFunc { return s.MoveRarity }),
		rarityMethod("ResetRarities", func(s RarityServiceServer) unaryFunc { return s.ResetRarities }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talents/v1alpha1/rarity.proto",
}

// RegisterRarityServiceServer registers srv with s
func RegisterRarityServiceServer(s grpc.ServiceRegistrar, srv RarityServiceServer) {
	s.RegisterService(&RarityServiceDesc, srv)
}

// ReportServiceServer is the server API for ReportService
type ReportServiceServer interface {
	ValidateReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListReports(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func reportMethod(name string, pick func(ReportServiceServer) unaryFunc) grpc.MethodDesc {
	return unary(ReportServiceName, name, func(srv any) unaryFunc { return pick(srv.(ReportServiceServer)) })
}

// ReportServiceDesc describes ReportService
var ReportServiceDesc = grpc.ServiceDesc{
	ServiceName: ReportServiceName,
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		reportMethod("ValidateReport", func(s ReportServiceServer) unaryFunc { return s.ValidateReport }),
		reportMethod("CreateReport", func(s ReportServiceServer) unaryFunc { return s.CreateReport }),
		reportMethod("ListReports", func(s ReportServiceServer) unaryFunc { return s.ListReports }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talents/v1alpha1/report.proto",
}

// RegisterReportServiceServer registers srv with s
func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportServiceDesc, srv)
}
