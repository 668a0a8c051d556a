package billing

import (
	"context"
	"errors"

	"github.com/DE-labtory/billing/pb"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	kitgrpc "github.com/go-kit/kit/transport/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// grpcService serves the Billing gRPC service on top of Endpoints.
type grpcService struct {
	listParticipants   endpoint.Endpoint
	coinsEmission      kitgrpc.Handler
	moveCoins          kitgrpc.Handler
	longestHistoryCoin kitgrpc.Handler
}

func NewGrpcService(endpoints Endpoints, logger log.Logger) pb.BillingServer {
	opts := []kitgrpc.ServerOption{
		kitgrpc.ServerErrorLogger(logger),
	}

	return &grpcService{
		listParticipants: endpoints.ListParticipants,
		coinsEmission: kitgrpc.NewServer(
			endpoints.Emit,
			decodeEmissionAmount,
			encodeReceiptResponse,
			opts...,
		),
		moveCoins: kitgrpc.NewServer(
			endpoints.Transfer,
			decodeMoveCoinsTransaction,
			encodeReceiptResponse,
			opts...,
		),
		longestHistoryCoin: kitgrpc.NewServer(
			endpoints.LongestHistoryCoin,
			decodeNone(LongestHistoryCoinRequest{}),
			encodeCoinResponse,
			opts...,
		),
	}
}

func (s *grpcService) ListUsers(_ *pb.None, stream pb.Billing_ListUsersServer) error {
	response, err := s.listParticipants(stream.Context(), ListParticipantsRequest{})
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	for _, p := range response.(ListParticipantsResponse).Participants {
		profile := &pb.UserProfile{
			Name:   p.Name,
			Rating: p.Weight,
			Amount: p.Balance,
		}
		if err := stream.Send(profile); err != nil {
			return err
		}
	}
	return nil
}

func (s *grpcService) CoinsEmission(ctx context.Context, req *pb.EmissionAmount) (*pb.Response, error) {
	_, resp, err := s.coinsEmission.ServeGRPC(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.(*pb.Response), nil
}

func (s *grpcService) MoveCoins(ctx context.Context, req *pb.MoveCoinsTransaction) (*pb.Response, error) {
	_, resp, err := s.moveCoins.ServeGRPC(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.(*pb.Response), nil
}

func (s *grpcService) LongestHistoryCoin(ctx context.Context, req *pb.None) (*pb.Coin, error) {
	_, resp, err := s.longestHistoryCoin.ServeGRPC(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.(*pb.Coin), nil
}

func decodeEmissionAmount(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(*pb.EmissionAmount)
	return EmitRequest{Amount: req.GetAmount()}, nil
}

func decodeMoveCoinsTransaction(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(*pb.MoveCoinsTransaction)
	return TransferRequest{
		Src:    req.GetSrcUser(),
		Dst:    req.GetDstUser(),
		Amount: req.GetAmount(),
	}, nil
}

func decodeNone(request interface{}) kitgrpc.DecodeRequestFunc {
	return func(context.Context, interface{}) (interface{}, error) {
		return request, nil
	}
}

// failures are answered with status FAILED, never with a gRPC error
func encodeReceiptResponse(_ context.Context, response interface{}) (interface{}, error) {
	resp := response.(ReceiptResponse)
	if resp.Err != nil {
		return &pb.Response{
			Status:  pb.Response_FAILED,
			Comment: resp.Err.Error(),
		}, nil
	}
	return &pb.Response{
		Status:  pb.Response_OK,
		Comment: resp.Receipt.Message,
		Receipt: resp.Receipt.ID,
	}, nil
}

func encodeCoinResponse(_ context.Context, response interface{}) (interface{}, error) {
	resp := response.(CoinResponse)
	if resp.Err != nil {
		return nil, status.Error(grpcCode(resp.Err), resp.Err.Error())
	}
	return &pb.Coin{
		Id:      resp.Coin.ID,
		History: resp.Coin.History(),
		Holders: resp.Coin.Provenance,
	}, nil
}

func grpcCode(err error) codes.Code {
	switch {
	case errors.Is(err, ErrEmptyLedger), errors.Is(err, ErrUnknownCoin):
		return codes.NotFound
	default:
		return codes.Internal
	}
}
