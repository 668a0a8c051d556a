package billing

import (
	"context"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
)

// Failer is implemented by responses that carry a business error. Such
// errors are expected outcomes and travel inside the response, transports
// decide how to render them.
type Failer interface {
	Failed() error
}

type ListParticipantsRequest struct{}

type ListParticipantsResponse struct {
	Participants []Participant
}

type EmitRequest struct {
	Amount int64
}

type TransferRequest struct {
	Src    string
	Dst    string
	Amount int64
}

type ReceiptResponse struct {
	Receipt Receipt
	Err     error
}

func (r ReceiptResponse) Failed() error { return r.Err }

type LongestHistoryCoinRequest struct{}

type CoinRequest struct {
	ID int64
}

type CoinResponse struct {
	Coin Coin
	Err  error
}

func (r CoinResponse) Failed() error { return r.Err }

type DigestRequest struct{}

type DigestResponse struct {
	Digest Digest
	Err    error
}

func (r DigestResponse) Failed() error { return r.Err }

type ProofRequest struct {
	ID int64
}

type ProofResponse struct {
	Proof Proof
	Err   error
}

func (r ProofResponse) Failed() error { return r.Err }

type Endpoints struct {
	ListParticipants   endpoint.Endpoint
	Emit               endpoint.Endpoint
	Transfer           endpoint.Endpoint
	LongestHistoryCoin endpoint.Endpoint
	Coin               endpoint.Endpoint
	Digest             endpoint.Endpoint
	Proof              endpoint.Endpoint
}

func MakeEndpoints(s Service, logger log.Logger) Endpoints {
	wrap := func(method string, e endpoint.Endpoint) endpoint.Endpoint {
		return loggingMiddleware(log.With(logger, "method", method))(e)
	}

	return Endpoints{
		ListParticipants:   wrap("ListParticipants", makeListParticipantsEndpoint(s)),
		Emit:               wrap("Emit", makeEmitEndpoint(s)),
		Transfer:           wrap("Transfer", makeTransferEndpoint(s)),
		LongestHistoryCoin: wrap("LongestHistoryCoin", makeLongestHistoryCoinEndpoint(s)),
		Coin:               wrap("Coin", makeCoinEndpoint(s)),
		Digest:             wrap("Digest", makeDigestEndpoint(s)),
		Proof:              wrap("Proof", makeProofEndpoint(s)),
	}
}

func makeListParticipantsEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		return ListParticipantsResponse{Participants: s.ListParticipants()}, nil
	}
}

func makeEmitEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(EmitRequest)
		receipt, err := s.Emit(req.Amount)
		return ReceiptResponse{Receipt: receipt, Err: err}, nil
	}
}

func makeTransferEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(TransferRequest)
		receipt, err := s.Transfer(req.Src, req.Dst, req.Amount)
		return ReceiptResponse{Receipt: receipt, Err: err}, nil
	}
}

func makeLongestHistoryCoinEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		coin, err := s.LongestHistoryCoin()
		return CoinResponse{Coin: coin, Err: err}, nil
	}
}

func makeCoinEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(CoinRequest)
		coin, err := s.Coin(req.ID)
		return CoinResponse{Coin: coin, Err: err}, nil
	}
}

func makeDigestEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		digest, err := s.Digest()
		return DigestResponse{Digest: digest, Err: err}, nil
	}
}

func makeProofEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ProofRequest)
		proof, err := s.Proof(req.ID)
		return ProofResponse{Proof: proof, Err: err}, nil
	}
}

func loggingMiddleware(logger log.Logger) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				keyvals := []interface{}{"took", time.Since(begin)}
				if f, ok := response.(Failer); ok && f.Failed() != nil {
					keyvals = append(keyvals, "failed", f.Failed())
				}
				if err != nil {
					keyvals = append(keyvals, "err", err)
				}
				logger.Log(keyvals...)
			}(time.Now())
			return next(ctx, request)
		}
	}
}
