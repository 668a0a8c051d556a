package billing

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/DE-labtory/billing/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const DefaultDialTimeout = 3 * time.Second

const serviceName = "billing.Billing"

var ErrServerStopped = errors.New("grpc server is stopped")

type ServerOption func(*GrpcServer)

// WithReflection exposes the gRPC reflection service, meant for development.
func WithReflection() ServerOption {
	return func(s *GrpcServer) {
		s.reflection = true
	}
}

type GrpcServer struct {
	addr       Address
	server     *grpc.Server
	health     *health.Server
	reflection bool

	lock    sync.Mutex
	lis     net.Listener
	stopped bool
}

func NewServer(addr Address, service pb.BillingServer, opts ...ServerOption) *GrpcServer {
	s := &GrpcServer{
		addr:   addr,
		server: grpc.NewServer(),
		health: health.NewServer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	pb.RegisterBillingServer(s.server, service)
	healthpb.RegisterHealthServer(s.server, s.health)
	if s.reflection {
		reflection.Register(s.server)
	}
	return s
}

// Listen serves until Stop is called.
func (s *GrpcServer) Listen() error {
	s.lock.Lock()
	if s.stopped {
		s.lock.Unlock()
		return ErrServerStopped
	}
	lis, err := net.Listen("tcp", s.addr.String())
	if err != nil {
		s.lock.Unlock()
		return err
	}
	s.lis = lis
	s.health.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	s.lock.Unlock()

	if err := s.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

// Addr is the bound address, useful when listening on port 0.
func (s *GrpcServer) Addr() Address {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.lis == nil {
		return s.addr
	}
	addr, err := ToAddress(s.lis.Addr().String())
	if err != nil {
		return s.addr
	}
	return addr
}

func (s *GrpcServer) Stop() {
	s.lock.Lock()
	if s.stopped {
		s.lock.Unlock()
		return
	}
	s.stopped = true
	s.lock.Unlock()

	s.health.Shutdown()
	s.server.GracefulStop()
}

type DialOpts struct {
	// Addr is target address which grpc client is going to dial
	Addr Address

	// Duration for which to block while established a new connection
	Timeout time.Duration
}

type GrpcClient struct{}

func NewClient() *GrpcClient {
	return &GrpcClient{}
}

func (c GrpcClient) Dial(opts DialOpts) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, opts.Addr.String(), grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:    conn,
		billing: pb.NewBillingClient(conn),
	}, nil
}

// Client calls a remote ledger.
type Client struct {
	conn    *grpc.ClientConn
	billing pb.BillingClient
}

func (c *Client) ListParticipants(ctx context.Context) ([]Participant, error) {
	stream, err := c.billing.ListUsers(ctx, &pb.None{})
	if err != nil {
		return nil, err
	}

	participants := make([]Participant, 0)
	for {
		profile, err := stream.Recv()
		if err == io.EOF {
			return participants, nil
		}
		if err != nil {
			return nil, err
		}
		participants = append(participants, Participant{
			Name:    profile.GetName(),
			Weight:  profile.GetRating(),
			Balance: profile.GetAmount(),
		})
	}
}

func (c *Client) Emit(ctx context.Context, amount int64) (*pb.Response, error) {
	return c.billing.CoinsEmission(ctx, &pb.EmissionAmount{Amount: amount})
}

func (c *Client) Transfer(ctx context.Context, src, dst string, amount int64) (*pb.Response, error) {
	return c.billing.MoveCoins(ctx, &pb.MoveCoinsTransaction{
		SrcUser: src,
		DstUser: dst,
		Amount:  amount,
	})
}

func (c *Client) LongestHistoryCoin(ctx context.Context) (Coin, error) {
	coin, err := c.billing.LongestHistoryCoin(ctx, &pb.None{})
	if err != nil {
		return Coin{}, err
	}
	return Coin{ID: coin.GetId(), Provenance: coin.GetHolders()}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
