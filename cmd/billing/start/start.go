package start

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DE-labtory/billing"
	"github.com/DE-labtory/billing/api"
	"github.com/DE-labtory/billing/config"
	"github.com/DE-labtory/billing/log"
	"github.com/kyokomi/emoji"
	"github.com/urfave/cli"
)

const shutdownTimeout = 5 * time.Second

func Cmd() cli.Command {
	return cli.Command{
		Name:      "start",
		Usage:     "Start ledger node serving gRPC and HTTP",
		UsageText: "billing start",
		Action: func(c *cli.Context) error {
			return startBilling(config.Get(), c.GlobalBool("debug"))
		},
	}
}

func startBilling(conf *config.Config, debug bool) error {
	if err := log.SetLevel(conf.Log.Level); err != nil {
		return err
	}
	if debug {
		log.SetToDebug()
	}
	if conf.Log.File != "" {
		if err := log.EnableFileLogger(true, conf.Log.File); err != nil {
			return err
		}
	}

	seed := make([]billing.Participant, 0, len(conf.Ledger.Participants))
	for _, p := range conf.Ledger.Participants {
		seed = append(seed, billing.Participant{Name: p.Name, Weight: p.Weight})
	}

	tracer := billing.NewMemCacheTracer()
	ledger, err := billing.New(seed, billing.WithTracer(tracer))
	if err != nil {
		return err
	}

	addr, err := billing.ToAddress(conf.Identity.Address)
	if err != nil {
		return err
	}

	endpoints := billing.MakeEndpoints(ledger, log.With("component", "endpoint"))

	var opts []billing.ServerOption
	if conf.IsDevelopment() {
		opts = append(opts, billing.WithReflection())
	}
	grpcServer := billing.NewServer(addr, billing.NewGrpcService(endpoints, log.With("component", "grpc")), opts...)
	httpServer := &http.Server{
		Addr:    conf.Http.Address,
		Handler: api.NewApiHandler(endpoints, log.With("component", "http")),
	}

	errc := make(chan error, 2)
	go func() {
		log.Info("msg", "grpc server started", "address", addr.String(), "environment", conf.Environment)
		errc <- grpcServer.Listen()
	}()
	go func() {
		log.Info("msg", "http server started", "address", conf.Http.Address)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errc <- err
		}
	}()
	emoji.Printf(":moneybag: ledger is running with %d participants\n", len(seed))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info("msg", "shutting down", "signal", s.String())
	case err = <-errc:
		log.Error("msg", "server closed", "err", err)
	}

	grpcServer.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(ctx); shutdownErr != nil {
		log.Warn("msg", "http shutdown failed", "err", shutdownErr)
	}

	tracer.Trace()
	return err
}
