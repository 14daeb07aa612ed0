package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fabricview/internal/config"
	"fabricview/internal/db"
	"fabricview/internal/enrichment/dnsname"
	"fabricview/internal/enrichment/snmpinfo"
	"fabricview/internal/httpapi"
	"fabricview/internal/manager"
	"fabricview/internal/metrics"
	"fabricview/internal/syncworker"
)

func main() {
	configPath := flag.String("config", os.Getenv("FABRICVIEW_CONFIG"), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := httpapi.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *db.Pool
	if cfg.DatabaseURL != "" {
		p, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer p.Close()
		if err := p.Queries().EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply schema")
		}
		pool = p
	}

	m := metrics.New()

	var mgr *manager.Manager
	if pool != nil {
		mgr = manager.New(logger, pool.Queries())
		if err := mgr.Load(ctx); err != nil {
			logger.Warn().Err(err).Msg("initial load failed, worker will retry")
		}

		opts := syncworker.Options{Interval: cfg.Sync.Interval.Std()}
		if cfg.Enrichment.ReverseDNS {
			opts.Resolver = dnsname.NewResolver(cfg.Enrichment.ResolverAddr)
		}
		if cfg.Enrichment.SNMP {
			opts.SNMP = snmpinfo.NewClient(snmpinfo.Config{
				Community: cfg.Enrichment.SNMPCommunity,
				Port:      cfg.Enrichment.SNMPPort,
				Timeout:   cfg.Enrichment.SNMPTimeout.Std(),
			})
		}
		worker := syncworker.New(logger, mgr, pool.Queries(), opts, m)
		go worker.Run(ctx)
	}

	h := httpapi.NewHandler(logger, pool, mgr, m)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("fabricview listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info().Msg("shutdown complete")
}
