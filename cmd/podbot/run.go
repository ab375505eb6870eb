package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	podbot "github.com/Willfwalker/Discord-Bot"
	"github.com/Willfwalker/Discord-Bot/discord"
	"github.com/Willfwalker/Discord-Bot/events"
	"github.com/Willfwalker/Discord-Bot/internal/logging"
	"github.com/Willfwalker/Discord-Bot/internal/metrics"
	"github.com/Willfwalker/Discord-Bot/strategy"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// overrides holds flag values that take precedence over the config file.
type overrides struct {
	prefix      string
	logLevel    string
	metricsAddr string
	natsURL     string
}

// loadConfig reads the config file, or the defaults when path is empty, and
// applies non-empty overrides.
func loadConfig(path string, o overrides) (podbot.Config, error) {
	cfg := podbot.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = podbot.LoadConfig(path); err != nil {
			return podbot.Config{}, err
		}
	}

	if o.prefix != "" {
		cfg.CommandPrefix = o.prefix
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.metricsAddr != "" {
		cfg.Metrics.Addr = o.metricsAddr
	}
	if o.natsURL != "" {
		cfg.NATS.URL = o.natsURL
	}

	if err := cfg.Validate(); err != nil {
		return podbot.Config{}, err
	}

	return cfg, nil
}

func run(parent context.Context, token string, cfg podbot.Config) error {
	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	strat, err := strategy.New(cfg.Strategy)
	if err != nil {
		return err
	}

	session, err := discord.New(token, discord.WithPrefix(cfg.CommandPrefix), discord.WithLogger(logger))
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	opts := []podbot.Option{
		podbot.WithLogger(logger),
		podbot.WithMetrics(metrics.NewPrometheus(registry, cfg.Metrics.Namespace)),
	}

	if cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("podbot"))
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nc.Close()

		publisher, err := events.NewNATS(nc, cfg.NATS.SubjectPrefix)
		if err != nil {
			return err
		}
		opts = append(opts, podbot.WithPublisher(publisher))
	}

	bot, err := podbot.NewBot(&cfg, session, session, strat, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		return err
	}
	logger.Info("podbot running", "prefix", cfg.CommandPrefix, "strategy", cfg.Strategy)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Metrics.Addr != "" {
		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("serving metrics", "addr", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}

			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	<-gctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	stopErr := bot.Stop(shutdownCtx)

	return errors.Join(g.Wait(), stopErr)
}
