package podbot

// Option configures a Bot with optional dependencies.
type Option func(*botOptions)

// botOptions holds optional Bot configuration.
type botOptions struct {
	hooks     *Hooks
	metrics   MetricsCollector
	logger    Logger
	publisher EventPublisher
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions (nil callbacks are skipped)
//
// Returns:
//   - Option: Functional option for NewBot
//
// Example:
//
//	hooks := &podbot.Hooks{
//	    OnDistributed: func(ctx context.Context, ev podbot.DistributionEvent) error {
//	        log.Printf("%d pods formed in %s", len(ev.Distribution.Pods), ev.Scope)
//	        return nil
//	    },
//	}
//	bot, err := podbot.NewBot(&cfg, platform, platform, strat, podbot.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *botOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewBot
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "podbot")
//	bot, err := podbot.NewBot(&cfg, platform, platform, strat, podbot.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *botOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewBot
//
// Example:
//
//	bot, err := podbot.NewBot(&cfg, platform, platform, strat, podbot.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger Logger) Option {
	return func(o *botOptions) {
		o.logger = logger
	}
}

// WithPublisher sets the sink for distribution events.
//
// Parameters:
//   - publisher: EventPublisher implementation (see package events)
//
// Returns:
//   - Option: Functional option for NewBot
//
// Example:
//
//	pub, _ := events.NewNATS(nc, "podbot")
//	bot, err := podbot.NewBot(&cfg, platform, platform, strat, podbot.WithPublisher(pub))
func WithPublisher(publisher EventPublisher) Option {
	return func(o *botOptions) {
		o.publisher = publisher
	}
}
