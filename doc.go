// Package podbot provides a chat bot that splits the people in a voice channel
// into balanced, randomly assigned pods, each run by one pod lead.
//
// On "!distribute <Channel>" the bot takes everyone connected to the named voice
// channel, separates the members holding the "Pod Lead" role from everyone
// else (bots are ignored), shuffles the rest and deals them into one pod per
// lead. Pod sizes differ by at most one. It then creates a voice channel per
// pod ("🎯 Pod 1", "🎯 Pod 2", ...) in the same category, moves every pod into
// its channel and posts a summary. Pod channels are deleted as soon as they
// are empty.
//
// # Quick Start
//
//	cfg := podbot.DefaultConfig()
//
//	session, err := discord.New(token, discord.WithPrefix(cfg.CommandPrefix))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bot, err := podbot.NewBot(&cfg, session, session, strategy.NewBalancedShuffle())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := bot.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer bot.Stop(context.Background())
//
// # Commands
//
//   - distribute <ChannelName> (alias distributepods): pods from one voice channel, with channels and moves
//   - distributeserver: pods from the whole server roster, summary only
//   - podhelp: command reference
//
// Distribution commands require the Administrator permission.
//
// # Lifecycle
//
// The bot owns one platform connection:
//
//	INIT → CONNECTING → READY → SHUTDOWN
//
// Events arriving outside READY are ignored. Stop cancels in-flight commands
// and waits for them up to the caller's deadline.
//
// # Observability
//
// Logging, metrics, hooks and an event publisher are optional:
//
//	bot, err := podbot.NewBot(&cfg, session, session, strat,
//	    podbot.WithLogger(logger),
//	    podbot.WithMetrics(collector),
//	    podbot.WithHooks(hooks),
//	    podbot.WithPublisher(publisher),
//	)
//
// See the types package for the Platform and Authorizer interfaces a new chat
// platform adapter must implement, and the testing package for an in-memory
// FakePlatform.
package podbot
