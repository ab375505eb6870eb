package types

// Logger is the structured logger the bot and its adapters write to.
//
// Arguments after the message are key-value pairs, as in log/slog:
//
//	logger.Warn("failed to move member", "member", m, "channel", ch.Name, "error", err)
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// Fatal logs and exits. Library code never calls it; cmd/podbot may.
	Fatal(msg string, keysAndValues ...any)
}
