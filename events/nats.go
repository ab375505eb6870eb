package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "podbot"

// DefaultFlushTimeout bounds how long a publish waits for the server ack of the flush.
const DefaultFlushTimeout = 2 * time.Second

// ErrConnectionRequired is returned when the NATS connection is nil.
var ErrConnectionRequired = errors.New("NATS connection is required")

// NATSPublisher publishes distribution events as JSON on NATS subjects.
type NATSPublisher struct {
	conn         *nats.Conn
	prefix       string
	flushTimeout time.Duration
}

var _ types.EventPublisher = (*NATSPublisher)(nil)

// NewNATS creates a publisher on an existing connection.
//
// The connection stays owned by the caller; Close does not close it.
//
// Parameters:
//   - conn: Connected NATS client
//   - subjectPrefix: Subject prefix (DefaultSubjectPrefix when empty)
//
// Returns:
//   - *NATSPublisher: Initialized publisher
//   - error: ErrConnectionRequired when conn is nil
//
// Example:
//
//	nc, _ := nats.Connect(nats.DefaultURL)
//	pub, err := events.NewNATS(nc, "podbot")
//	bot, err := podbot.NewBot(&cfg, platform, platform, strat, podbot.WithPublisher(pub))
func NewNATS(conn *nats.Conn, subjectPrefix string) (*NATSPublisher, error) {
	if conn == nil {
		return nil, ErrConnectionRequired
	}
	if subjectPrefix == "" {
		subjectPrefix = DefaultSubjectPrefix
	}

	return &NATSPublisher{conn: conn, prefix: subjectPrefix, flushTimeout: DefaultFlushTimeout}, nil
}

// Subject returns the subject events of guildID are published on.
func (p *NATSPublisher) Subject(guildID string) string {
	return p.prefix + ".distribution." + guildID
}

// PublishDistribution publishes ev and flushes the connection.
func (p *NATSPublisher) PublishDistribution(ctx context.Context, ev types.DistributionEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode distribution event: %w", err)
	}

	subject := p.Subject(ev.GuildID)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	flushCtx, cancel := context.WithTimeout(ctx, p.flushTimeout)
	defer cancel()
	if err := p.conn.FlushWithContext(flushCtx); err != nil {
		return fmt.Errorf("failed to flush %s: %w", subject, err)
	}

	return nil
}

// Close is a no-op; the connection belongs to the caller.
func (p *NATSPublisher) Close() error {
	return nil
}

// NopPublisher discards all events.
type NopPublisher struct{}

var _ types.EventPublisher = (*NopPublisher)(nil)

// NewNop creates a publisher that discards events.
func NewNop() *NopPublisher {
	return &NopPublisher{}
}

// PublishDistribution discards the event.
func (n *NopPublisher) PublishDistribution(_ context.Context, _ types.DistributionEvent) error {
	return nil
}

// Close does nothing.
func (n *NopPublisher) Close() error {
	return nil
}
