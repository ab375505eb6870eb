package types

import "context"

// Hooks defines callbacks for Bot lifecycle events.
//
// All hooks are optional. They are invoked synchronously from the goroutine
// that produced the event, after the user-visible work is done, so a slow hook
// delays only that event. Hook errors are logged but never fail a command.
//
// Example:
//
//	hooks := &podbot.Hooks{
//	    OnDistributed: func(ctx context.Context, ev podbot.DistributionEvent) error {
//	        return audit.Record(ctx, ev)
//	    },
//	}
type Hooks struct {
	// OnDistributed is called after pods were formed and the summary was sent.
	OnDistributed func(ctx context.Context, ev DistributionEvent) error

	// OnStateChanged is called when the bot lifecycle state changes.
	OnStateChanged func(ctx context.Context, from, to State) error

	// OnError is called when a command fails or a background operation errors.
	OnError func(ctx context.Context, err error) error
}
