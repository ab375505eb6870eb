package hooks

import (
	"context"

	"github.com/Willfwalker/Discord-Bot/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.DistributionEvent) error = (*NopHooks)(nil).OnDistributed
	_ func(context.Context, types.State, types.State) error = (*NopHooks)(nil).OnStateChanged
	_ func(context.Context, error) error                    = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnDistributed:  h.OnDistributed,
		OnStateChanged: h.OnStateChanged,
		OnError:        h.OnError,
	}
}

// Fill returns a copy of h where every nil callback is replaced by a no-op.
func Fill(h *types.Hooks) *types.Hooks {
	nop := NewNop()
	if h == nil {
		return &nop
	}

	out := *h
	if out.OnDistributed == nil {
		out.OnDistributed = nop.OnDistributed
	}
	if out.OnStateChanged == nil {
		out.OnStateChanged = nop.OnStateChanged
	}
	if out.OnError == nil {
		out.OnError = nop.OnError
	}

	return &out
}

// OnDistributed is a no-op implementation.
func (h *NopHooks) OnDistributed(ctx context.Context, ev types.DistributionEvent) error {
	return nil
}

// OnStateChanged is a no-op implementation.
func (h *NopHooks) OnStateChanged(ctx context.Context, from, to types.State) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
