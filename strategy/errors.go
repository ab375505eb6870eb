package strategy

import (
	"errors"

	"github.com/Willfwalker/Discord-Bot/types"
)

// Re-exported partition errors, so callers of this package need not import types.
var (
	// ErrNoLeaders indicates that no pod leads were provided.
	ErrNoLeaders = types.ErrNoLeaders

	// ErrNoCandidates indicates that no candidates were provided.
	ErrNoCandidates = types.ErrNoCandidates
)

// ErrUnknownStrategy is returned by New for an unregistered strategy name.
var ErrUnknownStrategy = errors.New("unknown pod strategy")
