package strategy

import (
	"fmt"
	"strings"

	"github.com/Willfwalker/Discord-Bot/types"
)

// Strategy names accepted by New.
const (
	NameShuffle    = "shuffle"
	NameRoundRobin = "roundrobin"
)

// Names returns the names accepted by New.
func Names() []string {
	return []string{NameShuffle, NameRoundRobin}
}

// New creates a built-in strategy by name.
//
// Names are matched case-insensitively; an empty name selects NameShuffle.
//
// Parameters:
//   - name: Strategy name (see Names)
//
// Returns:
//   - types.PodStrategy: The selected strategy
//   - error: ErrUnknownStrategy for unregistered names
//
// Example:
//
//	strat, err := strategy.New(cfg.Strategy)
func New(name string) (types.PodStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameShuffle:
		return NewBalancedShuffle(), nil
	case NameRoundRobin:
		return NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
