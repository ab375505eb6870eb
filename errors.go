package podbot

import "github.com/Willfwalker/Discord-Bot/types"

// Sentinel errors returned by the Bot.
//
// They are re-exported from the types package so callers can match them with
// errors.Is without importing types.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrPlatformRequired is returned when the platform is nil.
	ErrPlatformRequired = types.ErrPlatformRequired

	// ErrAuthorizerRequired is returned when the authorizer is nil.
	ErrAuthorizerRequired = types.ErrAuthorizerRequired

	// ErrStrategyRequired is returned when the pod strategy is nil.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrAlreadyStarted is returned when Start is called on a running bot.
	ErrAlreadyStarted = types.ErrAlreadyStarted

	// ErrNotStarted is returned when Stop is called on a bot that is not running.
	ErrNotStarted = types.ErrNotStarted
)

// Distribution errors, classified for users by types.KindOf.
var (
	ErrNoLeaders           = types.ErrNoLeaders
	ErrNoCandidates        = types.ErrNoCandidates
	ErrRoleNotFound        = types.ErrRoleNotFound
	ErrScopeNotFound       = types.ErrScopeNotFound
	ErrScopeEmpty          = types.ErrScopeEmpty
	ErrPermissionDenied    = types.ErrPermissionDenied
	ErrMissingArgument     = types.ErrMissingArgument
	ErrChannelCreateFailed = types.ErrChannelCreateFailed
	ErrRelocationFailed    = types.ErrRelocationFailed
)
