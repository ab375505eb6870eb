package types

import "errors"

// Sentinel errors for the podbot library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// External errors are wrapped with context using fmt.Errorf("%s: %w", msg, err).

// Bot errors - Public API errors returned by the Bot lifecycle.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPlatformRequired is returned when the platform is nil.
	ErrPlatformRequired = errors.New("platform is required")

	// ErrAuthorizerRequired is returned when the authorizer is nil.
	ErrAuthorizerRequired = errors.New("authorizer is required")

	// ErrStrategyRequired is returned when the pod strategy is nil.
	ErrStrategyRequired = errors.New("pod strategy is required")

	// ErrAlreadyStarted is returned when Start is called on a running bot.
	ErrAlreadyStarted = errors.New("bot already started")

	// ErrNotStarted is returned when Stop is called on a bot that is not running.
	ErrNotStarted = errors.New("bot not started")
)

// Partition errors - returned by PodStrategy implementations.
var (
	// ErrNoLeaders is returned when no pod leads are present in scope.
	ErrNoLeaders = errors.New("no pod leads in scope")

	// ErrNoCandidates is returned when no members are left to distribute.
	ErrNoCandidates = errors.New("no members to distribute")
)

// Scope errors - detected before the strategy runs.
var (
	// ErrRoleNotFound is returned when the pod lead role does not exist in the guild.
	ErrRoleNotFound = errors.New("pod lead role not found")

	// ErrScopeNotFound is returned when the named voice channel does not resolve.
	ErrScopeNotFound = errors.New("voice channel not found")

	// ErrScopeEmpty is returned when nobody is connected to the target channel.
	ErrScopeEmpty = errors.New("voice channel is empty")
)

// Command errors - issuer-facing refusals.
var (
	// ErrPermissionDenied is returned when the issuer lacks the required capability.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrMissingArgument is returned when a command needs a channel name and got none.
	ErrMissingArgument = errors.New("missing channel argument")
)

// Channel lifecycle errors.
var (
	// ErrChannelCreateFailed is returned when a pod channel cannot be created.
	ErrChannelCreateFailed = errors.New("failed to create pod channel")

	// ErrRelocationFailed wraps a per-member move failure. It never aborts a batch.
	ErrRelocationFailed = errors.New("failed to move member")
)

// FailureKind enumerates the user-visible failure categories.
type FailureKind int

const (
	// FailureNone means no failure.
	FailureNone FailureKind = iota
	// FailureUnknown is any error not covered below.
	FailureUnknown
	// FailureNoLeaders maps ErrNoLeaders.
	FailureNoLeaders
	// FailureNoCandidates maps ErrNoCandidates.
	FailureNoCandidates
	// FailureRoleNotFound maps ErrRoleNotFound.
	FailureRoleNotFound
	// FailureScopeNotFound maps ErrScopeNotFound.
	FailureScopeNotFound
	// FailureScopeEmpty maps ErrScopeEmpty.
	FailureScopeEmpty
	// FailurePermissionDenied maps ErrPermissionDenied.
	FailurePermissionDenied
	// FailureMissingArgument maps ErrMissingArgument.
	FailureMissingArgument
	// FailureChannelCreate maps ErrChannelCreateFailed.
	FailureChannelCreate
	// FailureRelocation maps ErrRelocationFailed.
	FailureRelocation
)

var failureKinds = []struct {
	err  error
	kind FailureKind
}{
	{ErrNoLeaders, FailureNoLeaders},
	{ErrNoCandidates, FailureNoCandidates},
	{ErrRoleNotFound, FailureRoleNotFound},
	{ErrScopeNotFound, FailureScopeNotFound},
	{ErrScopeEmpty, FailureScopeEmpty},
	{ErrPermissionDenied, FailurePermissionDenied},
	{ErrMissingArgument, FailureMissingArgument},
	{ErrChannelCreateFailed, FailureChannelCreate},
	{ErrRelocationFailed, FailureRelocation},
}

// KindOf classifies err into a FailureKind.
//
// Parameters:
//   - err: Error returned by the bot or a strategy (may be wrapped)
//
// Returns:
//   - FailureKind: FailureNone for nil, FailureUnknown for unrecognised errors
func KindOf(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	for _, fk := range failureKinds {
		if errors.Is(err, fk.err) {
			return fk.kind
		}
	}

	return FailureUnknown
}

// String returns the failure kind name.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "None"
	case FailureNoLeaders:
		return "NoLeaders"
	case FailureNoCandidates:
		return "NoCandidates"
	case FailureRoleNotFound:
		return "RoleNotFound"
	case FailureScopeNotFound:
		return "ScopeNotFound"
	case FailureScopeEmpty:
		return "ScopeEmpty"
	case FailurePermissionDenied:
		return "PermissionDenied"
	case FailureMissingArgument:
		return "MissingArgument"
	case FailureChannelCreate:
		return "ChannelCreateFailed"
	case FailureRelocation:
		return "RelocationFailed"
	default:
		return "Unknown"
	}
}
