package types

// State represents the bot lifecycle state.
//
// States follow a fixed progression:
//
//	StateInit → StateConnecting → StateReady → StateShutdown
//
// A failed connection returns the bot to StateInit so Start can be retried.
type State int

const (
	// StateInit is the initial state before Start.
	StateInit State = iota

	// StateConnecting indicates the platform session is being opened.
	StateConnecting

	// StateReady indicates the bot is connected and handling commands.
	StateReady

	// StateShutdown indicates graceful shutdown is in progress or complete.
	StateShutdown
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateConnecting:
		return "Connecting"
	case StateReady:
		return "Ready"
	case StateShutdown:
		return "Shutdown"
	default:
		return "Unknown"
	}
}
