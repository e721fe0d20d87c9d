package player

// Result is the tri-state outcome of one playback session. The integer
// values are stable: traversal logic and process exit codes branch on them.
type Result int

const (
	ResultSuccess Result = 0
	ResultError   Result = 1
	ResultStopped Result = 2
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	case ResultStopped:
		return "stopped by user"
	default:
		return "unknown"
	}
}
