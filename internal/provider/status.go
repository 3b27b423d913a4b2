package provider

// Status is the session status reported by the conferencing provider. It is used
// for logging only, the provider owns the actual session state machine.
type Status int

const (
	StatusIdle Status = iota
	StatusConnecting
	StatusInMeeting
	StatusReconnecting
	StatusFailed
	StatusEnded
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusConnecting:
		return "connecting"
	case StatusInMeeting:
		return "in_meeting"
	case StatusReconnecting:
		return "reconnecting"
	case StatusFailed:
		return "failed"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

func parseStatus(s string) Status {
	switch s {
	case "idle":
		return StatusIdle
	case "connecting":
		return StatusConnecting
	case "in_meeting":
		return StatusInMeeting
	case "reconnecting":
		return StatusReconnecting
	case "failed":
		return StatusFailed
	case "ended":
		return StatusEnded
	default:
		return StatusUnknown
	}
}
