package navigation

// NaviStatus is the current mode of the navigation state machine.
type NaviStatus int

const (
	StatusNormal        NaviStatus = 0
	StatusLost          NaviStatus = 1
	StatusObstacleAvoid NaviStatus = 2
	StatusStop          NaviStatus = 3
	StatusStandby       NaviStatus = 4
	StatusManual        NaviStatus = 5
	StatusLostRecovery  NaviStatus = 6
)

// String returns the telemetry label for the status, or "unknown" for
// values outside the enumeration.
func (s NaviStatus) String() string {
	switch s {
	case StatusNormal:
		return "NORMAL"
	case StatusLost:
		return "LOST"
	case StatusObstacleAvoid:
		return "OBSTACLE_AVOID"
	case StatusStop:
		return "STOP"
	case StatusStandby:
		return "STANDBY"
	case StatusManual:
		return "MANUAL"
	case StatusLostRecovery:
		return "LOST_RECOVERY"
	default:
		return "unknown"
	}
}

// IsValid returns true if the status is a known value.
func (s NaviStatus) IsValid() bool {
	return s >= StatusNormal && s <= StatusLostRecovery
}

// MarshalText encodes the status as its label so it reads naturally in
// JSON telemetry.
func (s NaviStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
