package config

// MovementStatus is the enemy's behavioral state.
type MovementStatus int

const (
	StatusIdle MovementStatus = iota
	StatusMoveToTarget
	StatusAttacking
	StatusDead
)

var statusNames = map[MovementStatus]string{
	StatusIdle:         "Idle",
	StatusMoveToTarget: "MoveToTarget",
	StatusAttacking:    "Attacking",
	StatusDead:         "Dead",
}

func (s MovementStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}
