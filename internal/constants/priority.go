package constants

// TaskPriority is the closed set of todo priorities. The ordinal values are
// part of the API contract: clients send and receive the raw integers.
type TaskPriority int

const (
	PriorityLow TaskPriority = iota
	PriorityMedium
	PriorityHigh
)

func (p TaskPriority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p TaskPriority) Label() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}
