package domain

// JoinResult carries the event state observed inside the join/cancel
// transaction, so notification payloads use a consistent count.
type JoinResult struct {
	Event             Event
	ParticipantsCount int
}
