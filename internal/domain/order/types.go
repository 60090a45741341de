package order

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// allowedNext is the whole state machine as data. Transitions are single-step
// only; cancellation is possible from any non-terminal state.
var allowedNext = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusPaid},
	StatusPaid:      {},
	StatusCancelled: {},
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := allowedNext[st]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := allowedNext[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return len(allowedNext[s]) == 0 && s.IsValid()
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, n := range allowedNext[s] {
		if n == next {
			return true
		}
	}
	return false
}

// AllowedNext returns a copy of the allowed targets from s.
func (s Status) AllowedNext() []Status {
	next := allowedNext[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
