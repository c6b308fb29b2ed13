package stay

import "errors"

var ErrInvalidTransition = errors.New("stay transition not allowed")

type Event string

const (
	EventCheckOut Event = "CHECK_OUT"
)

type Transition struct {
	From  Status
	To    Status
	Event Event
}

// Stays are created CHECKED_IN and have a single terminal edge.
var transitionsTable = []Transition{
	{From: StatusCheckedIn, To: StatusCheckedOut, Event: EventCheckOut},
}

func TransitionFor(from Status, ev Event) (Transition, bool) {
	for _, tr := range transitionsTable {
		if tr.From == from && tr.Event == ev {
			return tr, true
		}
	}
	return Transition{}, false
}
