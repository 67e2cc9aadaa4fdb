package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a pipeline phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
	Err     error // set on PhaseEnd of a failed phase
}

// PhaseObserver receives phase events emitted during Tokenize.
type PhaseObserver func(PhaseEvent)

func (o PhaseObserver) start(name string) time.Time {
	if o != nil {
		o(PhaseEvent{Name: name, Status: PhaseStart})
	}
	return time.Now()
}

func (o PhaseObserver) end(name string, began time.Time, err error) {
	if o != nil {
		o(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(began), Err: err})
	}
}
