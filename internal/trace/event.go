package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
	// KindError records a reported failure.
	KindError
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeDriver represents the whole invocation.
	ScopeDriver Scope = iota + 1
	// ScopePass represents one pipeline pass (load, lex, parse).
	ScopePass
	// ScopeFile represents facts about the loaded file.
	ScopeFile
	// ScopeToken represents single tokens.
	ScopeToken
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeToken:
		return "token"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // sequence number assigned by the tracer
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // span identifier (0 for points)
	ParentID uint64            // parent span (0 if root)
	Name     string            // e.g., "lex", "token"
	Detail   string            // optional detail message
	Extra    map[string]string // extensible key-value pairs
}
