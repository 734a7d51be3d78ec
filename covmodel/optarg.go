package covmodel

import (
	"fmt"
	"math"
)

// OptArg describes one optional shape parameter of a model family:
// its name, default value and admissible interval.
type OptArg struct {
	Name    string
	Default float64
	Bounds  Bounds
}

// Bounds is a numeric interval with independently open or closed ends.
type Bounds struct {
	Lower, Upper         float64
	LowerOpen, UpperOpen bool
}

// Contains reports whether v lies inside the interval. NaN is never
// contained.
func (b Bounds) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if b.LowerOpen {
		if v <= b.Lower {
			return false
		}
	} else if v < b.Lower {
		return false
	}
	if b.UpperOpen {
		if v >= b.Upper {
			return false
		}
	} else if v > b.Upper {
		return false
	}
	return true
}

// String renders the interval in mathematical notation, e.g. "(0, 2]".
func (b Bounds) String() string {
	left, right := "[", "]"
	if b.LowerOpen {
		left = "("
	}
	if b.UpperOpen {
		right = ")"
	}
	return fmt.Sprintf("%s%v, %v%s", left, b.Lower, b.Upper, right)
}

// Severity classifies a validation finding.
type Severity int

const (
	// SeverityWarning marks a parameter inside its bounds but in a
	// numerically fragile region; computation proceeds.
	SeverityWarning Severity = iota
	// SeverityError marks a hard bound violation; constructors and
	// mutators reject it.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Issue is a single validation finding, decoupled from any output
// stream: callers decide whether and where to report it.
type Issue struct {
	Severity Severity
	Arg      string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Arg, i.Message)
}
