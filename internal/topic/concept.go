package topic

// Topic is a subject a session can be started on.
type Topic struct {
	ID          string
	Name        string
	Description string
}

// Concept is a single teachable idea within a topic. Prerequisites
// name other concepts in the same topic that must be mastered before
// this one may be probed.
type Concept struct {
	ID            string
	Name          string
	Description   string
	Keywords      []string
	Prerequisites []string
}

// Status represents a concept's state relative to the learner.
type Status int

const (
	StatusUnvisited   Status = iota // Never probed in this session
	StatusProbing                   // Under active questioning
	StatusMastered                  // Validated: sustained correct answers plus transfer
	StatusRemediating               // Dropped to simpler questions after repeated misses
	StatusStalled                   // Remediation budget exhausted; set aside
)

// Terminal reports whether a concept in this status receives no further
// questions this session.
func (s Status) Terminal() bool {
	return s == StatusMastered || s == StatusStalled
}

// String returns the stable lowercase name used in events and
// snapshots.
func (s Status) String() string {
	switch s {
	case StatusUnvisited:
		return "unvisited"
	case StatusProbing:
		return "probing"
	case StatusMastered:
		return "mastered"
	case StatusRemediating:
		return "remediating"
	case StatusStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// ParseStatus maps a stable name back to its Status.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "unvisited":
		return StatusUnvisited, true
	case "probing":
		return StatusProbing, true
	case "mastered":
		return StatusMastered, true
	case "remediating":
		return StatusRemediating, true
	case "stalled":
		return StatusStalled, true
	default:
		return StatusUnvisited, false
	}
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusUnvisited:
		return "○"
	case StatusProbing:
		return "◐"
	case StatusMastered:
		return "●"
	case StatusRemediating:
		return "◔"
	case StatusStalled:
		return "◌"
	default:
		return "?"
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusUnvisited:
		return "Unvisited"
	case StatusProbing:
		return "Probing"
	case StatusMastered:
		return "Mastered"
	case StatusRemediating:
		return "Remediating"
	case StatusStalled:
		return "Stalled"
	default:
		return "Unknown"
	}
}

// Transition records a single status change for a concept.
type Transition struct {
	ConceptID   string
	ConceptName string
	From        Status
	To          Status
	Trigger     string
}
