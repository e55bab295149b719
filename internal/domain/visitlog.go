package domain

// EntityState marks whether an in-memory record corresponds to a stored one.
// The host platform's save pipeline inserts "new" records and updates
// "managed" ones, so records loaded from the document store must be tagged
// managed before they re-enter the UI layer — otherwise an edited log would
// be re-inserted as a duplicate on save.
type EntityState int

const (
	// StateNew marks a record that has not been persisted yet.
	StateNew EntityState = iota
	// StateManaged marks a record backed by a stored document.
	StateManaged
)

func (s EntityState) String() string {
	if s == StateManaged {
		return "managed"
	}
	return "new"
}

// VisitLog is the UI-facing visit log record. It carries a navigable handle
// to its parent visit; the persisted shape (visitlog.Document) stores only
// the serialized visit identifier. Identity is by ID; an empty ID means the
// record was never saved, but the state tag is authoritative for
// insert-vs-update disambiguation.
type VisitLog struct {
	ID          string
	Visit       *VisitRef
	Title       string
	Description string

	state EntityState
}

// NewVisitLog returns a blank record tagged as new.
func NewVisitLog() *VisitLog {
	return &VisitLog{state: StateNew}
}

// State returns the current entity-state tag.
func (l *VisitLog) State() EntityState { return l.state }

// IsNew reports whether the record is not yet backed by a stored document.
func (l *VisitLog) IsNew() bool { return l.state == StateNew }

// MarkManaged tags the record as corresponding to a stored document.
func (l *VisitLog) MarkManaged() { l.state = StateManaged }

// Label returns the human-readable instance name shown in UI lists.
func (l *VisitLog) Label() string { return l.Description }
