package reconcile

// Placeholder is the payload carried by entries synthesized to fill a gap.
const Placeholder = "<< Missing Line >>"

// MaxMarkerDigits is the widest sequence number a marker may carry.
const MaxMarkerDigits = 3

// MaxNumber is the largest sequence number a marker can carry.
const MaxNumber = 999

// LineEntry is one numbered paragraph extracted from a document.
// Number is a label, not a position: it may repeat or skip values.
type LineEntry struct {
	// Number is the sequence value parsed from the marker.
	Number int `json:"number"`

	// Payload is the text following the marker, possibly empty.
	Payload string `json:"payload"`
}

// SequenceReport is the result of analysing the numbers of a sequence.
type SequenceReport struct {
	// Missing lists, ascending, every number in [min, max] that was never seen.
	Missing []int `json:"missing"`

	// Duplicates lists, ascending, every number seen more than once.
	Duplicates []int `json:"duplicates"`
}

// IsClean reports whether the sequence has neither gaps nor duplicates.
func (r SequenceReport) IsClean() bool {
	return len(r.Missing) == 0 && len(r.Duplicates) == 0
}

// ReconciledSequence is the ordered output of Reconcile.
type ReconciledSequence []LineEntry

// Lines renders every entry with FormatLine.
func (s ReconciledSequence) Lines() []string {
	lines := make([]string, len(s))
	for i, e := range s {
		lines[i] = FormatLine(e.Number, e.Payload)
	}
	return lines
}

// Numbers returns the sequence numbers in output order.
func (s ReconciledSequence) Numbers() []int {
	nums := make([]int, len(s))
	for i, e := range s {
		nums[i] = e.Number
	}
	return nums
}

// Options controls which repairs Reconcile performs.
type Options struct {
	// FixMissing inserts placeholder entries for gaps between entries.
	FixMissing bool `json:"fix_missing"`

	// FixDuplicates moves later occurrences of a number to the next free number.
	FixDuplicates bool `json:"fix_duplicates"`
}

// ActionType represents the kind of change a plan makes.
type ActionType string

const (
	// ActionInsertPlaceholder adds a placeholder entry for a missing number.
	ActionInsertPlaceholder ActionType = "insert_placeholder"
	// ActionRenumber gives a duplicate entry a new number.
	ActionRenumber ActionType = "renumber"
)

// Action represents one change made by a fix.
type Action struct {
	// Type specifies the change.
	Type ActionType `json:"type"`

	// From is the original number (zero for placeholders).
	From int `json:"from,omitempty"`

	// To is the number in the reconciled sequence.
	To int `json:"to"`

	// Payload is the entry text carried to the new number.
	Payload string `json:"payload"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// ReconcilePlan contains the analysis, the reconciled sequence and its actions.
type ReconcilePlan struct {
	// Report is the analysis of the original entries.
	Report SequenceReport `json:"report"`

	// Sequence is the reconciled output.
	Sequence ReconciledSequence `json:"sequence"`

	// Actions lists the changes, in output order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalLines is the number of extracted entries.
	TotalLines int `json:"total_lines"`

	// Missing counts gaps found by analysis.
	Missing int `json:"missing"`

	// Duplicates counts distinct duplicated numbers found by analysis.
	Duplicates int `json:"duplicates"`

	// PlaceholdersInserted counts ActionInsertPlaceholder actions.
	PlaceholdersInserted int `json:"placeholders_inserted"`

	// Renumbered counts ActionRenumber actions.
	Renumbered int `json:"renumbered"`
}
