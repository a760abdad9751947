// Package reconcile validates and repairs sequentially numbered line markers.
//
// A document's paragraphs are reduced to an ordered list of LineEntry values
// (one per paragraph starting with an L<digits> marker). From there the package
// offers three pure operations:
//
//   - Extract: paragraph text -> []LineEntry, order and duplicates preserved.
//   - Analyze: []LineEntry -> SequenceReport (missing and duplicate numbers).
//   - Reconcile: []LineEntry -> ReconciledSequence, optionally filling gaps with
//     placeholder entries and moving later duplicates to the next free number.
//
// # Marker Format
//
// A marker is the letter L followed by one to three decimal digits, an optional
// colon and optional free text:
//
//	L1
//	L12: some text
//	L007 text without colon
//
// Markers with four or more digits are not extracted. Sequence numbers are
// assumed to be at most 999.
//
// # Plans
//
// Plan wraps Analyze and Reconcile and lists the individual actions
// (placeholder insertions, renumbered duplicates) so callers can show what a fix
// would do before writing a new document.
//
// # Usage
//
//	entries := reconcile.Extract(paragraphs)
//	report := reconcile.Analyze(entries)
//	fixed := reconcile.Reconcile(entries, reconcile.Options{FixMissing: true, FixDuplicates: true})
//	lines := fixed.Lines()
package reconcile
