package reconcile

import (
	"math"
	"sort"
)

// Analyze reports the missing and duplicate numbers of entries.
// Missing is computed over the unique values, so a duplicate is never also missing.
//
// Numbers are expected in [0, MaxNumber] as produced by Extract. Wider spans are
// handled but cost time and memory proportional to the span.
func Analyze(entries []LineEntry) SequenceReport {
	report := SequenceReport{Missing: []int{}, Duplicates: []int{}}
	if len(entries) == 0 {
		return report
	}

	counts := make(map[int]int, len(entries))
	lo, hi := entries[0].Number, entries[0].Number
	for _, e := range entries {
		counts[e.Number]++
		if e.Number < lo {
			lo = e.Number
		}
		if e.Number > hi {
			hi = e.Number
		}
	}

	// lo and hi are present, so stopping before hi never skips a gap and n never overflows.
	for n := lo; n < hi; n++ {
		if _, seen := counts[n]; !seen {
			report.Missing = append(report.Missing, n)
		}
	}

	for n, c := range counts {
		if c > 1 {
			report.Duplicates = append(report.Duplicates, n)
		}
	}
	sort.Ints(report.Duplicates)

	return report
}

// Reconcile renumbers entries in a single left-to-right pass.
//
// With FixMissing, gaps before each entry are filled with Placeholder entries.
// With FixDuplicates, an entry whose number was already emitted takes the
// smallest unused number at or after the next expected one; the first
// occurrence always keeps its number. With neither option the entries are
// returned unchanged. Nothing is synthesized past the last entry, and a
// placeholder never reuses a number already emitted, so with FixDuplicates no
// two output entries share a number even for unsorted input.
//
// Numbers are expected in [0, MaxNumber]; see Analyze.
func Reconcile(entries []LineEntry, opts Options) ReconciledSequence {
	return run(entries, opts, nil)
}

// run performs the reconciliation pass, reporting every change to record when
// it is non-nil.
func run(entries []LineEntry, opts Options, record func(Action)) ReconciledSequence {
	if len(entries) == 0 {
		return ReconciledSequence{}
	}

	out := make(ReconciledSequence, 0, len(entries))
	used := make(map[int]struct{}, len(entries))
	next := entries[0].Number

	for _, e := range entries {
		if opts.FixMissing {
			for ; next < e.Number; next++ {
				if _, taken := used[next]; taken {
					continue
				}
				out = append(out, LineEntry{Number: next, Payload: Placeholder})
				used[next] = struct{}{}
				if record != nil {
					record(Action{
						Type:    ActionInsertPlaceholder,
						To:      next,
						Payload: Placeholder,
						Reason:  "missing line",
					})
				}
			}
		}

		if _, dup := used[e.Number]; opts.FixDuplicates && dup {
			for {
				if _, taken := used[next]; !taken {
					break
				}
				next++
			}
			out = append(out, LineEntry{Number: next, Payload: e.Payload})
			used[next] = struct{}{}
			if record != nil {
				record(Action{
					Type:    ActionRenumber,
					From:    e.Number,
					To:      next,
					Payload: e.Payload,
					Reason:  "duplicate line",
				})
			}
			next++
			continue
		}

		out = append(out, e)
		used[e.Number] = struct{}{}
		if e.Number < math.MaxInt {
			next = e.Number + 1
		}
	}

	return out
}
