package reconcile

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entriesOf builds entries whose payload names the original position.
func entriesOf(numbers ...int) []LineEntry {
	entries := make([]LineEntry, len(numbers))
	for i, n := range numbers {
		entries[i] = LineEntry{Number: n, Payload: payloadFor(i)}
	}
	return entries
}

func payloadFor(i int) string {
	return string(rune('a' + i))
}

func payloads(s ReconciledSequence) []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.Payload
	}
	return out
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		numbers    []int
		missing    []int
		duplicates []int
	}{
		{"Empty", nil, []int{}, []int{}},
		{"Contiguous", []int{1, 2, 3}, []int{}, []int{}},
		{"GapAndDuplicate", []int{1, 2, 4, 4, 5}, []int{3}, []int{4}},
		{"DuplicateCountedOnce", []int{5, 5, 5}, []int{}, []int{5}},
		{"SeveralDuplicatesSorted", []int{9, 3, 9, 3, 4}, []int{5, 6, 7, 8}, []int{3, 9}},
		{"StartsAboveOne", []int{10, 13}, []int{11, 12}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Analyze(entriesOf(tt.numbers...))
			assert.Equal(t, tt.missing, report.Missing)
			assert.Equal(t, tt.duplicates, report.Duplicates)
		})
	}
}

func TestAnalyze_MissingCompletesRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		numbers := make([]int, 1+rng.Intn(20))
		for j := range numbers {
			numbers[j] = 1 + rng.Intn(30)
		}
		report := Analyze(entriesOf(numbers...))

		set := make(map[int]struct{})
		for _, n := range numbers {
			set[n] = struct{}{}
		}
		union := append([]int{}, report.Missing...)
		for n := range set {
			union = append(union, n)
		}
		sort.Ints(union)

		lo, hi := union[0], union[len(union)-1]
		expected := make([]int, 0, hi-lo+1)
		for n := lo; n <= hi; n++ {
			expected = append(expected, n)
		}
		require.Equal(t, expected, union, "numbers=%v", numbers)
	}
}

func TestReconcile_Scenarios(t *testing.T) {
	t.Run("GapAndDuplicate", func(t *testing.T) {
		out := Reconcile(entriesOf(1, 2, 4, 4, 5), Options{FixMissing: true, FixDuplicates: true})

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, out.Numbers())
		assert.Equal(t, []string{"a", "b", Placeholder, "c", "d", "e"}, payloads(out))
	})

	t.Run("Empty", func(t *testing.T) {
		out := Reconcile(nil, Options{FixMissing: true, FixDuplicates: true})
		assert.Empty(t, out)
		assert.NotNil(t, out)
	})

	t.Run("TripleDuplicate", func(t *testing.T) {
		out := Reconcile(entriesOf(5, 5, 5), Options{FixDuplicates: true})

		assert.Equal(t, []int{5, 6, 7}, out.Numbers())
		assert.Equal(t, []string{"a", "b", "c"}, payloads(out))
	})

	t.Run("GapOnly", func(t *testing.T) {
		out := Reconcile(entriesOf(1, 3), Options{FixMissing: true})

		assert.Equal(t, []int{1, 2, 3}, out.Numbers())
		assert.Equal(t, []string{"a", Placeholder, "b"}, payloads(out))
	})
}

func TestReconcile_Identity(t *testing.T) {
	inputs := [][]int{
		{},
		{1, 2, 4, 4, 5},
		{5, 5, 5},
		{9, 1, 3},
	}
	for _, numbers := range inputs {
		entries := entriesOf(numbers...)
		out := Reconcile(entries, Options{})
		assert.Equal(t, ReconciledSequence(entries), out)
	}
}

func TestReconcile_MissingOnlyKeepsDuplicates(t *testing.T) {
	out := Reconcile(entriesOf(1, 3, 3), Options{FixMissing: true})

	assert.Equal(t, []int{1, 2, 3, 3}, out.Numbers())
	assert.Equal(t, []string{"a", Placeholder, "b", "c"}, payloads(out))
}

func TestReconcile_DuplicatesOnlySkipsGaps(t *testing.T) {
	// Without gap filling the duplicate starts its search after the last emitted number.
	out := Reconcile(entriesOf(1, 4, 4, 6), Options{FixDuplicates: true})

	assert.Equal(t, []int{1, 4, 5, 6}, out.Numbers())
	assert.Equal(t, []string{"a", "b", "c", "d"}, payloads(out))
}

func TestReconcile_DuplicateSkipsTakenNumbers(t *testing.T) {
	out := Reconcile(entriesOf(1, 2, 3, 2), Options{FixDuplicates: true})

	assert.Equal(t, []int{1, 2, 3, 4}, out.Numbers())
}

func TestReconcile_NoTrailingPlaceholders(t *testing.T) {
	out := Reconcile(entriesOf(2, 4), Options{FixMissing: true, FixDuplicates: true})

	assert.Equal(t, []int{2, 3, 4}, out.Numbers())
}

func TestReconcile_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		numbers := make([]int, 1+rng.Intn(15))
		for j := range numbers {
			numbers[j] = 1 + rng.Intn(20)
		}
		sort.Ints(numbers)
		entries := entriesOf(numbers...)
		report := Analyze(entries)

		t.Run("", func(t *testing.T) {
			out := Reconcile(entries, Options{FixMissing: true, FixDuplicates: true})
			nums := out.Numbers()

			for k := 1; k < len(nums); k++ {
				require.Equal(t, nums[k-1]+1, nums[k], "numbers=%v out=%v", numbers, nums)
			}

			// Original payloads survive in order, interleaved with placeholders only.
			var kept []string
			placeholders := 0
			for _, e := range out {
				if e.Payload == Placeholder {
					placeholders++
					continue
				}
				kept = append(kept, e.Payload)
			}
			var original []string
			for _, e := range entries {
				original = append(original, e.Payload)
			}
			require.Equal(t, original, kept)
			// Renumbered duplicates may land in a gap, so fewer placeholders are needed.
			require.LessOrEqual(t, placeholders, len(report.Missing))

			gapsOnly := Reconcile(entries, Options{FixMissing: true})
			gapNums := gapsOnly.Numbers()
			require.True(t, sort.IntsAreSorted(gapNums), "out=%v", gapNums)
			require.Len(t, gapsOnly, len(entries)+len(report.Missing))
			require.Equal(t, ReconciledSequence(entries), Reconcile(entries, Options{}))
		})
	}
}

func TestReconcile_UnsortedNeverReusesNumbers(t *testing.T) {
	entries := entriesOf(5, 1, 9)

	out := Reconcile(entries, Options{FixMissing: true, FixDuplicates: true})

	assert.Equal(t, []int{5, 1, 2, 3, 4, 6, 7, 8, 9}, out.Numbers())
	assert.Equal(t, "a", out[0].Payload)
	assert.Equal(t, "b", out[1].Payload)
	assert.Equal(t, "c", out[len(out)-1].Payload)

	plan := Plan(entries, Options{FixMissing: true, FixDuplicates: true})
	assert.Equal(t, 6, plan.Summary.PlaceholdersInserted)
}

func TestReconcile_UnsortedProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		numbers := make([]int, 1+rng.Intn(15))
		for j := range numbers {
			numbers[j] = 1 + rng.Intn(20)
		}
		entries := entriesOf(numbers...)

		out := Reconcile(entries, Options{FixMissing: true, FixDuplicates: true})

		seen := make(map[int]bool, len(out))
		var kept []string
		for _, e := range out {
			require.False(t, seen[e.Number], "numbers=%v out=%v", numbers, out.Numbers())
			seen[e.Number] = true
			if e.Payload != Placeholder {
				kept = append(kept, e.Payload)
			}
		}
		require.Equal(t, payloads(ReconciledSequence(entries)), kept)
	}
}

func TestAnalyze_LargeNumbers(t *testing.T) {
	report := Analyze(entriesOf(math.MaxInt-2, math.MaxInt))
	assert.Equal(t, []int{math.MaxInt - 1}, report.Missing)

	report = Analyze(entriesOf(math.MaxInt, math.MaxInt))
	assert.Empty(t, report.Missing)
	assert.Equal(t, []int{math.MaxInt}, report.Duplicates)

	out := Reconcile(entriesOf(math.MaxInt-2, math.MaxInt), Options{FixMissing: true})
	assert.Equal(t, []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}, out.Numbers())
}

func TestReconciledSequence_Lines(t *testing.T) {
	seq := ReconciledSequence{
		{Number: 1, Payload: "one"},
		{Number: 2, Payload: Placeholder},
		{Number: 3},
	}

	assert.Equal(t, []string{"L1: one", "L2: << Missing Line >>", "L3"}, seq.Lines())
}
