package lines

import (
	"context"
	"errors"
	"testing"

	"line-checker/core/document"
	"line-checker/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// docx builds an in-memory document with one paragraph per line.
func docx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	data, err := document.WriteParagraphs(paragraphs)
	require.NoError(t, err)
	return data
}

func newTestService() *Service {
	return NewService(nil, "", Config{Workers: 2, OutputPrefix: "fixed/", Extension: ".docx"}, zap.NewNop())
}

func TestService_CheckDocument(t *testing.T) {
	svc := newTestService()

	t.Run("Issues", func(t *testing.T) {
		data := docx(t, "Episode 1", "L1: a", "L2: b", "L4: c", "L4: d", "L5: e")

		report, err := svc.CheckDocument("script.docx", data)
		require.NoError(t, err)

		assert.Equal(t, "script.docx", report.Filename)
		assert.Equal(t, StatusIssues, report.Status)
		assert.Equal(t, 5, report.TotalLines)
		assert.Equal(t, []int{3}, report.Missing)
		assert.Equal(t, []int{4}, report.Duplicates)
		assert.Len(t, report.Entries, 5)
	})

	t.Run("Clean", func(t *testing.T) {
		report, err := svc.CheckDocument("clean.docx", docx(t, "L1", "L2", "L3"))
		require.NoError(t, err)
		assert.Equal(t, StatusClean, report.Status)
	})

	t.Run("NoSequence", func(t *testing.T) {
		report, err := svc.CheckDocument("prose.docx", docx(t, "Just prose", "More prose"))
		require.NoError(t, err)

		assert.Equal(t, StatusEmpty, report.Status)
		assert.Equal(t, 0, report.TotalLines)
		assert.Empty(t, report.Missing)
		assert.Empty(t, report.Duplicates)
	})

	t.Run("Unreadable", func(t *testing.T) {
		_, err := svc.CheckDocument("broken.docx", []byte("not a zip"))
		assert.ErrorIs(t, err, document.ErrInvalidDocument)
		assert.ErrorContains(t, err, "broken.docx")
	})
}

func TestService_FixDocument(t *testing.T) {
	svc := newTestService()
	data := docx(t, "Title", "L1: a", "L2: b", "L4: c", "L4: d", "L5: e")

	result, err := svc.FixDocument("script.docx", data, reconcile.Options{FixMissing: true, FixDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, "fixed_script.docx", result.OutputName)
	assert.Equal(t, 1, result.Plan.Summary.PlaceholdersInserted)
	assert.Equal(t, 2, result.Plan.Summary.Renumbered)

	paragraphs, err := document.ReadParagraphsBytes(result.Document)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"L1: a",
		"L2: b",
		"L3: << Missing Line >>",
		"L4: c",
		"L5: d",
		"L6: e",
	}, paragraphs)
}

func TestService_FixDocument_NoOptions(t *testing.T) {
	svc := newTestService()
	data := docx(t, "L1: a", "L3", "L3: b")

	result, err := svc.FixDocument("script.docx", data, reconcile.Options{})
	require.NoError(t, err)
	assert.False(t, result.Plan.HasChanges())

	paragraphs, err := document.ReadParagraphsBytes(result.Document)
	require.NoError(t, err)
	assert.Equal(t, []string{"L1: a", "L3", "L3: b"}, paragraphs)
}

func TestService_CheckBatch(t *testing.T) {
	svc := newTestService()

	uploads := []Upload{
		BytesUpload("one.docx", docx(t, "L1", "L3")),
		BytesUpload("broken.docx", []byte("garbage")),
		{Name: "unreachable.docx", Load: func(context.Context) ([]byte, error) { return nil, errors.New("connection reset") }},
		BytesUpload("two.docx", docx(t, "L5", "L5", "L5")),
	}

	items := svc.CheckBatch(context.Background(), uploads)
	require.Len(t, items, 4)

	assert.Equal(t, "one.docx", items[0].Filename)
	require.NotNil(t, items[0].Report)
	assert.Equal(t, []int{2}, items[0].Report.Missing)

	assert.Equal(t, "broken.docx", items[1].Filename)
	assert.Nil(t, items[1].Report)
	assert.NotEmpty(t, items[1].Error)

	assert.Equal(t, "connection reset", items[2].Error)

	require.NotNil(t, items[3].Report)
	assert.Equal(t, []int{5}, items[3].Report.Duplicates)
	assert.Empty(t, items[3].Error)
}

func TestService_CheckBatch_Cancelled(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := svc.CheckBatch(ctx, []Upload{BytesUpload("one.docx", docx(t, "L1"))})
	require.Len(t, items, 1)
	assert.Equal(t, context.Canceled.Error(), items[0].Error)
}

func TestService_FixBatch(t *testing.T) {
	svc := newTestService()

	items := svc.FixBatch(context.Background(), []Upload{
		BytesUpload("a.docx", docx(t, "L1", "L3")),
		BytesUpload("b.docx", []byte("garbage")),
	}, reconcile.Options{FixMissing: true})
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Fix)
	assert.Equal(t, []int{1, 2, 3}, items[0].Fix.Plan.Sequence.Numbers())
	assert.Nil(t, items[1].Fix)
	assert.NotEmpty(t, items[1].Error)
}

func TestService_FixBatch_ReportMatchesCheck(t *testing.T) {
	svc := newTestService()
	data := docx(t, "L1: a", "L2: b", "L4: c", "L4: d", "L5: e")

	want, err := svc.CheckDocument("ep.docx", data)
	require.NoError(t, err)

	items := svc.FixBatch(context.Background(), []Upload{BytesUpload("ep.docx", data)}, reconcile.Options{FixMissing: true, FixDuplicates: true})
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Fix)

	assert.Equal(t, want, items[0].Report)
	assert.Equal(t, want.Missing, items[0].Fix.Plan.Report.Missing)
	assert.Equal(t, want.Duplicates, items[0].Fix.Plan.Report.Duplicates)
}

func TestSummarize(t *testing.T) {
	items := []BatchItem{
		{Filename: "a.docx", Report: &DocumentReport{TotalLines: 5, Missing: []int{3}, Duplicates: []int{4}}},
		{Filename: "b.docx", Report: &DocumentReport{TotalLines: 2, Missing: []int{}, Duplicates: []int{}}},
		{Filename: "c.docx", Error: "failed to read c.docx"},
	}

	assert.Equal(t, []SummaryRow{
		{Filename: "a.docx", TotalLines: 5, Missing: "L3", Duplicates: "L4"},
		{Filename: "b.docx", TotalLines: 2, Missing: "None", Duplicates: "None"},
		{Filename: "c.docx", Missing: "None", Duplicates: "None", Error: "failed to read c.docx"},
	}, Summarize(items))
}
