package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/lifeinvader-ads/internal/api/client"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printCatalogTable(w io.Writer, entries []domain.CatalogEntry) error {
	tw := newTabWriter(w)
	tw.writef("NAME\tTYPE\tCATEGORY\tDESCRIPTION\n")
	for i := range entries {
		tw.writef("%s\t%s\t%s\t%s\n",
			entries[i].Name,
			entries[i].Type,
			entries[i].DisplayCategory,
			truncate(entries[i].Description, 50),
		)
	}
	return tw.finish()
}

func printCategoriesTable(w io.Writer, cats []apiclient.CategoryCount) error {
	tw := newTabWriter(w)
	tw.writef("KEY\tCATEGORY\tTEMPLATES\n")
	for i := range cats {
		tw.writef("%s\t%s\t%d\n", cats[i].Category, cats[i].Display, cats[i].Count)
	}
	return tw.finish()
}

func printCategoryDetail(w io.Writer, r *apiclient.CategoryResponse) error {
	tw := newTabWriter(w)
	tw.writef("Category:\t%s (%s)\n", r.Display, r.Category)
	tw.writef("Ad Type:\t%s\n", r.AdType)
	tw.writef("Pattern:\t%s\n", r.FormatPattern)
	if r.Rule != "" {
		tw.writef("Rule:\t%s\n", r.Rule)
	}
	return tw.finish()
}

func printFeedbackTable(w io.Writer, entries []domain.FeedbackEntry) error {
	tw := newTabWriter(w)
	tw.writef("ID\tCATEGORY\tTYPE\tINPUT\tCORRECTION\tCREATED\n")
	for i := range entries {
		e := &entries[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Category,
			e.AdType,
			truncate(e.OriginalInput, 30),
			truncate(e.UserCorrection, 40),
			e.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printFeedbackDetail(w io.Writer, e *domain.FeedbackEntry) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", e.ID)
	tw.writef("Category:\t%s\n", e.Category)
	tw.writef("Ad Type:\t%s\n", e.AdType)
	tw.writef("Pattern:\t%s\n", e.FormatPattern)
	tw.writef("Input:\t%s\n", e.OriginalInput)
	if e.AIResponse != "" {
		tw.writef("Formatter Output:\t%s\n", e.AIResponse)
	}
	tw.writef("Correction:\t%s\n", e.UserCorrection)
	tw.writef("Created:\t%s\n", e.Timestamp.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
