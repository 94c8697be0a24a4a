package drop

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Merge stacks the patient rows on top of the reference rows.
//
// The reference GENE_COUNTS_FILE column is replaced by countFile, and the patient rows take
// COUNT_OVERLAPS, COUNT_MODE and HPO_TERMS from the first reference row. The merged title is the
// patient title followed by any reference-only columns. Both inputs are modified.
func Merge(pt, ref *Table, countFile string) (*Table, error) {
	if len(ref.Rows) == 0 {
		return nil, errors.New("reference annotation has no rows")
	}
	for _, col := range SharedTitle {
		if !lo.Contains(ref.Title, col) {
			return nil, errors.Errorf("reference annotation lacks column %s", col)
		}
	}

	ref.SetColumn(GeneCountsFile, countFile)
	for _, col := range SharedTitle {
		pt.SetColumn(col, ref.Value(0, col))
	}

	var merged = &Table{
		Title: lo.Uniq(append(append([]string{}, pt.Title...), ref.Title...)),
		Rows:  make([]map[string]string, 0, len(pt.Rows)+len(ref.Rows)),
	}
	merged.Rows = append(merged.Rows, pt.Rows...)
	merged.Rows = append(merged.Rows, ref.Rows...)

	var ids = lo.Map(merged.Rows, func(row map[string]string, _ int) string {
		return row[RnaID]
	})
	if dup := lo.FindDuplicates(ids); len(dup) > 0 {
		slog.Warn("duplicate RNA_ID in merged annotation", "RNA_ID", dup)
	}

	return merged, nil
}

// MergeFiles loads both tables, merges them and saves the result to output.
func MergeFiles(ptAnnot, refAnnot, countFile, output string) (*Table, error) {
	pt, err := LoadTable(ptAnnot)
	if err != nil {
		return nil, errors.Wrap(err, "load patient annotation")
	}
	ref, err := LoadTable(refAnnot)
	if err != nil {
		return nil, errors.Wrap(err, "load reference annotation")
	}

	merged, err := Merge(pt, ref, countFile)
	if err != nil {
		return nil, errors.Wrapf(err, "merge %s", refAnnot)
	}
	slog.Info("merged annotation", "patient", len(pt.Rows), "reference", len(ref.Rows), "columns", len(merged.Title))

	return merged, merged.Save(output)
}
