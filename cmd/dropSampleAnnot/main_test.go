package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dropSampleAnnot/pkg/drop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refAnnotTSV = "RNA_ID\tCOUNT_MODE\tCOUNT_OVERLAPS\tHPO_TERMS\tGENE_COUNTS_FILE\n" +
	"ref1\tIntersectionStrict\tTRUE\tHP:0001\told.tsv\n"

func testInput() *drop.Input {
	return &drop.Input{
		Bam:          []string{"s1.bam", "s2.bam"},
		Sample:       []string{"[s1,", "s2]"},
		Strandedness: []string{"[plus,", "minus]"},
		SingleEnd:    []string{"[true,", "false]"},
		Gtf:          "gencode.gtf",
		CountFile:    "counts.tsv",
	}
}

func TestRunAnnot(t *testing.T) {
	var (
		dir    = t.TempDir()
		ref    = filepath.Join(dir, "ref.tsv")
		out    = filepath.Join(dir, "out.tsv")
		xlsx   = filepath.Join(dir, "out.xlsx")
		ptKeep = filepath.Join(dir, drop.PtAnnotName)
	)
	require.NoError(t, os.WriteFile(ref, []byte(refAnnotTSV), 0644))

	require.NoError(t, runAnnot(testInput(), ref, ptKeep, out, xlsx))
	assert.FileExists(t, ptKeep)
	assert.FileExists(t, xlsx)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "s1\ts1.bam\tNA\tNA\toutrider,fraser\tTrue\tIntersectionStrict\tTRUE\tNA\tplus\tHP:0001\tcounts.tsv\tgencode\tNA"))
	assert.True(t, strings.HasPrefix(lines[2], "s2\ts2.bam\tNA\tNA\toutrider,fraser\tFalse\t"))
	assert.True(t, strings.HasPrefix(lines[3], "ref1\tNA\t"))
	assert.Contains(t, lines[3], "counts.tsv")
}

func TestRunAnnotTempCleanup(t *testing.T) {
	var (
		dir = t.TempDir()
		ref = filepath.Join(dir, "ref.tsv")
		out = filepath.Join(dir, "out.tsv")
	)
	require.NoError(t, os.WriteFile(ref, []byte(refAnnotTSV), 0644))
	t.Setenv("TMPDIR", t.TempDir())

	require.NoError(t, runAnnot(testInput(), ref, "", out, ""))
	assert.FileExists(t, out)

	left, err := filepath.Glob(filepath.Join(os.TempDir(), drop.PtAnnotPattern))
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestRunAnnotErrors(t *testing.T) {
	var dir = t.TempDir()
	var in = testInput()
	in.Bam = in.Bam[:1]
	assert.Error(t, runAnnot(in, filepath.Join(dir, "ref.tsv"), "", filepath.Join(dir, "out.tsv"), ""))

	assert.Error(t, runAnnot(testInput(), filepath.Join(dir, "absent.tsv"), "", filepath.Join(dir, "out.tsv"), ""))
	assert.NoFileExists(t, filepath.Join(dir, "out.tsv"))
}
