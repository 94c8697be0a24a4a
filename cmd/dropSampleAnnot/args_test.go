package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandListArgs(t *testing.T) {
	var args = []string{
		"--bam", "a.bam", "b.bam",
		"--sample", "[s1,", "s2]",
		"--gtf", "g.gtf",
		"-single_end=true",
		"--strandedness", "plus",
		"--output", "out.tsv",
	}
	assert.Equal(t, []string{
		"--bam", "a.bam", "--bam", "b.bam",
		"--sample", "[s1,", "--sample", "s2]",
		"--gtf", "g.gtf",
		"-single_end=true",
		"--strandedness", "plus",
		"--output", "out.tsv",
	}, ExpandListArgs(args, listFlagNames...))
}

func TestExpandListArgsTerminator(t *testing.T) {
	assert.Equal(t,
		[]string{"-bam", "a", "-bam", "b", "--", "c"},
		ExpandListArgs([]string{"-bam", "a", "b", "--", "c"}, "bam"),
	)
}

func TestListFlag(t *testing.T) {
	var l listFlag
	assert.NoError(t, l.Set("a"))
	assert.NoError(t, l.Set("b"))
	assert.Equal(t, listFlag{"a", "b"}, l)
	assert.Equal(t, "a b", l.String())
}

func TestExpandListArgsNegativeNumber(t *testing.T) {
	assert.Equal(t,
		[]string{"--sample", "-1", "--sample", "-.5", "--gtf", "g.gtf"},
		ExpandListArgs([]string{"--sample", "-1", "-.5", "--gtf", "g.gtf"}, listFlagNames...),
	)
	assert.False(t, isFlag("-1"))
	assert.False(t, isFlag("-0.25"))
	assert.True(t, isFlag("-bam"))
	assert.True(t, isFlag("--1x"))
}
