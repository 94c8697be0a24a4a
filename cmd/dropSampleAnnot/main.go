package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"dropSampleAnnot/pkg/drop"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"
)

// flag
var (
	bam          listFlag
	sample       listFlag
	strandedness listFlag
	singleEnd    listFlag

	gtf = flag.String(
		"gtf",
		"",
		"Transcript annotation file in gtf format",
	)
	countFile = flag.String(
		"count_file",
		"",
		"A tsv file of gene counts for all processed samples",
	)
	refAnnot = flag.String(
		"ref_annot",
		"",
		"Path to reference annotation tsv",
	)
	output = flag.String(
		"output",
		"",
		"Path to save to",
	)
	ptAnnot = flag.String(
		"pt_annot",
		"",
		"keep patient annotation at this path, e.g. "+drop.PtAnnotName+", default a removed temp file",
	)
	xlsxOut = flag.String(
		"xlsx",
		"",
		"also save merged annotation as xlsx",
	)
)

var listFlagNames = []string{"bam", "sample", "strandedness", "single_end"}

func init() {
	flag.Var(&bam, "bam", "bam files for the patient")
	flag.Var(&sample, "sample", "corresponding sample name")
	flag.Var(&strandedness, "strandedness", "strandedness of RNA")
	flag.Var(&singleEnd, "single_end", "is the sample paired end?")
}

func main() {
	simpleUtil.CheckErr(flag.CommandLine.Parse(ExpandListArgs(os.Args[1:], listFlagNames...)))
	version.LogVersion()

	for _, name := range []string{"gtf", "count_file", "ref_annot", "output"} {
		if flag.Lookup(name).Value.String() == "" {
			flag.PrintDefaults()
			log.Fatalf("-%s is required", name)
		}
	}
	if len(bam) == 0 || len(sample) == 0 || len(strandedness) == 0 || len(singleEnd) == 0 {
		flag.PrintDefaults()
		log.Fatal("-bam/-sample/-strandedness/-single_end required")
	}

	var input = &drop.Input{
		Bam:          bam,
		Sample:       sample,
		Strandedness: strandedness,
		SingleEnd:    singleEnd,
		Gtf:          *gtf,
		CountFile:    *countFile,
	}
	simpleUtil.CheckErr(runAnnot(input, *refAnnot, *ptAnnot, *output, *xlsxOut))
}

// runAnnot builds the patient table, merges it with refAnnot and writes output.
// An empty ptAnnotPath puts the patient table in a temp file removed on return.
func runAnnot(input *drop.Input, refAnnotPath, ptAnnotPath, outputPath, xlsxPath string) error {
	records, err := input.Records()
	if err != nil {
		return err
	}

	if ptAnnotPath == "" {
		tmp, err := os.CreateTemp("", drop.PtAnnotPattern)
		if err != nil {
			return err
		}
		ptAnnotPath = tmp.Name()
		defer os.Remove(ptAnnotPath)
		if err = tmp.Close(); err != nil {
			return err
		}
	}

	log.Printf("write patient annotation: %s", ptAnnotPath)
	if err = drop.WritePtAnnot(ptAnnotPath, records); err != nil {
		return err
	}

	log.Printf("merge %s -> %s", refAnnotPath, outputPath)
	merged, err := drop.MergeFiles(ptAnnotPath, refAnnotPath, input.CountFile, outputPath)
	if err != nil {
		return err
	}

	if xlsxPath != "" {
		slog.Info("SaveAs", "xlsx", xlsxPath)
		return merged.SaveXlsx(xlsxPath)
	}
	return nil
}
