package drop

import (
	"encoding/csv"
	"io"
	"log/slog"

	"github.com/gocarina/gocsv"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/pkg/errors"
)

// Input holds the per-sample parallel lists and the run-wide paths.
type Input struct {
	Bam          []string
	Sample       []string
	Strandedness []string
	SingleEnd    []string

	Gtf       string
	CountFile string
}

func (in *Input) Check() error {
	if len(in.Sample) == 0 {
		return errors.New("no sample given")
	}
	var lists = []struct {
		name string
		list []string
	}{
		{"bam", in.Bam},
		{"strandedness", in.Strandedness},
		{"single_end", in.SingleEnd},
	}
	for _, l := range lists {
		if len(l.list) != len(in.Sample) {
			return errors.Errorf("%s count %d != sample count %d", l.name, len(l.list), len(in.Sample))
		}
	}
	return nil
}

// Records builds one SampleRecord per sample, in input order.
func (in *Input) Records() ([]*SampleRecord, error) {
	if err := in.Check(); err != nil {
		return nil, err
	}

	var (
		annotation = AnnotationName(in.Gtf)
		records    = make([]*SampleRecord, len(in.Sample))
	)
	for i, id := range in.Sample {
		var record = NewSampleRecord()
		record.RnaID = CleanValue(id)
		record.RnaBamFile = in.Bam[i]
		record.DropGroup = DropGroup
		record.PairedEnd = ParsePairedEnd(in.SingleEnd[i])
		record.Strand = CleanValue(in.Strandedness[i])
		record.GeneCountsFile = in.CountFile
		record.GeneAnnotation = annotation

		slog.Debug("sample", "index", i, "RNA_ID", record.RnaID, "STRAND", record.Strand, "PAIRED_END", record.PairedEnd)
		records[i] = record
	}
	return records, nil
}

// WriteRecords writes the header and records tab-delimited.
func WriteRecords(w io.Writer, records []*SampleRecord) error {
	var cw = csv.NewWriter(w)
	cw.Comma = '\t'
	var out = gocsv.NewSafeCSVWriter(cw)
	if err := gocsv.MarshalCSV(records, out); err != nil {
		return errors.Wrap(err, "marshal sample annotation")
	}
	out.Flush()
	return out.Error()
}

// WritePtAnnot writes the patient sample annotation table to path.
func WritePtAnnot(path string, records []*SampleRecord) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("write %s: %v", path, e)
		}
	}()

	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	return errors.Wrapf(WriteRecords(out, records), "write %s", path)
}
