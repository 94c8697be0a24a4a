package drop

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// SampleRecord is one row of the DROP sample annotation. Field order follows SampleAnnotationTitle.
type SampleRecord struct {
	RnaID           string    `csv:"RNA_ID"`
	RnaBamFile      string    `csv:"RNA_BAM_FILE"`
	DnaVcfFile      string    `csv:"DNA_VCF_FILE"`
	DnaID           string    `csv:"DNA_ID"`
	DropGroup       string    `csv:"DROP_GROUP"`
	PairedEnd       PairedEnd `csv:"PAIRED_END"`
	CountMode       string    `csv:"COUNT_MODE"`
	CountOverlaps   string    `csv:"COUNT_OVERLAPS"`
	SpliceCountsDir string    `csv:"SPLICE_COUNTS_DIR"`
	Strand          string    `csv:"STRAND"`
	HpoTerms        string    `csv:"HPO_TERMS"`
	GeneCountsFile  string    `csv:"GENE_COUNTS_FILE"`
	GeneAnnotation  string    `csv:"GENE_ANNOTATION"`
	Genome          string    `csv:"GENOME"`
}

// NewSampleRecord returns a record with every field set to NA.
func NewSampleRecord() *SampleRecord {
	return &SampleRecord{
		RnaID:           NA,
		RnaBamFile:      NA,
		DnaVcfFile:      NA,
		DnaID:           NA,
		DropGroup:       NA,
		PairedEnd:       true,
		CountMode:       NA,
		CountOverlaps:   NA,
		SpliceCountsDir: NA,
		Strand:          NA,
		HpoTerms:        NA,
		GeneCountsFile:  NA,
		GeneAnnotation:  NA,
		Genome:          NA,
	}
}

// PairedEnd renders as True/False in annotation tables.
type PairedEnd bool

func (p PairedEnd) String() string {
	if p {
		return "True"
	}
	return "False"
}

func (p PairedEnd) MarshalCSV() (string, error) {
	return p.String(), nil
}

func (p *PairedEnd) UnmarshalCSV(s string) error {
	switch strings.ToLower(s) {
	case "true":
		*p = true
	case "false":
		*p = false
	default:
		return errors.Errorf("invalid %s value: %q", PairedEndCol, s)
	}
	return nil
}

var listMarkReplacer = strings.NewReplacer("[", "", "]", "", ",", "")

// CleanValue strips the list-literal marks [ ] and , that workflow engines leave on values.
func CleanValue(s string) string {
	return listMarkReplacer.Replace(s)
}

// ParsePairedEnd is false only for a cleaned, case-insensitive "false".
func ParsePairedEnd(singleEnd string) PairedEnd {
	return PairedEnd(strings.ToLower(CleanValue(singleEnd)) != "false")
}

// AnnotationName is the gtf base name without its last extension.
func AnnotationName(gtf string) string {
	var base = filepath.Base(gtf)
	if base == filepath.Ext(base) {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
