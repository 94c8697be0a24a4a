package drop

const (
	NA = "NA"

	DropGroup = "outrider,fraser"

	// PtAnnotName is the conventional name of the intermediate patient table.
	PtAnnotName    = "drop_pt_annot.tsv"
	PtAnnotPattern = "drop_pt_annot.*.tsv"

	Sep = "\t"
)

// sample annotation columns, in DROP order
const (
	RnaID           = "RNA_ID"
	RnaBamFile      = "RNA_BAM_FILE"
	DnaVcfFile      = "DNA_VCF_FILE"
	DnaID           = "DNA_ID"
	DropGroupCol    = "DROP_GROUP"
	PairedEndCol    = "PAIRED_END"
	CountMode       = "COUNT_MODE"
	CountOverlaps   = "COUNT_OVERLAPS"
	SpliceCountsDir = "SPLICE_COUNTS_DIR"
	Strand          = "STRAND"
	HpoTerms        = "HPO_TERMS"
	GeneCountsFile  = "GENE_COUNTS_FILE"
	GeneAnnotation  = "GENE_ANNOTATION"
	Genome          = "GENOME"
)

var SampleAnnotationTitle = []string{
	RnaID,
	RnaBamFile,
	DnaVcfFile,
	DnaID,
	DropGroupCol,
	PairedEndCol,
	CountMode,
	CountOverlaps,
	SpliceCountsDir,
	Strand,
	HpoTerms,
	GeneCountsFile,
	GeneAnnotation,
	Genome,
}

// SharedTitle lists the columns copied from the first reference row onto every patient row.
var SharedTitle = []string{
	CountOverlaps,
	CountMode,
	HpoTerms,
}

// MissingValues are cell values read as missing and written back as NA.
var MissingValues = []string{
	"",
	"#N/A",
	"#N/A N/A",
	"#NA",
	"-1.#IND",
	"-1.#QNAN",
	"-NaN",
	"-nan",
	"1.#IND",
	"1.#QNAN",
	"<NA>",
	"N/A",
	"NA",
	"NULL",
	"NaN",
	"None",
	"n/a",
	"nan",
	"null",
}
