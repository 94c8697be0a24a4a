package drop

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/csimplestring/go-csv/detector"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Table is a sample annotation table: an ordered title and rows keyed by column.
type Table struct {
	Title []string
	Rows  []map[string]string
}

// LoadTable reads a tab-delimited table whose first line is the header.
// Quoted cells are unquoted; rows shorter than the header leave the rest missing.
func LoadTable(path string) (*Table, error) {
	if !osUtil.FileExists(path) {
		return nil, errors.Errorf("table not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if err = checkDelimiter(data); err != nil {
		return nil, errors.Wrapf(err, "malformed table %s", path)
	}

	table, err := ReadTable(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return table, nil
}

// ReadTable parses tab-delimited records with csv quoting rules.
func ReadTable(r io.Reader) (*Table, error) {
	var cr = csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var table = &Table{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(record) {
			continue
		}
		if table.Title == nil {
			table.Title = record
			continue
		}
		if len(record) > len(table.Title) {
			line, _ := cr.FieldPos(0)
			return nil, errors.Errorf("line %d has %d fields, header has %d", line, len(record), len(table.Title))
		}
		var row = make(map[string]string, len(record))
		for i, value := range record {
			row[table.Title[i]] = value
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Title) == 0 {
		return nil, errors.New("empty table")
	}
	return table, nil
}

func isBlank(record []string) bool {
	return lo.EveryBy(record, func(value string) bool {
		return strings.TrimSpace(value) == ""
	})
}

// checkDelimiter rejects content whose detected delimiters do not include tab.
func checkDelimiter(data []byte) error {
	var delimiters = detector.New().DetectDelimiter(bytes.NewReader(data), '"')
	if len(delimiters) > 0 && !lo.Contains(delimiters, Sep) {
		return errors.Errorf("delimiter %q, want tab", delimiters[0])
	}
	return nil
}

// IsMissing reports whether a cell value stands for a missing value.
func IsMissing(value string) bool {
	return lo.Contains(MissingValues, value)
}

// Value returns the cell of row i in column col, NA when missing.
func (t *Table) Value(i int, col string) string {
	var value, ok = t.Rows[i][col]
	if !ok || IsMissing(value) {
		return NA
	}
	return value
}

// Record returns row i in title order.
func (t *Table) Record(i int) []string {
	return lo.Map(t.Title, func(col string, _ int) string {
		return t.Value(i, col)
	})
}

// SetColumn sets col to value on every row, appending col to the title if absent.
func (t *Table) SetColumn(col, value string) {
	if !lo.Contains(t.Title, col) {
		t.Title = append(t.Title, col)
	}
	for _, row := range t.Rows {
		row[col] = value
	}
}

// Write writes the table tab-delimited, quoting cells the way WriteRecords does.
func (t *Table) Write(w io.Writer) error {
	var cw = csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(t.Title); err != nil {
		return err
	}
	for i := range t.Rows {
		if err := cw.Write(t.Record(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the table tab-delimited to path.
func (t *Table) Save(path string) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("save %s: %v", path, e)
		}
	}()

	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)
	return errors.Wrapf(t.Write(out), "save %s", path)
}
