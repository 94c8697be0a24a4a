package drop

import (
	"log/slog"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const SheetName = "sample_annotation"

func CoordinatesToCellName(col int, row int, abs ...bool) string {
	return simpleUtil.HandleError(
		excelize.CoordinatesToCellName(
			col, row, abs...,
		),
	)
}

// Workbook renders the table onto a single sheet, header on row 1.
func (t *Table) Workbook() (xlsx *excelize.File, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("workbook: %v", e)
		}
	}()

	xlsx = excelize.NewFile()
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", SheetName))

	var title = t.Title
	simpleUtil.CheckErr(xlsx.SetSheetRow(SheetName, CoordinatesToCellName(1, 1), &title))
	for i := range t.Rows {
		var record = t.Record(i)
		simpleUtil.CheckErr(xlsx.SetSheetRow(SheetName, CoordinatesToCellName(1, i+2), &record))
	}
	return xlsx, nil
}

// SaveXlsx writes the table to an xlsx workbook at path.
func (t *Table) SaveXlsx(path string) error {
	xlsx, err := t.Workbook()
	if err != nil {
		return err
	}
	defer func() {
		if e := xlsx.Close(); e != nil {
			slog.Error("close workbook", "path", path, "err", e)
		}
	}()
	return errors.Wrapf(xlsx.SaveAs(path), "save %s", path)
}
