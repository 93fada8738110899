package main

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"io"
	"strconv"
	"sumSheet/contracts"
)

const ExportSheetName = "Sheet"

const FormulaMark = "ƒ"

var exportHeader = []any{"Cell", "Input", "Value", "Formula"}

// SheetExporter writes the sheet as an xlsx workbook, one row per cell.
type SheetExporter struct{}

func NewSheetExporter() *SheetExporter {
	return &SheetExporter{}
}

func (e *SheetExporter) Export(cells contracts.CellList, w io.Writer) (err error) {
	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = file.SetSheetName(file.GetSheetName(0), ExportSheetName); err != nil {
		return err
	}

	if err = file.SetSheetRow(ExportSheetName, "A1", &exportHeader); err != nil {
		return err
	}

	for index, cell := range cells {
		formulaMark := ""
		if cell.Formula {
			formulaMark = FormulaMark + " " + cell.Value
		}

		row := []any{"Row " + cell.Id, cell.Value, e.resultValue(cell.Result), formulaMark}
		if err = file.SetSheetRow(ExportSheetName, fmt.Sprintf("A%d", index+2), &row); err != nil {
			return err
		}
	}

	_, err = file.WriteTo(w)
	return err
}

// resultValue keeps numeric results as numbers in the workbook.
func (e *SheetExporter) resultValue(result string) any {
	if number, err := strconv.ParseFloat(result, 64); err == nil {
		return number
	}

	return result
}
