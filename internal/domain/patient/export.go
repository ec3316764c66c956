package patient

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Patients"

// ExportHeader is the first row of the directory spreadsheet.
var ExportHeader = []string{
	"Patient ID",
	"First Name",
	"Last Name",
	"Gender",
	"Age",
	"Phone",
	"Email",
	"Registration Date",
	"Status",
}

// ExportXLSX writes patients as a single-sheet workbook to w.
func ExportXLSX(patients []Patient, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	// A new workbook starts with a single "Sheet1".
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range ExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(ExportHeader), 1)
	if err := f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, p := range patients {
		row := exportRow(p)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "I", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func exportRow(p Patient) []interface{} {
	var age interface{} = ""
	if p.Age != nil {
		age = *p.Age
	}
	return []interface{}{
		p.ID,
		p.FirstName,
		p.LastName,
		string(p.Gender),
		age,
		p.Phone,
		p.Email,
		p.RegistrationDate.Format("2006-01-02"),
		string(p.Status),
	}
}
