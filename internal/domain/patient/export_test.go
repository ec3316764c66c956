package patient

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportXLSX(DemoPatients(testNow), &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Patients")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Patient ID" || rows[0][8] != "Status" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[3][0] != "PAT-003" || rows[3][4] != "42" || rows[3][8] != "Under Treatment" {
		t.Errorf("unexpected row %v", rows[3])
	}
	if rows[1][7] != "2024-05-16" {
		t.Errorf("expected registration date 2024-05-16, got %s", rows[1][7])
	}
}

func TestExportXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportXLSX(nil, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Patients")
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}
