package export

import (
	"bytes"
	"testing"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/service"
	"ewidencja-bot/pkg/attendance"
	"ewidencja-bot/pkg/calendar"
	"ewidencja-bot/pkg/contracts"

	"github.com/xuri/excelize/v2"
)

func testOverview(t *testing.T) *service.Overview {
	t.Helper()

	days, err := calendar.ResolveMonth(2025, 5, models.DepartmentSupport, []calendar.Override{
		{Year: 2025, Month: 5, Day: 2, Department: models.DepartmentSupport, Code: "w"},
	})
	if err != nil {
		t.Fatalf("ResolveMonth() error = %v", err)
	}

	catalog := attendance.DefaultCatalog()
	entries := []attendance.Entry{
		{EmployeeID: 1, Year: 2025, Month: 5, Day: 5, Code: "7.5"},
		{EmployeeID: 1, Year: 2025, Month: 5, Day: 6, Code: "l4"},
	}

	return &service.Overview{
		Year:       2025,
		Month:      5,
		Department: models.DepartmentSupport,
		Days:       days,
		Catalog:    catalog,
		Rows: []service.OverviewRow{{
			Employee:  models.Employee{ID: 1, FullName: "Anna Nowak", Department: models.DepartmentSupport},
			Entries:   map[int]string{5: "7.5", 6: "l4"},
			Summary:   attendance.Summarize(1, entries, catalog),
			Normative: contracts.Normative{NormativeDays: 20, NormativeHours: 160},
		}},
	}
}

func TestMonthWorkbook(t *testing.T) {
	o := testOverview(t)

	f, err := MonthWorkbook(o, "Szkoła nr 1")
	if err != nil {
		t.Fatalf("MonthWorkbook() error = %v", err)
	}
	defer f.Close()

	sheet := "maj 2025"
	tests := []struct {
		cell string
		want string
	}{
		{"A1", "Szkoła nr 1"},
		{"B7", "Anna Nowak"},
		{"C4", "1"},
		{"C6", "Ś"},  // 1 maja
		{"D6", "w"},  // замена для отдела
		{"E5", "sb"}, // 3 maja - sobota
		{"G7", "7.5"},
		{"H7", "l4"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := f.GetCellValue(sheet, tt.cell)
			if err != nil {
				t.Fatalf("GetCellValue(%s) error = %v", tt.cell, err)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}

	// итоги после 31 дня: 7 кодов, затем дни, часы и норма
	summaryCol := firstDayCol + 31
	wantSummary := map[int]string{
		summaryCol + 1: "1",   // l4
		summaryCol + 7: "1",   // dni
		summaryCol + 8: "7.5", // godz.
		summaryCol + 9: "20",
	}
	for col, want := range wantSummary {
		got, _ := f.GetCellValue(sheet, cell(col, firstDataRow))
		if got != want {
			t.Errorf("summary column %d = %q, want %q", col, got, want)
		}
	}
}

func TestWriteMonth(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMonth(&buf, testOverview(t), "Firma"); err != nil {
		t.Fatalf("WriteMonth() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "maj 2025" {
		t.Errorf("GetSheetList() = %v", sheets)
	}
}

func TestMonthFileName(t *testing.T) {
	o := &service.Overview{Year: 2025, Month: 5, Department: models.DepartmentSupport}
	if got, want := MonthFileName(o), "ewidencja_2025-05_obsluga.xlsx"; got != want {
		t.Errorf("MonthFileName() = %q, want %q", got, want)
	}
}
