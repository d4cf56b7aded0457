package export

import (
	"fmt"
	"io"
	"strings"

	"ewidencja-bot/internal/service"
	"ewidencja-bot/pkg/attendance"
	"ewidencja-bot/pkg/calendar"

	"github.com/xuri/excelize/v2"
)

const (
	headerRow    = 4
	weekdayRow   = 5
	statusRow    = 6
	firstDataRow = 7
	firstDayCol  = 3
)

const (
	offDayColor   = "#D9D9D9"
	headerColor   = "#4472C4"
	overrideColor = "#FFF2CC"
)

// MonthFileName - имя файла выгрузки месяца
func MonthFileName(o *service.Overview) string {
	dept := strings.ToLower(strings.NewReplacer("ł", "l", "ó", "o", "ą", "a", "ę", "e").Replace(o.Department))
	return fmt.Sprintf("ewidencja_%04d-%02d_%s.xlsx", o.Year, o.Month, dept)
}

type styles struct {
	f      *excelize.File
	header int
	offDay int
	marked int
	byCode map[string]int
}

func newStyles(f *excelize.File) (*styles, error) {
	s := &styles{f: f, byCode: make(map[string]int)}

	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	if s.offDay, err = s.fill(offDayColor); err != nil {
		return nil, err
	}
	if s.marked, err = s.fill(overrideColor); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *styles) fill(color string) (int, error) {
	return s.f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
}

// forCode возвращает стиль с цветом типа отсутствия, 0 - без заливки
func (s *styles) forCode(code string, catalog attendance.Catalog) (int, error) {
	color := catalog.Color(code)
	if color == "" {
		return 0, nil
	}
	if id, ok := s.byCode[color]; ok {
		return id, nil
	}
	id, err := s.fill(color)
	if err != nil {
		return 0, err
	}
	s.byCode[color] = id
	return id, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// MonthWorkbook строит лист месяца: календарь отдела, коды по дням и итоги
func MonthWorkbook(o *service.Overview, companyName string) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := fmt.Sprintf("%s %d", service.MonthName(o.Month), o.Year)
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	f.SetCellValue(sheet, "A1", companyName)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Ewidencja czasu pracy: %s %d, dział %s", service.MonthName(o.Month), o.Year, o.Department))

	f.SetCellValue(sheet, cell(1, headerRow), "Lp.")
	f.SetCellValue(sheet, cell(2, headerRow), "Imię i nazwisko")

	for i, d := range o.Days {
		col := firstDayCol + i
		f.SetCellValue(sheet, cell(col, headerRow), d.Day)
		f.SetCellValue(sheet, cell(col, weekdayRow), d.Weekday.String())
		f.SetCellValue(sheet, cell(col, statusRow), string(d.Status))

		switch {
		case d.Status.IsOverride():
			f.SetCellStyle(sheet, cell(col, weekdayRow), cell(col, statusRow), st.marked)
		case d.Status != calendar.StatusWorkday:
			f.SetCellStyle(sheet, cell(col, weekdayRow), cell(col, statusRow), st.offDay)
		}
	}

	summaryCol := firstDayCol + len(o.Days)
	codes := o.Catalog.Codes()
	headers := append(append([]string{}, codes...), "Dni", "Godz.", "Norma dni", "Norma godz.")
	for i, h := range headers {
		f.SetCellValue(sheet, cell(summaryCol+i, headerRow), h)
	}
	lastCol := summaryCol + len(headers) - 1
	f.SetCellStyle(sheet, cell(1, headerRow), cell(lastCol, headerRow), st.header)

	for i, row := range o.Rows {
		r := firstDataRow + i
		f.SetCellValue(sheet, cell(1, r), i+1)
		f.SetCellValue(sheet, cell(2, r), row.Employee.FullName)

		for j, d := range o.Days {
			col := firstDayCol + j
			code := row.Entries[d.Day]
			if code != "" {
				if hours, ok := attendance.ParseHours(code); ok {
					f.SetCellValue(sheet, cell(col, r), hours.InexactFloat64())
				} else {
					f.SetCellValue(sheet, cell(col, r), code)
				}
			}

			styleID, err := st.forCode(code, o.Catalog)
			if err != nil {
				f.Close()
				return nil, err
			}
			if styleID == 0 && d.Status != calendar.StatusWorkday {
				styleID = st.offDay
			}
			if styleID != 0 {
				f.SetCellStyle(sheet, cell(col, r), cell(col, r), styleID)
			}
		}

		col := summaryCol
		for _, code := range codes {
			f.SetCellValue(sheet, cell(col, r), row.Summary.Counts[code])
			col++
		}
		f.SetCellValue(sheet, cell(col, r), row.Summary.DaysWorked)
		f.SetCellValue(sheet, cell(col+1, r), row.Summary.HoursWorked.InexactFloat64())
		f.SetCellValue(sheet, cell(col+2, r), row.Normative.NormativeDays)
		f.SetCellValue(sheet, cell(col+3, r), row.Normative.NormativeHours)
	}

	f.SetColWidth(sheet, "A", "A", 5)
	f.SetColWidth(sheet, "B", "B", 28)
	firstDay, _ := excelize.ColumnNumberToName(firstDayCol)
	lastDay, _ := excelize.ColumnNumberToName(summaryCol - 1)
	f.SetColWidth(sheet, firstDay, lastDay, 4.5)

	// легенда типов отсутствия под таблицей
	legendRow := firstDataRow + len(o.Rows) + 2
	f.SetCellValue(sheet, cell(2, legendRow), "Legenda:")
	for i, t := range o.Catalog.Types() {
		r := legendRow + 1 + i
		f.SetCellValue(sheet, cell(1, r), t.Code)
		f.SetCellValue(sheet, cell(2, r), t.Name)
		if styleID, err := st.forCode(t.Code, o.Catalog); err == nil && styleID != 0 {
			f.SetCellStyle(sheet, cell(1, r), cell(1, r), styleID)
		}
	}

	return f, nil
}

// WriteMonth записывает выгрузку месяца в w
func WriteMonth(w io.Writer, o *service.Overview, companyName string) error {
	f, err := MonthWorkbook(o, companyName)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
