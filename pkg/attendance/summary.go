package attendance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Entry - запись дня сотрудника (часы или код отсутствия)
type Entry struct {
	EmployeeID uint
	Year       int
	Month      int
	Day        int
	Code       string
}

// Summary - сводка сотрудника за месяц, не хранится в базе
type Summary struct {
	EmployeeID  uint            `json:"employee_id"`
	DaysWorked  int             `json:"days_worked"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Counts      map[string]int  `json:"counts"`
	// Untracked - коды, не попавшие ни в часы, ни в справочник
	Untracked int `json:"untracked"`
}

func newSummary(employeeID uint, catalog Catalog) Summary {
	s := Summary{
		EmployeeID:  employeeID,
		HoursWorked: decimal.Zero,
		Counts:      make(map[string]int, catalog.Len()),
	}
	for _, code := range catalog.Codes() {
		s.Counts[code] = 0
	}
	return s
}

func (s *Summary) add(cl Classification) {
	switch cl.Kind {
	case KindNumeric:
		s.DaysWorked++
		s.HoursWorked = s.HoursWorked.Add(cl.Hours)
	case KindTracked:
		s.Counts[cl.Code]++
	case KindUntracked:
		s.Untracked++
	}
}

// Summarize считает сводку по записям одного сотрудника.
// Записи других сотрудников пропускаются, ошибок нет: некорректные коды не учитываются.
func Summarize(employeeID uint, entries []Entry, catalog Catalog) Summary {
	s := newSummary(employeeID, catalog)
	for _, e := range entries {
		if e.EmployeeID != employeeID {
			continue
		}
		s.add(ClassifyCode(e.Code, catalog))
	}
	return s
}

// SummarizeAll считает сводки для списка сотрудников за один проход по записям.
// Порядок результата совпадает с порядком employeeIDs.
func SummarizeAll(employeeIDs []uint, entries []Entry, catalog Catalog) []Summary {
	byEmployee := make(map[uint]*Summary, len(employeeIDs))
	summaries := make([]Summary, len(employeeIDs))
	for i, id := range employeeIDs {
		summaries[i] = newSummary(id, catalog)
		if _, dup := byEmployee[id]; !dup {
			byEmployee[id] = &summaries[i]
		}
	}

	for _, e := range entries {
		s, ok := byEmployee[e.EmployeeID]
		if !ok {
			continue
		}
		s.add(ClassifyCode(e.Code, catalog))
	}

	// повторяющиеся ID получают ту же сводку
	for i, id := range employeeIDs {
		if p := byEmployee[id]; p != &summaries[i] {
			summaries[i] = *p
		}
	}
	return summaries
}

// MonthKey - год и месяц
type MonthKey struct {
	Year  int
	Month int
}

// MonthlySummary - сводка сотрудника за конкретный месяц
type MonthlySummary struct {
	MonthKey
	Summary
}

// SummarizeByMonth группирует записи сотрудника по месяцам (по возрастанию)
func SummarizeByMonth(employeeID uint, entries []Entry, catalog Catalog) []MonthlySummary {
	grouped := make(map[MonthKey][]Entry)
	for _, e := range entries {
		if e.EmployeeID != employeeID {
			continue
		}
		key := MonthKey{Year: e.Year, Month: e.Month}
		grouped[key] = append(grouped[key], e)
	}

	keys := make([]MonthKey, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Month < keys[j].Month
	})

	result := make([]MonthlySummary, 0, len(keys))
	for _, k := range keys {
		result = append(result, MonthlySummary{
			MonthKey: k,
			Summary:  Summarize(employeeID, grouped[k], catalog),
		})
	}
	return result
}

// Merge складывает две сводки (например, месяцы квартала)
func (s Summary) Merge(other Summary) Summary {
	merged := Summary{
		EmployeeID:  s.EmployeeID,
		DaysWorked:  s.DaysWorked + other.DaysWorked,
		HoursWorked: s.HoursWorked.Add(other.HoursWorked),
		Counts:      make(map[string]int, len(s.Counts)),
		Untracked:   s.Untracked + other.Untracked,
	}
	for code, n := range s.Counts {
		merged.Counts[code] += n
	}
	for code, n := range other.Counts {
		merged.Counts[code] += n
	}
	return merged
}
