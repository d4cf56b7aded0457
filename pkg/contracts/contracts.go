package contracts

import (
	"fmt"

	"ewidencja-bot/pkg/calendar"
)

// Contract - период трудового договора с дневной нормой.
// Даты в формате YYYY-MM-DD, EndDate == nil означает бессрочный договор.
type Contract struct {
	ID         uint
	EmployeeID uint
	StartDate  string
	EndDate    *string
	DailyNorm  float64
}

// Employee - минимальные данные сотрудника для расчета нормы
type Employee struct {
	ID        uint
	DailyNorm float64
}

// Normative - нормативные дни и часы за месяц
type Normative struct {
	NormativeDays  int       `json:"normative_days"`
	NormativeHours float64   `json:"normative_hours"`
	ActiveContract *Contract `json:"active_contract,omitempty"`
}

// MonthBounds возвращает первый и последний день месяца как строки YYYY-MM-DD
func MonthBounds(year, month, lastDay int) (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)
	return start, end
}

// Covers проверяет, действует ли договор хотя бы один день в интервале [start, end]
func (c Contract) Covers(start, end string) bool {
	return c.StartDate <= end && (c.EndDate == nil || *c.EndDate >= start)
}

// ActiveContract возвращает первый по порядку договор, действующий в месяце.
// Порядок задает вызывающий (start_date по убыванию), здесь ничего не сортируется.
func ActiveContract(contracts []Contract, year, month, lastDay int) *Contract {
	start, end := MonthBounds(year, month, lastDay)
	for i := range contracts {
		if contracts[i].Covers(start, end) {
			c := contracts[i]
			return &c
		}
	}
	return nil
}

// ResolveNormative считает нормативные дни (рабочие дни календаря) и часы по активному договору.
// Если договора нет, используется норма сотрудника.
func ResolveNormative(employee Employee, contracts []Contract, year, month int, days []calendar.DayDescriptor) Normative {
	active := ActiveContract(contracts, year, month, len(days))

	norm := employee.DailyNorm
	if active != nil {
		norm = active.DailyNorm
	}

	normativeDays := calendar.CountStatus(days, calendar.StatusWorkday)
	return Normative{
		NormativeDays:  normativeDays,
		NormativeHours: float64(normativeDays) * norm,
		ActiveContract: active,
	}
}

// Overlapping возвращает пары договоров с пересекающимися периодами
func Overlapping(contracts []Contract) [][2]Contract {
	var pairs [][2]Contract
	for i := 0; i < len(contracts); i++ {
		for j := i + 1; j < len(contracts); j++ {
			a, b := contracts[i], contracts[j]
			end := "9999-12-31"
			if b.EndDate != nil {
				end = *b.EndDate
			}
			if a.Covers(b.StartDate, end) {
				pairs = append(pairs, [2]Contract{a, b})
			}
		}
	}
	return pairs
}
