package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument возвращается при некорректном годе или месяце
var ErrInvalidArgument = errors.New("invalid argument")

// Status - статус дня в календаре месяца
type Status string

const (
	StatusWorkday Status = "P" // рабочий день
	StatusWeekend Status = "-" // суббота/воскресенье
	StatusHoliday Status = "Ś" // государственный праздник
)

// IsOverride сообщает, что статус задан вручную (код типа отсутствия или произвольная строка)
func (s Status) IsOverride() bool {
	return s != StatusWorkday && s != StatusWeekend && s != StatusHoliday
}

// Weekday - день недели, нумерация с воскресенья как в time.Weekday
type Weekday int

var weekdayLabels = [7]string{"nd", "pn", "wt", "śr", "cz", "pt", "sb"}

func (w Weekday) String() string {
	if w < 0 || int(w) >= len(weekdayLabels) {
		return "?"
	}
	return weekdayLabels[w]
}

// IsWeekend проверяет субботу и воскресенье
func (w Weekday) IsWeekend() bool {
	return time.Weekday(w) == time.Saturday || time.Weekday(w) == time.Sunday
}

// Override - ручная замена статуса дня для одного отдела
type Override struct {
	Year       int
	Month      int
	Day        int
	Department string
	Code       string
}

// DayDescriptor - описание одного дня месяца
type DayDescriptor struct {
	Day     int     `json:"day"`
	Weekday Weekday `json:"weekday"`
	Status  Status  `json:"status"`
}

// фиксированные праздники: {месяц, день}
var fixedHolidays = [][2]int{
	{1, 1},   // Nowy Rok
	{1, 6},   // Trzech Króli
	{5, 1},   // Święto Pracy
	{5, 3},   // Święto Konstytucji 3 Maja
	{8, 15},  // Wniebowzięcie NMP
	{11, 1},  // Wszystkich Świętych
	{11, 11}, // Święto Niepodległości
	{12, 25}, // Boże Narodzenie
	{12, 26}, // drugi dzień świąt
}

// IsFixedHoliday проверяет, входит ли дата в таблицу фиксированных праздников
func IsFixedHoliday(month, day int) bool {
	for _, h := range fixedHolidays {
		if h[0] == month && h[1] == day {
			return true
		}
	}
	return false
}

func validate(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidArgument, month)
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range 1-9999", ErrInvalidArgument, year)
	}
	return nil
}

// DaysInMonth возвращает количество дней в месяце (пролептический григорианский календарь)
func DaysInMonth(year, month int) (int, error) {
	if err := validate(year, month); err != nil {
		return 0, err
	}
	// нулевой день следующего месяца - последний день текущего
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// DefaultStatus возвращает статус дня без учета ручных замен
func DefaultStatus(month, day int, weekday Weekday) Status {
	if IsFixedHoliday(month, day) {
		return StatusHoliday
	}
	if weekday.IsWeekend() {
		return StatusWeekend
	}
	return StatusWorkday
}

// ResolveMonth строит последовательность дней месяца для отдела.
// Замена из overrides для того же (год, месяц, день, отдел) подставляется как есть,
// при повторяющихся ключах побеждает последняя.
func ResolveMonth(year, month int, department string, overrides []Override) ([]DayDescriptor, error) {
	n, err := DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int]string)
	for _, o := range overrides {
		if o.Year != year || o.Month != month || o.Department != department {
			continue
		}
		byDay[o.Day] = o.Code
	}

	days := make([]DayDescriptor, 0, n)
	for d := 1; d <= n; d++ {
		weekday := Weekday(time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday())
		status := DefaultStatus(month, d, weekday)
		if code, ok := byDay[d]; ok {
			status = Status(code)
		}
		days = append(days, DayDescriptor{Day: d, Weekday: weekday, Status: status})
	}

	return days, nil
}

// CountStatus считает дни с указанным статусом
func CountStatus(days []DayDescriptor, status Status) int {
	count := 0
	for _, d := range days {
		if d.Status == status {
			count++
		}
	}
	return count
}
