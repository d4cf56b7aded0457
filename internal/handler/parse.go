package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/service"
	"ewidencja-bot/pkg/calendar"
)

var departmentAliases = map[string]string{
	"obsługa":     models.DepartmentSupport,
	"obsluga":     models.DepartmentSupport,
	"o":           models.DepartmentSupport,
	"nauczyciel":  models.DepartmentTeacher,
	"nauczyciele": models.DepartmentTeacher,
	"n":           models.DepartmentTeacher,
}

// parseDepartment принимает название отдела в любом регистре и без польских букв
func parseDepartment(s string) (string, error) {
	if dept, ok := departmentAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return dept, nil
	}
	return "", fmt.Errorf("nieznany dział %q", s)
}

// parseDate парсит дату из строки
func parseDate(dateStr string, now time.Time) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"02-01-2006",
		"02.01",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			// Если указан только день и месяц, добавляем текущий год
			if !strings.Contains(format, "2006") {
				month, day := t.Month(), t.Day()
				t = time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
				// 29.02 в невисокосном году не переносим на 1 марта
				if t.Month() != month || t.Day() != day {
					break
				}
			}
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("nieprawidłowa data %q, użyj RRRR-MM-DD lub DD.MM.RRRR", dateStr)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("nieprawidłowy ID %q", s)
	}
	return uint(id), nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("nieprawidłowa liczba %q", s)
	}
	return v, nil
}

type monthQuery struct {
	Year       int
	Month      int
	Department string
}

// parseMonthQuery разбирает "[rok miesiąc | RRRR-MM | miesiąc] [dział]"
func parseMonthQuery(args string, now time.Time, defaultDepartment string) (monthQuery, error) {
	q := monthQuery{Year: now.Year(), Month: int(now.Month()), Department: defaultDepartment}

	fields := strings.Fields(args)
	var numbers []int
	for len(fields) > 0 {
		if t, err := time.Parse("2006-01", fields[0]); err == nil && len(numbers) == 0 {
			numbers = []int{t.Year(), int(t.Month())}
			fields = fields[1:]
			break
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			break
		}
		numbers = append(numbers, n)
		fields = fields[1:]
		if len(numbers) == 2 {
			break
		}
	}

	switch len(numbers) {
	case 1:
		q.Month = numbers[0]
	case 2:
		q.Year, q.Month = numbers[0], numbers[1]
		// "5 2025" - месяц и год в обратном порядке
		if q.Year <= 12 && q.Month > 12 {
			q.Year, q.Month = q.Month, q.Year
		}
	}

	if len(fields) > 1 {
		return q, fmt.Errorf("za dużo argumentów")
	}
	if len(fields) == 1 {
		dept, err := parseDepartment(fields[0])
		if err != nil {
			return q, err
		}
		q.Department = dept
	}

	if _, err := calendar.DaysInMonth(q.Year, q.Month); err != nil {
		return q, fmt.Errorf("nieprawidłowy miesiąc %d/%d", q.Month, q.Year)
	}
	return q, nil
}

// parseEmployeeMonth разбирает "id [rok miesiąc]"
func parseEmployeeMonth(args string, now time.Time) (uint, int, int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, 0, 0, fmt.Errorf("brak ID pracownika")
	}
	id, err := parseID(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}

	q, err := parseMonthQuery(strings.Join(fields[1:], " "), now, "")
	if err != nil {
		return 0, 0, 0, err
	}
	if q.Department != "" {
		return 0, 0, 0, fmt.Errorf("nieoczekiwany argument")
	}
	return id, q.Year, q.Month, nil
}

// parseSetDay разбирает "id data [kod]" в команду записи дня
func parseSetDay(args string, now time.Time) (service.SetDayCodeCommand, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 || len(fields) > 3 {
		return service.SetDayCodeCommand{}, fmt.Errorf("oczekiwano: id data [kod]")
	}

	id, err := parseID(fields[0])
	if err != nil {
		return service.SetDayCodeCommand{}, err
	}
	date, err := parseDate(fields[1], now)
	if err != nil {
		return service.SetDayCodeCommand{}, err
	}

	cmd := service.SetDayCodeCommand{
		EmployeeID: id,
		Year:       date.Year(),
		Month:      int(date.Month()),
		Day:        date.Day(),
	}
	if len(fields) == 3 {
		cmd.Code = fields[2]
		// "7,5" хранится как "7.5"
		if strings.Contains(cmd.Code, ",") {
			if _, err := parseNumber(cmd.Code); err == nil {
				cmd.Code = strings.Replace(cmd.Code, ",", ".", 1)
			}
		}
	}
	return cmd, nil
}

type overrideArgs struct {
	Department string
	Date       time.Time
	Code       string
}

// parseOverride разбирает "dział data [kod]"
func parseOverride(args string, now time.Time, withCode bool) (overrideArgs, error) {
	fields := strings.Fields(args)
	want := 2
	if withCode {
		want = 3
	}
	if len(fields) != want {
		if withCode {
			return overrideArgs{}, fmt.Errorf("oczekiwano: dział data kod")
		}
		return overrideArgs{}, fmt.Errorf("oczekiwano: dział data")
	}

	dept, err := parseDepartment(fields[0])
	if err != nil {
		return overrideArgs{}, err
	}
	date, err := parseDate(fields[1], now)
	if err != nil {
		return overrideArgs{}, err
	}

	result := overrideArgs{Department: dept, Date: date}
	if withCode {
		result.Code = fields[2]
	}
	return result, nil
}

// splitFields делит строку по ";" и обрезает пробелы
func splitFields(args string) []string {
	parts := strings.Split(args, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseAddEmployee разбирает "Imię Nazwisko; dział; [norma]; [stanowisko]; [początek umowy]"
func parseAddEmployee(args string, now time.Time) (service.CreateEmployeeCommand, error) {
	parts := splitFields(args)
	if len(parts) < 2 || parts[0] == "" {
		return service.CreateEmployeeCommand{}, fmt.Errorf("oczekiwano: imię i nazwisko; dział")
	}
	if len(parts) > 5 {
		return service.CreateEmployeeCommand{}, fmt.Errorf("za dużo pól")
	}

	dept, err := parseDepartment(parts[1])
	if err != nil {
		return service.CreateEmployeeCommand{}, err
	}
	cmd := service.CreateEmployeeCommand{FullName: parts[0], Department: dept}

	if len(parts) > 2 && parts[2] != "" {
		if cmd.DailyNorm, err = parseNumber(parts[2]); err != nil {
			return service.CreateEmployeeCommand{}, err
		}
	}
	if len(parts) > 3 {
		cmd.Position = parts[3]
	}
	if len(parts) > 4 && parts[4] != "" {
		start, err := parseDate(parts[4], now)
		if err != nil {
			return service.CreateEmployeeCommand{}, err
		}
		cmd.ContractStart = start.Format("2006-01-02")
	}
	return cmd, nil
}

// parseEditEmployee разбирает "id pole=wartość; pole=wartość"
func parseEditEmployee(args string) (uint, service.UpdateEmployeeCommand, error) {
	var cmd service.UpdateEmployeeCommand

	args = strings.TrimSpace(args)
	idStr, rest, _ := strings.Cut(args, " ")
	id, err := parseID(idStr)
	if err != nil {
		return 0, cmd, err
	}

	changed := false
	for _, part := range splitFields(rest) {
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return 0, cmd, fmt.Errorf("oczekiwano pole=wartość, otrzymano %q", part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "nazwisko", "imie", "imię":
			cmd.FullName = &value
		case "stanowisko":
			cmd.Position = &value
		case "numer", "nr":
			cmd.PayrollNumber = &value
		case "dzial", "dział":
			dept, err := parseDepartment(value)
			if err != nil {
				return 0, cmd, err
			}
			cmd.Department = &dept
		case "norma":
			norm, err := parseNumber(value)
			if err != nil {
				return 0, cmd, err
			}
			cmd.DailyNorm = &norm
		default:
			return 0, cmd, fmt.Errorf("nieznane pole %q", key)
		}
		changed = true
	}

	if !changed {
		return 0, cmd, fmt.Errorf("brak zmian")
	}
	return id, cmd, nil
}

// parseContract разбирает "id początek [koniec] norma"; "-" jako początek oznacza dziś
func parseContract(args string, now time.Time) (uint, service.ContractCommand, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 || len(fields) > 4 {
		return 0, service.ContractCommand{}, fmt.Errorf("oczekiwano: id początek [koniec] norma")
	}

	id, err := parseID(fields[0])
	if err != nil {
		return 0, service.ContractCommand{}, err
	}

	var cmd service.ContractCommand
	if fields[1] != "-" {
		start, err := parseDate(fields[1], now)
		if err != nil {
			return 0, cmd, err
		}
		cmd.StartDate = start.Format("2006-01-02")
	}
	if len(fields) == 4 {
		end, err := parseDate(fields[2], now)
		if err != nil {
			return 0, cmd, err
		}
		cmd.EndDate = end.Format("2006-01-02")
	}
	if cmd.DailyNorm, err = parseNumber(fields[len(fields)-1]); err != nil {
		return 0, cmd, err
	}
	return id, cmd, nil
}

// parseAbsenceType разбирает "kod kolor nazwa..."
func parseAbsenceType(args string) (service.CreateAbsenceTypeCommand, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return service.CreateAbsenceTypeCommand{}, fmt.Errorf("oczekiwano: kod kolor nazwa")
	}
	color := fields[1]
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	return service.CreateAbsenceTypeCommand{
		Code:  fields[0],
		Color: color,
		Name:  strings.Join(fields[2:], " "),
	}, nil
}

// parseNote разбирает "id rok miesiąc [tekst]"
func parseNote(args string) (uint, int, int, string, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return 0, 0, 0, "", fmt.Errorf("oczekiwano: id rok miesiąc [tekst]")
	}
	id, err := parseID(fields[0])
	if err != nil {
		return 0, 0, 0, "", err
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("nieprawidłowy rok %q", fields[1])
	}
	month, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("nieprawidłowy miesiąc %q", fields[2])
	}
	return id, year, month, strings.Join(fields[3:], " "), nil
}

// parseSetting разбирает "klucz=wartość"
func parseSetting(args string) (string, string, error) {
	key, value, ok := strings.Cut(args, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("oczekiwano: klucz=wartość")
	}
	return key, strings.TrimSpace(value), nil
}

// utf16Len - длина строки так, как ее считает Telegram (в UTF-16 единицах)
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// splitMessage делит текст на части не длиннее limit UTF-16 единиц, по возможности по строкам
func splitMessage(text string, limit int) []string {
	if utf16Len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		lineLen := utf16Len(line)
		if currentLen+lineLen > limit {
			flush()
		}
		if lineLen <= limit {
			current.WriteString(line)
			currentLen += lineLen
			continue
		}
		// строка длиннее лимита режется по символам, суррогатные пары не разрываются
		for _, r := range line {
			n := utf16.RuneLen(r)
			if currentLen+n > limit {
				flush()
			}
			current.WriteRune(r)
			currentLen += n
		}
	}
	flush()
	return parts
}
