package daysoff

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ewidencja-bot/pkg/calendar"
)

// File - годовой список замен статусов дней для одного отдела.
//
//	{
//	  "year": 2025,
//	  "department": "Nauczyciel",
//	  "code": "w",
//	  "months": [
//	    {"month": 5, "days": "2"},
//	    {"month": 11, "days": "10:P, 24"}
//	  ]
//	}
//
// День без кода получает код файла, "10:P" задает код явно.
type File struct {
	Year       int         `json:"year"`
	Department string      `json:"department"`
	Code       string      `json:"code"`
	Months     []MonthDays `json:"months"`
}

type MonthDays struct {
	Month int    `json:"month"`
	Days  string `json:"days"`
}

// ParseFile читает файл и возвращает замены
func ParseFile(filePath string) ([]calendar.Override, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает JSON и проверяет каждый день по календарю месяца
func Parse(data []byte) ([]calendar.Override, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	defaultCode := strings.TrimSpace(file.Code)
	if defaultCode == "" {
		defaultCode = "w"
	}

	overrides := []calendar.Override{}
	for _, monthData := range file.Months {
		n, err := calendar.DaysInMonth(file.Year, monthData.Month)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", monthData.Month, err)
		}

		for _, item := range strings.Split(monthData.Days, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}

			dayStr, code, hasCode := strings.Cut(item, ":")
			code = strings.TrimSpace(code)
			if !hasCode || code == "" {
				code = defaultCode
			}

			day, err := strconv.Atoi(strings.TrimSpace(dayStr))
			if err != nil {
				return nil, fmt.Errorf("failed to parse day '%s' in month %d: %w", item, monthData.Month, err)
			}
			if day < 1 || day > n {
				return nil, fmt.Errorf("day %d out of range in month %d", day, monthData.Month)
			}

			overrides = append(overrides, calendar.Override{
				Year:       file.Year,
				Month:      monthData.Month,
				Day:        day,
				Department: file.Department,
				Code:       code,
			})
		}
	}

	return overrides, nil
}
