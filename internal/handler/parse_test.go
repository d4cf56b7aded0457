package handler

import (
	"strings"
	"testing"
	"time"

	"ewidencja-bot/internal/models"
)

var testNow = time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)

func TestParseDepartment(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"obsluga", models.DepartmentSupport, false},
		{"Obsługa", models.DepartmentSupport, false},
		{" O ", models.DepartmentSupport, false},
		{"NAUCZYCIEL", models.DepartmentTeacher, false},
		{"n", models.DepartmentTeacher, false},
		{"kuchnia", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDepartment(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDepartment(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDepartment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-05-02", "2025-05-02", false},
		{"02.05.2025", "2025-05-02", false},
		{"02-05-2025", "2025-05-02", false},
		{"24.12", "2025-12-24", false},
		{"2025-02-30", "", true},
		{"29.02", "", true},
		{"31.04", "", true},
		{"28.02", "2025-02-28", false},
		{"jutro", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in, testNow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.Format("2006-01-02") != tt.want {
				t.Errorf("parseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestParseMonthQuery(t *testing.T) {
	tests := []struct {
		name    string
		args    string
		want    monthQuery
		wantErr bool
	}{
		{"defaults", "", monthQuery{2025, 5, models.DepartmentSupport}, false},
		{"month only", "3", monthQuery{2025, 3, models.DepartmentSupport}, false},
		{"year month", "2024 12", monthQuery{2024, 12, models.DepartmentSupport}, false},
		{"month year", "12 2024", monthQuery{2024, 12, models.DepartmentSupport}, false},
		{"iso month", "2024-02 nauczyciel", monthQuery{2024, 2, models.DepartmentTeacher}, false},
		{"department only", "nauczyciel", monthQuery{2025, 5, models.DepartmentTeacher}, false},
		{"bad month", "2025 13", monthQuery{}, true},
		{"bad department", "2025 1 kuchnia", monthQuery{}, true},
		{"too many", "2025 1 n o", monthQuery{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMonthQuery(tt.args, testNow, models.DepartmentSupport)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMonthQuery(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseMonthQuery(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseEmployeeMonth(t *testing.T) {
	id, year, month, err := parseEmployeeMonth("7 2024 11", testNow)
	if err != nil || id != 7 || year != 2024 || month != 11 {
		t.Errorf("parseEmployeeMonth() = %d %d %d %v", id, year, month, err)
	}

	id, year, month, err = parseEmployeeMonth("#3", testNow)
	if err != nil || id != 3 || year != 2025 || month != 5 {
		t.Errorf("parseEmployeeMonth(#3) = %d %d %d %v", id, year, month, err)
	}

	for _, args := range []string{"", "x", "0", "3 2025 5 n"} {
		if _, _, _, err := parseEmployeeMonth(args, testNow); err == nil {
			t.Errorf("parseEmployeeMonth(%q) error = nil, want error", args)
		}
	}
}

func TestParseSetDay(t *testing.T) {
	cmd, err := parseSetDay("4 2025-05-06 L4", testNow)
	if err != nil {
		t.Fatalf("parseSetDay() error = %v", err)
	}
	if cmd.EmployeeID != 4 || cmd.Year != 2025 || cmd.Month != 5 || cmd.Day != 6 || cmd.Code != "L4" {
		t.Errorf("parseSetDay() = %+v", cmd)
	}

	cmd, err = parseSetDay("4 06.05 7,5", testNow)
	if err != nil || cmd.Code != "7.5" {
		t.Errorf("parseSetDay(comma hours) = %+v, %v", cmd, err)
	}

	cmd, err = parseSetDay("4 06.05", testNow)
	if err != nil || cmd.Code != "" || cmd.Day != 6 {
		t.Errorf("parseSetDay(no code) = %+v, %v", cmd, err)
	}

	for _, args := range []string{"4", "x 2025-05-06 8", "4 2025-05-06 8 extra"} {
		if _, err := parseSetDay(args, testNow); err == nil {
			t.Errorf("parseSetDay(%q) error = nil, want error", args)
		}
	}
}

func TestParseOverride(t *testing.T) {
	got, err := parseOverride("nauczyciel 2025-05-02 Ś", testNow, true)
	if err != nil {
		t.Fatalf("parseOverride() error = %v", err)
	}
	if got.Department != models.DepartmentTeacher || got.Date.Day() != 2 || got.Code != "Ś" {
		t.Errorf("parseOverride() = %+v", got)
	}

	if _, err := parseOverride("o 2025-05-02", testNow, false); err != nil {
		t.Errorf("parseOverride(no code) error = %v", err)
	}
	if _, err := parseOverride("o 2025-05-02", testNow, true); err == nil {
		t.Errorf("parseOverride(missing code) error = nil")
	}
}

func TestParseAddEmployee(t *testing.T) {
	cmd, err := parseAddEmployee("Anna Nowak; obsluga; 7,5; sprzątaczka; 01.09.2024", testNow)
	if err != nil {
		t.Fatalf("parseAddEmployee() error = %v", err)
	}
	if cmd.FullName != "Anna Nowak" || cmd.Department != models.DepartmentSupport ||
		cmd.DailyNorm != 7.5 || cmd.Position != "sprzątaczka" || cmd.ContractStart != "2024-09-01" {
		t.Errorf("parseAddEmployee() = %+v", cmd)
	}

	cmd, err = parseAddEmployee("Jan Kowalski; n", testNow)
	if err != nil || cmd.DailyNorm != 0 || cmd.Department != models.DepartmentTeacher {
		t.Errorf("parseAddEmployee(short) = %+v, %v", cmd, err)
	}

	for _, args := range []string{"Anna", "; o", "Anna; kuchnia", "Anna; o; abc", "a; o; 8; b; 2024-01-01; x"} {
		if _, err := parseAddEmployee(args, testNow); err == nil {
			t.Errorf("parseAddEmployee(%q) error = nil, want error", args)
		}
	}
}

func TestParseEditEmployee(t *testing.T) {
	id, cmd, err := parseEditEmployee("5 norma=6; dział=nauczyciel; stanowisko=woźny")
	if err != nil {
		t.Fatalf("parseEditEmployee() error = %v", err)
	}
	if id != 5 || *cmd.DailyNorm != 6 || *cmd.Department != models.DepartmentTeacher || *cmd.Position != "woźny" {
		t.Errorf("parseEditEmployee() = %d %+v", id, cmd)
	}
	if cmd.FullName != nil || cmd.PayrollNumber != nil {
		t.Errorf("unexpected fields set: %+v", cmd)
	}

	for _, args := range []string{"5", "5 kolor=red", "5 norma", "x norma=8"} {
		if _, _, err := parseEditEmployee(args); err == nil {
			t.Errorf("parseEditEmployee(%q) error = nil, want error", args)
		}
	}
}

func TestParseContract(t *testing.T) {
	id, cmd, err := parseContract("2 2025-01-01 2025-06-30 6", testNow)
	if err != nil {
		t.Fatalf("parseContract() error = %v", err)
	}
	if id != 2 || cmd.StartDate != "2025-01-01" || cmd.EndDate != "2025-06-30" || cmd.DailyNorm != 6 {
		t.Errorf("parseContract() = %d %+v", id, cmd)
	}

	_, cmd, err = parseContract("2 - 4", testNow)
	if err != nil || cmd.StartDate != "" || cmd.EndDate != "" || cmd.DailyNorm != 4 {
		t.Errorf("parseContract(open) = %+v, %v", cmd, err)
	}

	if _, _, err := parseContract("2 2025-01-01", testNow); err == nil {
		t.Errorf("parseContract(short) error = nil")
	}
}

func TestParseAbsenceTypeAndSetting(t *testing.T) {
	cmd, err := parseAbsenceType("dy 123456 Dyżur nocny")
	if err != nil || cmd.Code != "dy" || cmd.Color != "#123456" || cmd.Name != "Dyżur nocny" {
		t.Errorf("parseAbsenceType() = %+v, %v", cmd, err)
	}
	if _, err := parseAbsenceType("dy #123456"); err == nil {
		t.Errorf("parseAbsenceType(no name) error = nil")
	}

	key, value, err := parseSetting("company_name = Szkoła nr 5")
	if err != nil || key != "company_name" || value != "Szkoła nr 5" {
		t.Errorf("parseSetting() = %q %q %v", key, value, err)
	}
	if _, _, err := parseSetting("company_name"); err == nil {
		t.Errorf("parseSetting(no value) error = nil")
	}
}

func TestParseNote(t *testing.T) {
	id, year, month, text, err := parseNote("3 2025 4 urlop na żądanie")
	if err != nil || id != 3 || year != 2025 || month != 4 || text != "urlop na żądanie" {
		t.Errorf("parseNote() = %d %d %d %q %v", id, year, month, text, err)
	}

	_, _, _, text, err = parseNote("3 2025 4")
	if err != nil || text != "" {
		t.Errorf("parseNote(clear) = %q %v", text, err)
	}
}

func TestSplitMessage(t *testing.T) {
	short := "krótka wiadomość"
	if got := splitMessage(short, 100); len(got) != 1 || got[0] != short {
		t.Errorf("splitMessage(short) = %v", got)
	}

	text := strings.Repeat("ąęść\n", 10)
	parts := splitMessage(text, 12)
	if strings.Join(parts, "") != text {
		t.Errorf("splitMessage() lost text: %q", parts)
	}
	for _, p := range parts {
		if n := len([]rune(p)); n > 12 {
			t.Errorf("part %q has %d runes, limit 12", p, n)
		}
	}

	long := strings.Repeat("x", 25)
	parts = splitMessage(long, 10)
	if len(parts) != 3 || parts[2] != "xxxxx" {
		t.Errorf("splitMessage(long) = %q", parts)
	}

	// эмодзи занимают две UTF-16 единицы
	emoji := strings.Repeat("✅📊\n", 4)
	parts = splitMessage(emoji, 8)
	if strings.Join(parts, "") != emoji {
		t.Errorf("splitMessage(emoji) lost text: %q", parts)
	}
	for _, p := range parts {
		if n := utf16Len(p); n > 8 {
			t.Errorf("part %q has %d UTF-16 units, limit 8", p, n)
		}
	}

	parts = splitMessage(strings.Repeat("📊", 5), 4)
	if len(parts) != 3 || parts[2] != "📊" {
		t.Errorf("splitMessage(emoji line) = %q", parts)
	}
}
