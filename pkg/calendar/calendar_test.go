package calendar

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"January", 2025, 1, 31},
		{"February common year", 2025, 2, 28},
		{"February leap year", 2024, 2, 29},
		{"February century not leap", 1900, 2, 28},
		{"February 400 leap", 2000, 2, 29},
		{"April", 2025, 4, 30},
		{"December", 2025, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysInMonth(tt.year, tt.month)
			if err != nil {
				t.Fatalf("DaysInMonth() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestResolveMonth_InvalidArgument(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2025, 0},
		{"month 13", 2025, 13},
		{"year zero", 0, 5},
		{"year five digits", 10000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := ResolveMonth(tt.year, tt.month, "Obsługa", nil)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("ResolveMonth() error = %v, want ErrInvalidArgument", err)
			}
			if days != nil {
				t.Errorf("ResolveMonth() days = %v, want nil", days)
			}
		})
	}
}

func TestResolveMonth_ContiguousDays(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := 1; month <= 12; month++ {
			days, err := ResolveMonth(year, month, "Nauczyciel", nil)
			if err != nil {
				t.Fatalf("ResolveMonth(%d, %d) error = %v", year, month, err)
			}
			n, _ := DaysInMonth(year, month)
			if len(days) != n {
				t.Fatalf("ResolveMonth(%d, %d) len = %d, want %d", year, month, len(days), n)
			}
			for i, d := range days {
				if d.Day != i+1 {
					t.Fatalf("ResolveMonth(%d, %d)[%d].Day = %d, want %d", year, month, i, d.Day, i+1)
				}
				wd := time.Date(year, time.Month(month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
				if d.Weekday != Weekday(wd) {
					t.Errorf("%d-%02d-%02d weekday = %v, want %v", year, month, d.Day, d.Weekday, Weekday(wd))
				}
				switch d.Status {
				case StatusWeekend:
					if !d.Weekday.IsWeekend() {
						t.Errorf("%d-%02d-%02d marked weekend on %v", year, month, d.Day, d.Weekday)
					}
				case StatusHoliday:
					if !IsFixedHoliday(month, d.Day) {
						t.Errorf("%d-%02d-%02d marked holiday but not in table", year, month, d.Day)
					}
				}
			}
		}
	}
}

func TestResolveMonth_May2025(t *testing.T) {
	days, err := ResolveMonth(2025, 5, "Obsługa", nil)
	if err != nil {
		t.Fatalf("ResolveMonth() error = %v", err)
	}

	checks := []struct {
		day     int
		status  Status
		weekday string
	}{
		{1, StatusHoliday, "cz"},
		{2, StatusWorkday, "pt"},
		{3, StatusHoliday, "sb"},
		{4, StatusWeekend, "nd"},
		{5, StatusWorkday, "pn"},
	}

	for _, c := range checks {
		d := days[c.day-1]
		if d.Status != c.status {
			t.Errorf("May %d status = %q, want %q", c.day, d.Status, c.status)
		}
		if d.Weekday.String() != c.weekday {
			t.Errorf("May %d weekday = %q, want %q", c.day, d.Weekday, c.weekday)
		}
	}

	if got := CountStatus(days, StatusWorkday); got != 21 {
		t.Errorf("May 2025 workdays = %d, want 21", got)
	}
}

func TestResolveMonth_OverridePrecedence(t *testing.T) {
	overrides := []Override{
		{Year: 2025, Month: 5, Day: 2, Department: "Nauczyciel", Code: "w"},
		{Year: 2025, Month: 5, Day: 1, Department: "Nauczyciel", Code: "P"},
		{Year: 2025, Month: 5, Day: 4, Department: "Nauczyciel", Code: "dyżur"},
		// другой отдел и другой месяц не влияют на результат
		{Year: 2025, Month: 5, Day: 5, Department: "Obsługa", Code: "Ś"},
		{Year: 2025, Month: 6, Day: 5, Department: "Nauczyciel", Code: "Ś"},
	}

	days, err := ResolveMonth(2025, 5, "Nauczyciel", overrides)
	if err != nil {
		t.Fatalf("ResolveMonth() error = %v", err)
	}

	want := map[int]Status{
		1: StatusWorkday,
		2: Status("w"),
		4: Status("dyżur"),
		5: StatusWorkday,
	}
	for day, status := range want {
		if days[day-1].Status != status {
			t.Errorf("day %d status = %q, want %q", day, days[day-1].Status, status)
		}
	}

	if !days[1].Status.IsOverride() {
		t.Errorf("day 2 IsOverride() = false, want true")
	}
}

func TestResolveMonth_LastOverrideWins(t *testing.T) {
	overrides := []Override{
		{Year: 2025, Month: 3, Day: 10, Department: "Obsługa", Code: "w"},
		{Year: 2025, Month: 3, Day: 10, Department: "Obsługa", Code: "sw"},
	}

	days, err := ResolveMonth(2025, 3, "Obsługa", overrides)
	if err != nil {
		t.Fatalf("ResolveMonth() error = %v", err)
	}
	if days[9].Status != "sw" {
		t.Errorf("day 10 status = %q, want %q", days[9].Status, "sw")
	}
}

func TestResolveMonth_Idempotent(t *testing.T) {
	overrides := []Override{{Year: 2024, Month: 12, Day: 24, Department: "Obsługa", Code: "Ś"}}

	first, err := ResolveMonth(2024, 12, "Obsługa", overrides)
	if err != nil {
		t.Fatalf("ResolveMonth() error = %v", err)
	}
	second, _ := ResolveMonth(2024, 12, "Obsługa", overrides)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ResolveMonth() not idempotent")
	}
}

func TestResolveMonth_OverrideRemovedRestoresDefault(t *testing.T) {
	before, _ := ResolveMonth(2025, 11, "Obsługa", nil)
	with, _ := ResolveMonth(2025, 11, "Obsługa", []Override{
		{Year: 2025, Month: 11, Day: 10, Department: "Obsługa", Code: "Ś"},
	})
	after, _ := ResolveMonth(2025, 11, "Obsługa", nil)

	if with[9].Status != StatusHoliday {
		t.Errorf("override not applied: %q", with[9].Status)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("calendar after override removal differs from default")
	}
}
