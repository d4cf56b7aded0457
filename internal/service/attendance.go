package service

import (
	"fmt"
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"
	"ewidencja-bot/pkg/attendance"
	"ewidencja-bot/pkg/calendar"
	"ewidencja-bot/pkg/contracts"

	"github.com/sirupsen/logrus"
)

type AttendanceService struct {
	workdayRepo  repository.WorkdayRepository
	employeeRepo repository.EmployeeRepository
	contractRepo repository.ContractRepository
	noteRepo     repository.NoteRepository
	settingRepo  repository.SettingRepository
	calendar     *CalendarService
	absenceTypes *AbsenceTypeService
	logger       *logrus.Logger
}

func NewAttendanceService(
	workdayRepo repository.WorkdayRepository,
	employeeRepo repository.EmployeeRepository,
	contractRepo repository.ContractRepository,
	noteRepo repository.NoteRepository,
	settingRepo repository.SettingRepository,
	calendarService *CalendarService,
	absenceTypeService *AbsenceTypeService,
) *AttendanceService {
	return &AttendanceService{
		workdayRepo:  workdayRepo,
		employeeRepo: employeeRepo,
		contractRepo: contractRepo,
		noteRepo:     noteRepo,
		settingRepo:  settingRepo,
		calendar:     calendarService,
		absenceTypes: absenceTypeService,
		logger:       newLogger(),
	}
}

// SetDayCodeCommand - запись кода дня сотрудника. Пустой код удаляет запись.
type SetDayCodeCommand struct {
	EmployeeID uint   `validate:"required"`
	Year       int    `validate:"min=1,max=9999"`
	Month      int    `validate:"min=1,max=12"`
	Day        int    `validate:"min=1,max=31"`
	Code       string `validate:"max=16"`
}

// SetDayCode сохраняет часы или код отсутствия за день
func (s *AttendanceService) SetDayCode(cmd SetDayCodeCommand) error {
	cmd.Code = attendance.NormalizeCode(cmd.Code)
	if err := validateStruct(cmd); err != nil {
		return err
	}

	n, err := calendar.DaysInMonth(cmd.Year, cmd.Month)
	if err != nil {
		return err
	}
	if cmd.Day > n {
		return fmt.Errorf("%w: dzień %d poza zakresem 1-%d", calendar.ErrInvalidArgument, cmd.Day, n)
	}

	employee, err := s.employeeRepo.GetByID(cmd.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return ErrNotFound
	}

	logger := s.logger.WithFields(logrus.Fields{
		"employee_id": cmd.EmployeeID,
		"date":        fmt.Sprintf("%04d-%02d-%02d", cmd.Year, cmd.Month, cmd.Day),
		"code":        cmd.Code,
	})

	if cmd.Code == "" {
		if err := s.workdayRepo.Delete(cmd.EmployeeID, cmd.Year, cmd.Month, cmd.Day); err != nil {
			logger.WithError(err).Error("Failed to clear day code")
			return err
		}
		logger.Debug("Day code cleared")
		return nil
	}

	err = s.workdayRepo.Upsert(&models.WorkdayEntry{
		EmployeeID: cmd.EmployeeID,
		Year:       cmd.Year,
		Month:      cmd.Month,
		Day:        cmd.Day,
		Code:       cmd.Code,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to save day code")
		return err
	}
	logger.Debug("Day code saved")
	return nil
}

// OverviewRow - строка сводной таблицы месяца
type OverviewRow struct {
	Employee  models.Employee
	Entries   map[int]string
	Summary   attendance.Summary
	Normative contracts.Normative
}

// Overview - месяц отдела: календарь и строки сотрудников
type Overview struct {
	Year       int
	Month      int
	Department string
	Days       []calendar.DayDescriptor
	Catalog    attendance.Catalog
	Rows       []OverviewRow
}

// MonthOverview строит сводку месяца по всем сотрудникам отдела
func (s *AttendanceService) MonthOverview(year, month int, department string) (*Overview, error) {
	days, err := s.calendar.ResolveMonth(year, month, department)
	if err != nil {
		return nil, err
	}

	catalog, err := s.absenceTypes.Catalog()
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByDepartment(department)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employees")
		return nil, err
	}

	rows, err := s.workdayRepo.GetByYearMonth(year, month)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load workdays")
		return nil, err
	}
	entries := models.EntriesToEngine(rows)

	ids := make([]uint, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	summaries := attendance.SummarizeAll(ids, entries, catalog)

	byEmployee := make(map[uint]map[int]string, len(employees))
	for _, e := range entries {
		if byEmployee[e.EmployeeID] == nil {
			byEmployee[e.EmployeeID] = make(map[int]string)
		}
		byEmployee[e.EmployeeID][e.Day] = e.Code
	}

	overview := &Overview{
		Year:       year,
		Month:      month,
		Department: department,
		Days:       days,
		Catalog:    catalog,
		Rows:       make([]OverviewRow, 0, len(employees)),
	}

	for i, employee := range employees {
		normative, err := s.normative(employee, year, month, days)
		if err != nil {
			return nil, err
		}
		s.warnUntracked(summaries[i], year, month)

		entriesByDay := byEmployee[employee.ID]
		if entriesByDay == nil {
			entriesByDay = map[int]string{}
		}
		overview.Rows = append(overview.Rows, OverviewRow{
			Employee:  employee,
			Entries:   entriesByDay,
			Summary:   summaries[i],
			Normative: normative,
		})
	}

	return overview, nil
}

func (s *AttendanceService) normative(employee models.Employee, year, month int, days []calendar.DayDescriptor) (contracts.Normative, error) {
	rows, err := s.contractRepo.GetByEmployeeID(employee.ID)
	if err != nil {
		s.logger.WithError(err).WithField("employee_id", employee.ID).Error("Failed to load contracts")
		return contracts.Normative{}, err
	}

	list := make([]contracts.Contract, 0, len(rows))
	for _, c := range rows {
		list = append(list, c.ToEngine())
	}
	return contracts.ResolveNormative(employee.ToEngine(), list, year, month, days), nil
}

func (s *AttendanceService) warnUntracked(summary attendance.Summary, year, month int) {
	if summary.Untracked == 0 {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"employee_id": summary.EmployeeID,
		"year":        year,
		"month":       month,
		"untracked":   summary.Untracked,
	}).Warn("Unknown day codes ignored in summary")
}

// Card - карточка сотрудника за месяц
type Card struct {
	Year      int
	Month     int
	Employee  models.Employee
	Days      []calendar.DayDescriptor
	Entries   map[int]string
	Catalog   attendance.Catalog
	Summary   attendance.Summary
	Note      string
	Contracts []models.Contract
	Normative contracts.Normative
	Settings  map[string]string
}

// EmployeeCard собирает данные карточки; календарь берется по отделу сотрудника
func (s *AttendanceService) EmployeeCard(employeeID uint, year, month int) (*Card, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	days, err := s.calendar.ResolveMonth(year, month, employee.Department)
	if err != nil {
		return nil, err
	}

	catalog, err := s.absenceTypes.Catalog()
	if err != nil {
		return nil, err
	}

	rows, err := s.workdayRepo.GetByYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	entries := models.EntriesToEngine(rows)

	card := &Card{
		Year:     year,
		Month:    month,
		Employee: *employee,
		Days:     days,
		Entries:  make(map[int]string),
		Catalog:  catalog,
		Summary:  attendance.Summarize(employee.ID, entries, catalog),
	}
	for _, e := range entries {
		if e.EmployeeID == employee.ID {
			card.Entries[e.Day] = e.Code
		}
	}
	s.warnUntracked(card.Summary, year, month)

	note, err := s.noteRepo.Get(employee.ID, year, month)
	if err != nil {
		return nil, err
	}
	if note != nil {
		card.Note = note.Note
	}

	card.Contracts, err = s.contractRepo.GetByEmployeeID(employee.ID)
	if err != nil {
		return nil, err
	}
	card.Normative, err = s.normative(*employee, year, month, days)
	if err != nil {
		return nil, err
	}

	card.Settings, err = s.settingRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for key, def := range models.DefaultSettings() {
		if _, ok := card.Settings[key]; !ok {
			card.Settings[key] = def
		}
	}

	return card, nil
}

// QuarterRow - сводки сотрудника по месяцам и кварталам года
type QuarterRow struct {
	Employee models.Employee
	Months   [12]attendance.Summary
	Quarters [4]attendance.Summary
	Year     attendance.Summary
}

// Quarterly считает годовую сводку отдела с разбивкой по кварталам
func (s *AttendanceService) Quarterly(year int, department string) ([]QuarterRow, attendance.Catalog, error) {
	if err := checkDepartment(department); err != nil {
		return nil, attendance.Catalog{}, err
	}
	if _, err := calendar.DaysInMonth(year, 1); err != nil {
		return nil, attendance.Catalog{}, err
	}

	catalog, err := s.absenceTypes.Catalog()
	if err != nil {
		return nil, attendance.Catalog{}, err
	}

	employees, err := s.employeeRepo.GetByDepartment(department)
	if err != nil {
		return nil, attendance.Catalog{}, err
	}

	rows, err := s.workdayRepo.GetByYear(year)
	if err != nil {
		s.logger.WithError(err).WithField("year", year).Error("Failed to load workdays")
		return nil, attendance.Catalog{}, err
	}
	entries := models.EntriesToEngine(rows)

	result := make([]QuarterRow, 0, len(employees))
	for _, employee := range employees {
		row := QuarterRow{Employee: employee}
		empty := attendance.Summarize(employee.ID, nil, catalog)
		for m := range row.Months {
			row.Months[m] = empty
		}

		for _, ms := range attendance.SummarizeByMonth(employee.ID, entries, catalog) {
			if ms.Year == year && ms.Month >= 1 && ms.Month <= 12 {
				row.Months[ms.Month-1] = ms.Summary
			}
		}

		row.Year = empty
		for q := range row.Quarters {
			quarter := empty
			for m := q * 3; m < q*3+3; m++ {
				quarter = quarter.Merge(row.Months[m])
			}
			row.Quarters[q] = quarter
			row.Year = row.Year.Merge(quarter)
		}
		result = append(result, row)
	}

	return result, catalog, nil
}

// Profile - история сотрудника по всем месяцам
type Profile struct {
	Employee  models.Employee
	Months    []attendance.MonthlySummary
	Notes     []models.Note
	Contracts []models.Contract
	Catalog   attendance.Catalog
}

// Profile собирает помесячные сводки, примечания и договоры сотрудника
func (s *AttendanceService) Profile(employeeID uint) (*Profile, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	catalog, err := s.absenceTypes.Catalog()
	if err != nil {
		return nil, err
	}

	rows, err := s.workdayRepo.GetByEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		Employee: *employee,
		Months:   attendance.SummarizeByMonth(employeeID, models.EntriesToEngine(rows), catalog),
		Catalog:  catalog,
	}

	if profile.Notes, err = s.noteRepo.GetByEmployee(employeeID); err != nil {
		return nil, err
	}
	if profile.Contracts, err = s.contractRepo.GetByEmployeeID(employeeID); err != nil {
		return nil, err
	}
	return profile, nil
}

var monthNames = [12]string{
	"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
	"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
}

// MonthName возвращает польское название месяца
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", month)
	}
	return monthNames[month-1]
}

func formatCounts(summary attendance.Summary, catalog attendance.Catalog) string {
	parts := make([]string, 0, catalog.Len())
	for _, code := range catalog.Codes() {
		if n := summary.Counts[code]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", code, n))
		}
	}
	if len(parts) == 0 {
		return "brak nieobecności"
	}
	return strings.Join(parts, " ")
}

func formatSummaryLine(summary attendance.Summary, catalog attendance.Catalog) string {
	line := fmt.Sprintf("dni: %d, godz.: %s, %s",
		summary.DaysWorked, summary.HoursWorked.String(), formatCounts(summary, catalog))
	if summary.Untracked > 0 {
		line += fmt.Sprintf(", nieznane kody: %d", summary.Untracked)
	}
	return line
}

// FormatOverview - сводка месяца для сообщения
func FormatOverview(o *Overview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s %d - %s\n", MonthName(o.Month), o.Year, o.Department)
	fmt.Fprintf(&b, "Dni robocze: %d, święta: %d\n\n",
		calendar.CountStatus(o.Days, calendar.StatusWorkday),
		calendar.CountStatus(o.Days, calendar.StatusHoliday))

	if len(o.Rows) == 0 {
		b.WriteString("Brak pracowników w dziale.")
		return b.String()
	}

	for _, row := range o.Rows {
		fmt.Fprintf(&b, "#%d %s\n", row.Employee.ID, row.Employee.FullName)
		fmt.Fprintf(&b, "  %s\n", formatSummaryLine(row.Summary, o.Catalog))
		fmt.Fprintf(&b, "  norma: %d dni / %s h\n",
			row.Normative.NormativeDays, formatFloat(row.Normative.NormativeHours))
	}
	return b.String()
}

// FormatCard - карточка сотрудника по дням
func FormatCard(c *Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗂 %s\n", c.Settings[models.SettingCompanyName])
	fmt.Fprintf(&b, "Karta pracy: %s (%s)\n", c.Employee.FullName, c.Employee.Department)
	fmt.Fprintf(&b, "%s %d, dni w miesiącu: %d\n\n", MonthName(c.Month), c.Year, len(c.Days))

	for _, d := range c.Days {
		code := c.Entries[d.Day]
		fmt.Fprintf(&b, "%02d %s %s", d.Day, d.Weekday, d.Status)
		if code != "" {
			fmt.Fprintf(&b, "  %s", code)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n", formatSummaryLine(c.Summary, c.Catalog))
	fmt.Fprintf(&b, "Norma: %d dni / %s h", c.Normative.NormativeDays, formatFloat(c.Normative.NormativeHours))
	if c.Normative.ActiveContract != nil {
		fmt.Fprintf(&b, " (umowa #%d)", c.Normative.ActiveContract.ID)
	}
	b.WriteString("\n")

	if c.Note != "" {
		fmt.Fprintf(&b, "Uwagi: %s\n", c.Note)
	}
	return b.String()
}

// FormatQuarterly - квартальная сводка для сообщения
func FormatQuarterly(year int, department string, rows []QuarterRow, catalog attendance.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Zestawienie kwartalne %d - %s\n\n", year, department)

	if len(rows) == 0 {
		b.WriteString("Brak pracowników w dziale.")
		return b.String()
	}

	for _, row := range rows {
		fmt.Fprintf(&b, "#%d %s\n", row.Employee.ID, row.Employee.FullName)
		for q, summary := range row.Quarters {
			fmt.Fprintf(&b, "  Q%d: %s\n", q+1, formatSummaryLine(summary, catalog))
		}
		fmt.Fprintf(&b, "  Rok: %s\n", formatSummaryLine(row.Year, catalog))
	}
	return b.String()
}

// FormatProfile - история сотрудника для сообщения
func FormatProfile(p *Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s\n", p.Employee.FullName)
	if p.Employee.Position != "" {
		fmt.Fprintf(&b, "Stanowisko: %s\n", p.Employee.Position)
	}
	fmt.Fprintf(&b, "Dział: %s\nNorma: %s h/dzień\n", p.Employee.Department, formatFloat(p.Employee.DailyNorm))
	fmt.Fprintf(&b, "Umowy: %d\n\n", len(p.Contracts))

	if len(p.Months) == 0 {
		b.WriteString("Brak wpisów.\n")
	}

	notes := make(map[attendance.MonthKey]string, len(p.Notes))
	for _, n := range p.Notes {
		notes[attendance.MonthKey{Year: n.Year, Month: n.Month}] = n.Note
	}

	for _, m := range p.Months {
		fmt.Fprintf(&b, "%s %d: %s\n", MonthName(m.Month), m.Year, formatSummaryLine(m.Summary, p.Catalog))
		if note := notes[m.MonthKey]; note != "" {
			fmt.Fprintf(&b, "  uwagi: %s\n", note)
		}
	}
	return b.String()
}
