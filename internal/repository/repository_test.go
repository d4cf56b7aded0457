package repository

import (
	"testing"

	"ewidencja-bot/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	// одно соединение - одна in-memory база
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	repos, err := NewRepositories(db)
	if err != nil {
		t.Fatalf("NewRepositories() error = %v", err)
	}
	return repos
}

func strPtr(s string) *string { return &s }

func TestWorkdayRepository_UpsertAndDelete(t *testing.T) {
	repos := newTestRepositories(t)

	entry := &models.WorkdayEntry{EmployeeID: 1, Year: 2025, Month: 5, Day: 2, Code: "8"}
	if err := repos.Workdays.Upsert(entry); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	// повторная запись по тому же ключу заменяет код
	if err := repos.Workdays.Upsert(&models.WorkdayEntry{EmployeeID: 1, Year: 2025, Month: 5, Day: 2, Code: "l4"}); err != nil {
		t.Fatalf("Upsert() second error = %v", err)
	}
	if err := repos.Workdays.Upsert(&models.WorkdayEntry{EmployeeID: 2, Year: 2025, Month: 5, Day: 2, Code: "6"}); err != nil {
		t.Fatalf("Upsert() other employee error = %v", err)
	}

	rows, err := repos.Workdays.GetByYearMonth(2025, 5)
	if err != nil {
		t.Fatalf("GetByYearMonth() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].EmployeeID != 1 || rows[0].Code != "l4" {
		t.Errorf("rows[0] = %+v, want employee 1 with code l4", rows[0])
	}

	if err := repos.Workdays.Delete(1, 2025, 5, 2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	// удаление несуществующей записи не ошибка
	if err := repos.Workdays.Delete(1, 2025, 5, 3); err != nil {
		t.Fatalf("Delete() missing error = %v", err)
	}

	rows, _ = repos.Workdays.GetByYearMonth(2025, 5)
	if len(rows) != 1 || rows[0].EmployeeID != 2 {
		t.Errorf("rows after delete = %+v", rows)
	}
}

func TestCalendarOverrideRepository_ScopedByDepartment(t *testing.T) {
	repos := newTestRepositories(t)

	overrides := []models.CalendarOverride{
		{Year: 2025, Month: 5, Day: 2, Department: models.DepartmentTeacher, Code: "Ś"},
		{Year: 2025, Month: 5, Day: 2, Department: models.DepartmentSupport, Code: "w"},
		{Year: 2025, Month: 5, Day: 2, Department: models.DepartmentTeacher, Code: "sw"},
	}
	for i := range overrides {
		if err := repos.Overrides.Upsert(&overrides[i]); err != nil {
			t.Fatalf("Upsert(%d) error = %v", i, err)
		}
	}

	teacher, err := repos.Overrides.GetByYearMonth(2025, 5, models.DepartmentTeacher)
	if err != nil {
		t.Fatalf("GetByYearMonth() error = %v", err)
	}
	if len(teacher) != 1 || teacher[0].Code != "sw" {
		t.Errorf("teacher overrides = %+v, want single sw", teacher)
	}

	if err := repos.Overrides.Delete(2025, 5, 2, models.DepartmentTeacher); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	teacher, _ = repos.Overrides.GetByYearMonth(2025, 5, models.DepartmentTeacher)
	support, _ := repos.Overrides.GetByYearMonth(2025, 5, models.DepartmentSupport)
	if len(teacher) != 0 {
		t.Errorf("teacher overrides after delete = %+v", teacher)
	}
	if len(support) != 1 {
		t.Errorf("support overrides = %+v, want one", support)
	}
}

func TestContractRepository_OrderedByStartDateDesc(t *testing.T) {
	repos := newTestRepositories(t)

	for _, c := range []models.Contract{
		{EmployeeID: 1, StartDate: "2024-01-01", EndDate: strPtr("2024-12-31"), DailyNorm: 8, FTE: 1},
		{EmployeeID: 1, StartDate: "2025-01-01", DailyNorm: 6, FTE: 0.75},
		{EmployeeID: 2, StartDate: "2025-02-01", DailyNorm: 4, FTE: 0.5},
		{EmployeeID: 1, StartDate: "2025-01-01", DailyNorm: 5, FTE: 0.625},
	} {
		c := c
		if err := repos.Contracts.Create(&c); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := repos.Contracts.GetByEmployeeID(1)
	if err != nil {
		t.Fatalf("GetByEmployeeID() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// при одинаковой дате начала первым идет более поздний договор
	if got[0].DailyNorm != 5 || got[1].DailyNorm != 6 || got[2].StartDate != "2024-01-01" {
		t.Errorf("order = %+v", got)
	}
	if got[2].EndDate == nil || *got[2].EndDate != "2024-12-31" {
		t.Errorf("EndDate = %v, want 2024-12-31", got[2].EndDate)
	}
	if got[0].EndDate != nil {
		t.Errorf("open-ended EndDate = %v, want nil", *got[0].EndDate)
	}
}

func TestAbsenceTypeRepository_SeedAndReorder(t *testing.T) {
	repos := newTestRepositories(t)

	n, err := repos.AbsenceTypes.SeedDefaults()
	if err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}
	if n != 7 {
		t.Errorf("seeded = %d, want 7", n)
	}
	if n, _ := repos.AbsenceTypes.SeedDefaults(); n != 0 {
		t.Errorf("second SeedDefaults() = %d, want 0", n)
	}

	extra := &models.AbsenceType{Code: "dy", Name: "Dyżur", Color: "#123456"}
	if err := repos.AbsenceTypes.Create(extra); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if extra.SortOrder == nil || *extra.SortOrder != int(extra.ID) {
		t.Errorf("SortOrder = %v, want %d", extra.SortOrder, extra.ID)
	}

	types, _ := repos.AbsenceTypes.GetAll()
	if len(types) != 8 || types[0].Code != "w" || types[7].Code != "dy" {
		t.Fatalf("types = %+v", types)
	}

	// новый тип в начало
	ids := []uint{extra.ID}
	for _, tp := range types[:7] {
		ids = append(ids, tp.ID)
	}
	if err := repos.AbsenceTypes.Reorder(ids); err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}

	types, _ = repos.AbsenceTypes.GetAll()
	if types[0].Code != "dy" || types[1].Code != "w" {
		t.Errorf("after reorder first codes = %s, %s", types[0].Code, types[1].Code)
	}

	catalog := models.CatalogFromTypes(types)
	if catalog.Codes()[0] != "dy" {
		t.Errorf("catalog first code = %s, want dy", catalog.Codes()[0])
	}
}

func TestEmployeeRepository_DeleteCascades(t *testing.T) {
	repos := newTestRepositories(t)

	emp := &models.Employee{FullName: "Anna Nowak", Department: models.DepartmentSupport, DailyNorm: 8}
	if err := repos.Employees.Create(emp); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	repos.Contracts.Create(&models.Contract{EmployeeID: emp.ID, StartDate: "2025-01-01", DailyNorm: 8, FTE: 1})
	repos.Workdays.Upsert(&models.WorkdayEntry{EmployeeID: emp.ID, Year: 2025, Month: 1, Day: 2, Code: "8"})
	repos.Notes.Upsert(&models.Note{EmployeeID: emp.ID, Year: 2025, Month: 1, Note: "x"})

	if err := repos.Employees.Delete(emp.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repos.Employees.Delete(emp.ID); err != ErrNotFound {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	got, _ := repos.Employees.GetByID(emp.ID)
	contracts, _ := repos.Contracts.GetByEmployeeID(emp.ID)
	workdays, _ := repos.Workdays.GetByEmployee(emp.ID)
	notes, _ := repos.Notes.GetByEmployee(emp.ID)
	if got != nil || len(contracts) != 0 || len(workdays) != 0 || len(notes) != 0 {
		t.Errorf("leftovers: employee=%v contracts=%d workdays=%d notes=%d", got, len(contracts), len(workdays), len(notes))
	}
}

func TestEmployeeRepository_CreateWithContract(t *testing.T) {
	repos := newTestRepositories(t)

	emp := &models.Employee{FullName: "Anna Nowak", Department: models.DepartmentSupport, DailyNorm: 8}
	contract := &models.Contract{StartDate: "2025-01-01", DailyNorm: 8, FTE: 1}
	if err := repos.Employees.CreateWithContract(emp, contract); err != nil {
		t.Fatalf("CreateWithContract() error = %v", err)
	}
	if emp.ID == 0 || contract.EmployeeID != emp.ID {
		t.Fatalf("ids: employee=%d contract.employee_id=%d", emp.ID, contract.EmployeeID)
	}

	// договор с уже занятым ID не вставится, сотрудник должен откатиться
	second := &models.Employee{FullName: "Jan Kowalski", Department: models.DepartmentTeacher, DailyNorm: 6}
	clash := &models.Contract{ID: contract.ID, StartDate: "2025-02-01", DailyNorm: 6, FTE: 0.75}
	if err := repos.Employees.CreateWithContract(second, clash); err == nil {
		t.Fatal("CreateWithContract(duplicate contract id) error = nil, want error")
	}
	if second.ID != 0 {
		t.Errorf("employee ID after rollback = %d, want 0", second.ID)
	}

	all, err := repos.Employees.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 1 || all[0].FullName != "Anna Nowak" {
		t.Errorf("employees after rollback = %+v, want only Anna Nowak", all)
	}
}

func TestNoteAndSettingRepositories(t *testing.T) {
	repos := newTestRepositories(t)

	repos.Notes.Upsert(&models.Note{EmployeeID: 3, Year: 2025, Month: 4, Note: "pierwsza"})
	repos.Notes.Upsert(&models.Note{EmployeeID: 3, Year: 2025, Month: 4, Note: "druga"})

	note, err := repos.Notes.Get(3, 2025, 4)
	if err != nil || note == nil || note.Note != "druga" {
		t.Errorf("Get() = %+v, %v; want druga", note, err)
	}
	missing, err := repos.Notes.Get(3, 2025, 5)
	if err != nil || missing != nil {
		t.Errorf("Get() missing = %+v, %v", missing, err)
	}

	if err := repos.Settings.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}
	if err := repos.Settings.Set(map[string]string{models.SettingCompanyName: "Szkoła nr 1"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repos.Settings.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults() second error = %v", err)
	}

	settings, _ := repos.Settings.GetAll()
	if settings[models.SettingCompanyName] != "Szkoła nr 1" {
		t.Errorf("company_name = %q", settings[models.SettingCompanyName])
	}
	if settings[models.SettingCompanyNIP] != "0000000000" {
		t.Errorf("company_nip = %q", settings[models.SettingCompanyNIP])
	}
}
