package main

import (
	"os"
	"path/filepath"
	"testing"

	"ewidencja-bot/internal/config"
	"ewidencja-bot/internal/models"
	"ewidencja-bot/pkg/calendar"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"overview", "import-calendar"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestImportCalendar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_URL", filepath.Join(dir, "db", "ewidencja.db"))

	path := filepath.Join(dir, "dni.json")
	content := `{"year": 2025, "department": "Nauczyciel", "months": [{"month": 5, "days": "2, 30:sw"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	root := newRootCmd()
	root.SetArgs([]string{"import-calendar", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("import-calendar error = %v", err)
	}

	// база закрыта командой, открываем заново
	cfg := config.GetBotConfig()
	db, err := openDatabase(cfg)
	if err != nil {
		t.Fatalf("openDatabase() error = %v", err)
	}
	defer closeDatabase(db)

	services, err := newServices(db, cfg)
	if err != nil {
		t.Fatalf("newServices() error = %v", err)
	}

	days, err := services.Calendar.ResolveMonth(2025, 5, models.DepartmentTeacher)
	if err != nil {
		t.Fatalf("ResolveMonth() error = %v", err)
	}
	if days[1].Status != "w" || days[29].Status != "sw" {
		t.Errorf("statuses = %q, %q, want w, sw", days[1].Status, days[29].Status)
	}

	support, err := services.Calendar.ResolveMonth(2025, 5, models.DepartmentSupport)
	if err != nil {
		t.Fatalf("ResolveMonth(support) error = %v", err)
	}
	if support[1].Status != calendar.StatusWorkday {
		t.Errorf("support day 2 = %q, want workday", support[1].Status)
	}

	missing := newRootCmd()
	missing.SetArgs([]string{"import-calendar", filepath.Join(dir, "missing.json")})
	if err := missing.Execute(); err == nil {
		t.Errorf("import-calendar(missing file) error = nil")
	}
}
