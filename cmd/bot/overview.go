package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"ewidencja-bot/internal/config"
	"ewidencja-bot/internal/export"
	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/service"

	"github.com/spf13/cobra"
)

func overviewCmd() *cobra.Command {
	now := time.Now()

	var year, month int
	var department, xlsxPath string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Zestawienie miesiąca działu na standardowe wyjście",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetBotConfig()
			if department == "" {
				department = cfg.DefaultDepartment
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			services, err := newServices(db, cfg)
			if err != nil {
				return err
			}

			overview, err := services.Attendance.MonthOverview(year, month, department)
			if err != nil {
				return fmt.Errorf("build overview: %w", err)
			}

			if xlsxPath != "" {
				settings, err := services.Settings.GetAll()
				if err != nil {
					return err
				}
				f, err := os.Create(xlsxPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", xlsxPath, err)
				}
				defer f.Close()
				if err := export.WriteMonth(f, overview, settings[models.SettingCompanyName]); err != nil {
					return err
				}
				fmt.Printf("📝 Zapisano %s\n", xlsxPath)
				return nil
			}

			printOverview(overview)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", now.Year(), "Rok")
	cmd.Flags().IntVarP(&month, "month", "m", int(now.Month()), "Miesiąc (1-12)")
	cmd.Flags().StringVarP(&department, "department", "d", "", "Dział (Obsługa lub Nauczyciel)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Zapisz zestawienie do pliku xlsx")

	return cmd
}

func printOverview(o *service.Overview) {
	fmt.Printf("%s %d - %s\n\n", service.MonthName(o.Month), o.Year, o.Department)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "ID\tPracownik\tDni\tGodz.")
	for _, code := range o.Catalog.Codes() {
		fmt.Fprintf(w, "\t%s", code)
	}
	fmt.Fprint(w, "\tNorma dni\tNorma godz.\n")

	for _, row := range o.Rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s", row.Employee.ID, row.Employee.FullName,
			row.Summary.DaysWorked, row.Summary.HoursWorked.String())
		for _, code := range o.Catalog.Codes() {
			fmt.Fprintf(w, "\t%d", row.Summary.Counts[code])
		}
		fmt.Fprintf(w, "\t%d\t%g\n", row.Normative.NormativeDays, row.Normative.NormativeHours)
	}
	w.Flush()
}
