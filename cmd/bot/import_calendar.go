package main

import (
	"fmt"

	"ewidencja-bot/internal/config"
	"ewidencja-bot/pkg/daysoff"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func importCalendarCmd() *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "import-calendar <file.json>",
		Short: "Wczytaj zmiany statusów dni działu z pliku JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetBotConfig()

			overrides, err := daysoff.ParseFile(args[0])
			if err != nil {
				return err
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

			for _, o := range overrides {
				dept := o.Department
				if dept == "" {
					dept = department
				}
				if dept == "" {
					dept = cfg.DefaultDepartment
				}
				if err := services.Calendar.SetOverride(o.Year, o.Month, o.Day, dept, o.Code); err != nil {
					return fmt.Errorf("%04d-%02d-%02d: %w", o.Year, o.Month, o.Day, err)
				}
			}

			logrus.WithField("count", len(overrides)).Info("Calendar overrides imported")
			fmt.Printf("✅ Wczytano %d zmian kalendarza\n", len(overrides))
			return nil
		},
	}

	cmd.Flags().StringVarP(&department, "department", "d", "", "Dział, gdy plik go nie podaje")

	return cmd
}
