package service

import (
	"fmt"
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"
	"ewidencja-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
)

type CalendarService struct {
	repo   repository.CalendarOverrideRepository
	logger *logrus.Logger
}

func NewCalendarService(repo repository.CalendarOverrideRepository) *CalendarService {
	return &CalendarService{repo: repo, logger: newLogger()}
}

// ResolveMonth строит календарь месяца отдела с учетом ручных замен.
// Календарь каждый раз строится заново, кэша нет.
func (s *CalendarService) ResolveMonth(year, month int, department string) ([]calendar.DayDescriptor, error) {
	if err := checkDepartment(department); err != nil {
		return nil, err
	}
	if _, err := calendar.DaysInMonth(year, month); err != nil {
		return nil, err
	}

	rows, err := s.repo.GetByYearMonth(year, month, department)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load calendar overrides")
		return nil, err
	}

	overrides := make([]calendar.Override, 0, len(rows))
	for _, row := range rows {
		overrides = append(overrides, row.ToEngine())
	}

	return calendar.ResolveMonth(year, month, department, overrides)
}

func (s *CalendarService) checkDay(year, month, day int) error {
	n, err := calendar.DaysInMonth(year, month)
	if err != nil {
		return err
	}
	if day < 1 || day > n {
		return fmt.Errorf("%w: dzień %d poza zakresem 1-%d", calendar.ErrInvalidArgument, day, n)
	}
	return nil
}

// SetOverride задает статус дня для отдела; пустой код удаляет замену
func (s *CalendarService) SetOverride(year, month, day int, department, code string) error {
	if err := checkDepartment(department); err != nil {
		return err
	}
	if err := s.checkDay(year, month, day); err != nil {
		return err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return s.DeleteOverride(year, month, day, department)
	}

	err := s.repo.Upsert(&models.CalendarOverride{
		Year:       year,
		Month:      month,
		Day:        day,
		Department: department,
		Code:       code,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to save calendar override")
		return err
	}
	return nil
}

// DeleteOverride возвращает дню статус по умолчанию
func (s *CalendarService) DeleteOverride(year, month, day int, department string) error {
	if err := checkDepartment(department); err != nil {
		return err
	}
	if err := s.checkDay(year, month, day); err != nil {
		return err
	}

	if err := s.repo.Delete(year, month, day, department); err != nil {
		s.logger.WithError(err).Error("Failed to delete calendar override")
		return err
	}
	return nil
}
