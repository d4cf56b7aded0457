package service

import (
	"errors"
	"fmt"
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound          = errors.New("nie znaleziono")
	ErrInvalidDepartment = errors.New("nieznany dział")
	ErrInvalidInput      = errors.New("nieprawidłowe dane")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct проверяет теги validate и возвращает понятную ошибку
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}

func checkDepartment(department string) error {
	if !models.IsValidDepartment(department) {
		return fmt.Errorf("%w: %q", ErrInvalidDepartment, department)
	}
	return nil
}

// mapNotFound переводит ошибку репозитория в ошибку сервиса
func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.GetLevel())
	logger.SetOutput(logrus.StandardLogger().Out)
	return logger
}

// Services - все сервисы приложения
type Services struct {
	Calendar     *CalendarService
	Attendance   *AttendanceService
	Employees    *EmployeeService
	Contracts    *ContractService
	AbsenceTypes *AbsenceTypeService
	Notes        *NoteService
	Settings     *SettingsService
}

// NewServices связывает сервисы с репозиториями
func NewServices(repos *repository.Repositories, defaultDailyNorm float64) *Services {
	calendarService := NewCalendarService(repos.Overrides)
	absenceTypeService := NewAbsenceTypeService(repos.AbsenceTypes)
	attendanceService := NewAttendanceService(
		repos.Workdays,
		repos.Employees,
		repos.Contracts,
		repos.Notes,
		repos.Settings,
		calendarService,
		absenceTypeService,
	)

	return &Services{
		Calendar:     calendarService,
		Attendance:   attendanceService,
		Employees:    NewEmployeeService(repos.Employees, defaultDailyNorm),
		Contracts:    NewContractService(repos.Contracts, repos.Employees),
		AbsenceTypes: absenceTypeService,
		Notes:        NewNoteService(repos.Notes),
		Settings:     NewSettingsService(repos.Settings),
	}
}
