package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNotFound возвращается, когда обновляемая или удаляемая запись не найдена
var ErrNotFound = errors.New("record not found")

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

// Repositories - набор всех репозиториев приложения
type Repositories struct {
	Employees    EmployeeRepository
	Contracts    ContractRepository
	Workdays     WorkdayRepository
	Overrides    CalendarOverrideRepository
	AbsenceTypes AbsenceTypeRepository
	Notes        NoteRepository
	Settings     SettingRepository
}

// NewRepositories создает все репозитории (с автомиграцией таблиц)
func NewRepositories(db *gorm.DB) (*Repositories, error) {
	employees, err := NewGormEmployeeRepository(db)
	if err != nil {
		return nil, err
	}
	contracts, err := NewGormContractRepository(db)
	if err != nil {
		return nil, err
	}
	workdays, err := NewGormWorkdayRepository(db)
	if err != nil {
		return nil, err
	}
	overrides, err := NewGormCalendarOverrideRepository(db)
	if err != nil {
		return nil, err
	}
	absenceTypes, err := NewGormAbsenceTypeRepository(db)
	if err != nil {
		return nil, err
	}
	notes, err := NewGormNoteRepository(db)
	if err != nil {
		return nil, err
	}
	settings, err := NewGormSettingRepository(db)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Employees:    employees,
		Contracts:    contracts,
		Workdays:     workdays,
		Overrides:    overrides,
		AbsenceTypes: absenceTypes,
		Notes:        notes,
		Settings:     settings,
	}, nil
}
