package service

import (
	"fmt"
	"strings"
	"time"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	repo             repository.EmployeeRepository
	defaultDailyNorm float64
	logger           *logrus.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository, defaultDailyNorm float64) *EmployeeService {
	return &EmployeeService{
		repo:             repo,
		defaultDailyNorm: defaultDailyNorm,
		logger:           newLogger(),
	}
}

// CreateEmployeeCommand - данные нового сотрудника.
// Если ContractStart задан, сразу создается бессрочный договор с той же нормой.
type CreateEmployeeCommand struct {
	FullName      string  `validate:"required,max=200"`
	Position      string  `validate:"max=200"`
	PayrollNumber string  `validate:"max=50"`
	Department    string  `validate:"required"`
	DailyNorm     float64 `validate:"gte=0,lte=24"`
	Notes         string
	ContractStart string `validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeCommand - частичное изменение, nil означает "не менять"
type UpdateEmployeeCommand struct {
	FullName      *string  `validate:"omitempty,min=1,max=200"`
	Position      *string  `validate:"omitempty,max=200"`
	PayrollNumber *string  `validate:"omitempty,max=50"`
	Department    *string  `validate:"omitempty"`
	DailyNorm     *float64 `validate:"omitempty,gt=0,lte=24"`
}

// Create создает сотрудника и, при необходимости, его первый договор
func (s *EmployeeService) Create(cmd CreateEmployeeCommand) (*models.Employee, error) {
	cmd.FullName = strings.TrimSpace(cmd.FullName)
	if cmd.DailyNorm == 0 {
		cmd.DailyNorm = s.defaultDailyNorm
	}

	if err := validateStruct(cmd); err != nil {
		return nil, err
	}
	if err := checkDepartment(cmd.Department); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		FullName:      cmd.FullName,
		Position:      strings.TrimSpace(cmd.Position),
		PayrollNumber: strings.TrimSpace(cmd.PayrollNumber),
		WorkTimeFTE:   models.FTEForNorm(cmd.DailyNorm),
		DailyNorm:     cmd.DailyNorm,
		Notes:         cmd.Notes,
		Department:    cmd.Department,
	}
	if err := validateStruct(employee); err != nil {
		return nil, err
	}

	if cmd.ContractStart == "" {
		if err := s.repo.Create(employee); err != nil {
			s.logger.WithError(err).WithField("full_name", employee.FullName).Error("Failed to create employee")
			return nil, err
		}
	} else {
		contract := &models.Contract{
			StartDate: cmd.ContractStart,
			FTE:       employee.WorkTimeFTE,
			DailyNorm: employee.DailyNorm,
		}
		if err := s.repo.CreateWithContract(employee, contract); err != nil {
			s.logger.WithError(err).WithField("full_name", employee.FullName).Error("Failed to create employee with first contract")
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"id":         employee.ID,
		"full_name":  employee.FullName,
		"department": employee.Department,
	}).Info("Employee created")

	return employee, nil
}

// Update применяет частичные изменения
func (s *EmployeeService) Update(id uint, cmd UpdateEmployeeCommand) (*models.Employee, error) {
	if err := validateStruct(cmd); err != nil {
		return nil, err
	}

	employee, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if cmd.FullName != nil {
		employee.FullName = strings.TrimSpace(*cmd.FullName)
	}
	if cmd.Position != nil {
		employee.Position = strings.TrimSpace(*cmd.Position)
	}
	if cmd.PayrollNumber != nil {
		employee.PayrollNumber = strings.TrimSpace(*cmd.PayrollNumber)
	}
	if cmd.Department != nil {
		if err := checkDepartment(*cmd.Department); err != nil {
			return nil, err
		}
		employee.Department = *cmd.Department
	}
	if cmd.DailyNorm != nil {
		employee.DailyNorm = *cmd.DailyNorm
		employee.WorkTimeFTE = models.FTEForNorm(*cmd.DailyNorm)
	}

	if err := validateStruct(employee); err != nil {
		return nil, err
	}
	if err := s.repo.Update(employee); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update employee")
		return nil, mapNotFound(err)
	}

	return employee, nil
}

// Delete удаляет сотрудника вместе со всеми его данными
func (s *EmployeeService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return mapNotFound(err)
	}
	s.logger.WithField("id", id).Info("Employee deleted")
	return nil
}

func (s *EmployeeService) Get(id uint) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to get employee")
		return nil, err
	}
	if employee == nil {
		return nil, ErrNotFound
	}
	return employee, nil
}

// List возвращает сотрудников отдела; пустой отдел - всех
func (s *EmployeeService) List(department string) ([]models.Employee, error) {
	if department == "" {
		return s.repo.GetAll()
	}
	if err := checkDepartment(department); err != nil {
		return nil, err
	}
	return s.repo.GetByDepartment(department)
}

// FormatEmployees - список сотрудников для сообщения
func FormatEmployees(employees []models.Employee) string {
	if len(employees) == 0 {
		return "Brak pracowników."
	}

	var b strings.Builder
	b.WriteString("👥 Pracownicy:\n\n")
	for _, e := range employees {
		fmt.Fprintf(&b, "#%d %s", e.ID, e.FullName)
		if e.Position != "" {
			fmt.Fprintf(&b, ", %s", e.Position)
		}
		fmt.Fprintf(&b, " [%s] norma %s h\n", e.Department, formatFloat(e.DailyNorm))
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// today - дата в формате договоров
func today() string {
	return time.Now().Format("2006-01-02")
}
