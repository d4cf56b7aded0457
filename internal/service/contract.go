package service

import (
	"fmt"
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"
	"ewidencja-bot/pkg/contracts"

	"github.com/sirupsen/logrus"
)

type ContractService struct {
	repo         repository.ContractRepository
	employeeRepo repository.EmployeeRepository
	logger       *logrus.Logger
}

func NewContractService(repo repository.ContractRepository, employeeRepo repository.EmployeeRepository) *ContractService {
	return &ContractService{repo: repo, employeeRepo: employeeRepo, logger: newLogger()}
}

// ContractCommand - данные договора; пустой StartDate означает сегодня, пустой EndDate - бессрочный
type ContractCommand struct {
	EmployeeID uint    `validate:"required"`
	StartDate  string  `validate:"omitempty,datetime=2006-01-02"`
	EndDate    string  `validate:"omitempty,datetime=2006-01-02"`
	DailyNorm  float64 `validate:"gt=0,lte=24"`
}

func (cmd ContractCommand) toModel() (*models.Contract, error) {
	if err := validateStruct(cmd); err != nil {
		return nil, err
	}

	start := cmd.StartDate
	if start == "" {
		start = today()
	}

	contract := &models.Contract{
		EmployeeID: cmd.EmployeeID,
		StartDate:  start,
		FTE:        models.FTEForNorm(cmd.DailyNorm),
		DailyNorm:  cmd.DailyNorm,
	}
	if end := strings.TrimSpace(cmd.EndDate); end != "" {
		if end < start {
			return nil, fmt.Errorf("%w: koniec umowy %s przed początkiem %s", ErrInvalidInput, end, start)
		}
		contract.EndDate = &end
	}
	return contract, nil
}

// Create добавляет договор. Пересечение с другими договорами допускается, но пишется в лог.
func (s *ContractService) Create(cmd ContractCommand) (*models.Contract, error) {
	contract, err := cmd.toModel()
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(cmd.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.Create(contract); err != nil {
		s.logger.WithError(err).WithField("employee_id", cmd.EmployeeID).Error("Failed to create contract")
		return nil, err
	}

	s.warnOverlaps(cmd.EmployeeID)
	return contract, nil
}

// Update заменяет даты и норму договора
func (s *ContractService) Update(id uint, cmd ContractCommand) (*models.Contract, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	cmd.EmployeeID = existing.EmployeeID
	if cmd.StartDate == "" {
		cmd.StartDate = existing.StartDate
	}
	contract, err := cmd.toModel()
	if err != nil {
		return nil, err
	}
	contract.ID = id

	if err := s.repo.Update(contract); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update contract")
		return nil, mapNotFound(err)
	}

	s.warnOverlaps(contract.EmployeeID)
	return contract, nil
}

func (s *ContractService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return mapNotFound(err)
	}
	s.logger.WithField("id", id).Info("Contract deleted")
	return nil
}

// List возвращает договоры сотрудника, новые первыми
func (s *ContractService) List(employeeID uint) ([]models.Contract, error) {
	return s.repo.GetByEmployeeID(employeeID)
}

func (s *ContractService) warnOverlaps(employeeID uint) {
	rows, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to check contract overlaps")
		return
	}

	engine := make([]contracts.Contract, 0, len(rows))
	for _, c := range rows {
		engine = append(engine, c.ToEngine())
	}

	for _, pair := range contracts.Overlapping(engine) {
		s.logger.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"contract_a":  pair[0].ID,
			"contract_b":  pair[1].ID,
		}).Warn("Overlapping contracts, the one with the later start date is used")
	}
}

// FormatContracts - список договоров для сообщения
func FormatContracts(employee *models.Employee, list []models.Contract) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📄 Umowy: %s\n\n", employee.FullName)

	if len(list) == 0 {
		fmt.Fprintf(&b, "Brak umów, obowiązuje norma pracownika: %s h/dzień\n", formatFloat(employee.DailyNorm))
		return b.String()
	}

	for _, c := range list {
		end := "bezterminowo"
		if !c.IsOpenEnded() {
			end = *c.EndDate
		}
		fmt.Fprintf(&b, "#%d %s → %s, %s h/dzień (etat %s)\n",
			c.ID, c.StartDate, end, formatFloat(c.DailyNorm), formatFloat(c.FTE))
	}
	return b.String()
}
