package service

import (
	"fmt"
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"
	"ewidencja-bot/pkg/attendance"

	"github.com/sirupsen/logrus"
)

type AbsenceTypeService struct {
	repo   repository.AbsenceTypeRepository
	logger *logrus.Logger
}

func NewAbsenceTypeService(repo repository.AbsenceTypeRepository) *AbsenceTypeService {
	return &AbsenceTypeService{repo: repo, logger: newLogger()}
}

// CreateAbsenceTypeCommand - данные нового типа отсутствия
type CreateAbsenceTypeCommand struct {
	Code  string `validate:"required,max=16"`
	Name  string `validate:"required,max=100"`
	Color string `validate:"required,hexcolor"`
}

func (s *AbsenceTypeService) checkCode(code string) error {
	if _, ok := attendance.ParseHours(code); ok {
		return fmt.Errorf("%w: kod %q wygląda jak liczba godzin", ErrInvalidInput, code)
	}
	return nil
}

// Create добавляет тип отсутствия в конец списка
func (s *AbsenceTypeService) Create(cmd CreateAbsenceTypeCommand) (*models.AbsenceType, error) {
	cmd.Code = attendance.NormalizeCode(cmd.Code)
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Color = strings.TrimSpace(cmd.Color)

	if err := validateStruct(cmd); err != nil {
		return nil, err
	}
	if err := s.checkCode(cmd.Code); err != nil {
		return nil, err
	}

	t := &models.AbsenceType{Code: cmd.Code, Name: cmd.Name, Color: cmd.Color}
	if err := s.repo.Create(t); err != nil {
		s.logger.WithError(err).WithField("code", cmd.Code).Error("Failed to create absence type")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":   t.ID,
		"code": t.Code,
	}).Info("Absence type created")
	return t, nil
}

// Update меняет код, название и цвет типа
func (s *AbsenceTypeService) Update(id uint, cmd CreateAbsenceTypeCommand) error {
	cmd.Code = attendance.NormalizeCode(cmd.Code)
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Color = strings.TrimSpace(cmd.Color)

	if err := validateStruct(cmd); err != nil {
		return err
	}
	if err := s.checkCode(cmd.Code); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	existing.Code = cmd.Code
	existing.Name = cmd.Name
	existing.Color = cmd.Color
	if err := s.repo.Update(existing); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update absence type")
		return mapNotFound(err)
	}
	return nil
}

// Delete удаляет тип. Уже сохраненные коды дней остаются и считаются неучтенными.
func (s *AbsenceTypeService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return mapNotFound(err)
	}
	s.logger.WithField("id", id).Info("Absence type deleted")
	return nil
}

// DeleteByCode удаляет тип по коду
func (s *AbsenceTypeService) DeleteByCode(code string) error {
	t, err := s.GetByCode(code)
	if err != nil {
		return err
	}
	return s.Delete(t.ID)
}

// GetByCode ищет тип по нормализованному коду
func (s *AbsenceTypeService) GetByCode(code string) (*models.AbsenceType, error) {
	code = attendance.NormalizeCode(code)
	types, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].Code == code {
			return &types[i], nil
		}
	}
	return nil, ErrNotFound
}

// List возвращает типы в порядке отображения
func (s *AbsenceTypeService) List() ([]models.AbsenceType, error) {
	return s.repo.GetAll()
}

// Reorder задает новый порядок по списку кодов. Коды, не попавшие в список, идут следом в прежнем порядке.
func (s *AbsenceTypeService) Reorder(codes []string) error {
	types, err := s.repo.GetAll()
	if err != nil {
		return err
	}

	byCode := make(map[string]uint, len(types))
	for _, t := range types {
		byCode[t.Code] = t.ID
	}

	ids := make([]uint, 0, len(types))
	used := make(map[uint]bool, len(types))
	for _, code := range codes {
		id, ok := byCode[attendance.NormalizeCode(code)]
		if !ok {
			return fmt.Errorf("%w: kod %q", ErrNotFound, code)
		}
		if used[id] {
			continue
		}
		used[id] = true
		ids = append(ids, id)
	}
	for _, t := range types {
		if !used[t.ID] {
			ids = append(ids, t.ID)
		}
	}

	if err := s.repo.Reorder(ids); err != nil {
		s.logger.WithError(err).Error("Failed to reorder absence types")
		return err
	}
	return nil
}

// Catalog возвращает справочник для агрегатора
func (s *AbsenceTypeService) Catalog() (attendance.Catalog, error) {
	types, err := s.repo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load absence types")
		return attendance.Catalog{}, err
	}
	return models.CatalogFromTypes(types), nil
}

// SeedDefaults заполняет справочник при первом запуске
func (s *AbsenceTypeService) SeedDefaults() error {
	n, err := s.repo.SeedDefaults()
	if err != nil {
		s.logger.WithError(err).Error("Failed to seed absence types")
		return err
	}
	if n > 0 {
		s.logger.WithField("count", n).Info("Default absence types seeded")
	}
	return nil
}

// FormatTypes - список типов для сообщения
func FormatTypes(types []models.AbsenceType) string {
	if len(types) == 0 {
		return "Brak typów nieobecności."
	}

	var b strings.Builder
	b.WriteString("Typy nieobecności:\n")
	for _, t := range types {
		fmt.Fprintf(&b, "• %s - %s (%s)\n", t.Code, t.Name, t.Color)
	}
	return b.String()
}
