package repository

import (
	"errors"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/pkg/attendance"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AbsenceTypeRepository interface {
	Create(t *models.AbsenceType) error
	Update(t *models.AbsenceType) error
	Delete(id uint) error
	GetByID(id uint) (*models.AbsenceType, error)
	// GetAll возвращает типы по sort_order
	GetAll() ([]models.AbsenceType, error)
	// Reorder выставляет sort_order по позиции ID в списке
	Reorder(ids []uint) error
	// SeedDefaults заполняет пустую таблицу типами по умолчанию
	SeedDefaults() (int, error)
}

type GormAbsenceTypeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAbsenceTypeRepository(db *gorm.DB) (*GormAbsenceTypeRepository, error) {
	logger := newLogger()

	if err := db.AutoMigrate(&models.AbsenceType{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate absence_types table")
		return nil, err
	}

	return &GormAbsenceTypeRepository{db: db, logger: logger}, nil
}

// Create добавляет тип; без sort_order тип встает в конец списка
func (r *GormAbsenceTypeRepository) Create(t *models.AbsenceType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		if t.SortOrder != nil {
			return nil
		}
		order := int(t.ID)
		t.SortOrder = &order
		return tx.Model(t).Update("sort_order", order).Error
	})
}

func (r *GormAbsenceTypeRepository) Update(t *models.AbsenceType) error {
	result := r.db.Model(&models.AbsenceType{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"code":  t.Code,
			"name":  t.Name,
			"color": t.Color,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет тип; записи дней с этим кодом не трогаются
func (r *GormAbsenceTypeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.AbsenceType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAbsenceTypeRepository) GetByID(id uint) (*models.AbsenceType, error) {
	var t models.AbsenceType
	err := r.db.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormAbsenceTypeRepository) GetAll() ([]models.AbsenceType, error) {
	var types []models.AbsenceType
	err := r.db.Order("sort_order ASC, id ASC").Find(&types).Error
	return types, err
}

func (r *GormAbsenceTypeRepository) Reorder(ids []uint) error {
	r.logger.WithField("ids", ids).Info("Reordering absence types")

	return r.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range ids {
			if err := tx.Model(&models.AbsenceType{}).
				Where("id = ?", id).
				Update("sort_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormAbsenceTypeRepository) SeedDefaults() (int, error) {
	var count int64
	if err := r.db.Model(&models.AbsenceType{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	defaults := attendance.DefaultAbsenceTypes()
	types := make([]models.AbsenceType, 0, len(defaults))
	for _, d := range defaults {
		order := d.SortOrder
		types = append(types, models.AbsenceType{
			Code:      d.Code,
			Name:      d.Name,
			Color:     d.Color,
			SortOrder: &order,
		})
	}

	if err := r.db.Create(&types).Error; err != nil {
		r.logger.WithError(err).Error("Failed to seed absence types")
		return 0, err
	}

	r.logger.WithField("count", len(types)).Info("Absence types seeded")
	return len(types), nil
}
