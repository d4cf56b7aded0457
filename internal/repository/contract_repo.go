package repository

import (
	"errors"

	"ewidencja-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ContractRepository interface {
	Create(contract *models.Contract) error
	Update(contract *models.Contract) error
	Delete(id uint) error
	GetByID(id uint) (*models.Contract, error)
	// GetByEmployeeID возвращает договоры по убыванию start_date (при равенстве - более поздний ID первым)
	GetByEmployeeID(employeeID uint) ([]models.Contract, error)
}

type GormContractRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormContractRepository(db *gorm.DB) (*GormContractRepository, error) {
	logger := newLogger()

	if err := db.AutoMigrate(&models.Contract{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate contracts table")
		return nil, err
	}

	return &GormContractRepository{db: db, logger: logger}, nil
}

func (r *GormContractRepository) Create(contract *models.Contract) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": contract.EmployeeID,
		"start_date":  contract.StartDate,
		"daily_norm":  contract.DailyNorm,
	}).Info("Creating contract")

	return r.db.Create(contract).Error
}

func (r *GormContractRepository) Update(contract *models.Contract) error {
	result := r.db.Model(&models.Contract{}).
		Where("id = ?", contract.ID).
		Updates(map[string]interface{}{
			"start_date": contract.StartDate,
			"end_date":   contract.EndDate,
			"fte":        contract.FTE,
			"daily_norm": contract.DailyNorm,
		})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update contract")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormContractRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Contract{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormContractRepository) GetByID(id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.First(&contract, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *GormContractRepository) GetByEmployeeID(employeeID uint) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.Where("employee_id = ?", employeeID).
		Order("start_date DESC, id DESC").
		Find(&contracts).Error
	return contracts, err
}
