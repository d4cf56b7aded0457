package repository

import (
	"errors"

	"ewidencja-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	CreateWithContract(employee *models.Employee, contract *models.Contract) error
	Update(employee *models.Employee) error
	Delete(id uint) error
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	GetByDepartment(department string) ([]models.Employee, error)
}

type GormEmployeeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB) (*GormEmployeeRepository, error) {
	logger := newLogger()

	// Автомиграция
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate employees table")
		return nil, err
	}

	return &GormEmployeeRepository{db: db, logger: logger}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	r.logger.WithFields(logrus.Fields{
		"full_name":  employee.FullName,
		"department": employee.Department,
	}).Info("Creating employee")

	if err := r.db.Create(employee).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create employee")
		return err
	}
	return nil
}

// CreateWithContract сохраняет сотрудника и его первый договор в одной транзакции
func (r *GormEmployeeRepository) CreateWithContract(employee *models.Employee, contract *models.Contract) error {
	r.logger.WithFields(logrus.Fields{
		"full_name":      employee.FullName,
		"department":     employee.Department,
		"contract_start": contract.StartDate,
	}).Info("Creating employee with contract")

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(employee).Error; err != nil {
			return err
		}
		contract.EmployeeID = employee.ID
		return tx.Create(contract).Error
	})
	if err != nil {
		r.logger.WithError(err).Error("Failed to create employee with contract")
		// после отката ID не принадлежит ни одной записи
		employee.ID = 0
		return err
	}
	return nil
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	result := r.db.Model(&models.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]interface{}{
			"full_name":      employee.FullName,
			"position":       employee.Position,
			"payroll_number": employee.PayrollNumber,
			"work_time_fte":  employee.WorkTimeFTE,
			"daily_norm":     employee.DailyNorm,
			"department":     employee.Department,
		})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update employee")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет сотрудника вместе с договорами, записями дней и примечаниями
func (r *GormEmployeeRepository) Delete(id uint) error {
	r.logger.WithField("id", id).Info("Deleting employee")

	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Employee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.Contract{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.WorkdayEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("employee_id = ?", id).Delete(&models.Note{}).Error
	})
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Employee not found")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("full_name ASC").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) GetByDepartment(department string) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("department = ?", department).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}
