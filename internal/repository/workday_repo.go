package repository

import (
	"ewidencja-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkdayRepository interface {
	// Upsert создает или заменяет код дня (последняя запись побеждает)
	Upsert(entry *models.WorkdayEntry) error
	Delete(employeeID uint, year, month, day int) error
	GetByYearMonth(year, month int) ([]models.WorkdayEntry, error)
	GetByEmployee(employeeID uint) ([]models.WorkdayEntry, error)
	GetByYear(year int) ([]models.WorkdayEntry, error)
}

type GormWorkdayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkdayRepository(db *gorm.DB) (*GormWorkdayRepository, error) {
	logger := newLogger()

	if err := db.AutoMigrate(&models.WorkdayEntry{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate workdays table")
		return nil, err
	}

	return &GormWorkdayRepository{db: db, logger: logger}, nil
}

func (r *GormWorkdayRepository) Upsert(entry *models.WorkdayEntry) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": entry.EmployeeID,
		"year":        entry.Year,
		"month":       entry.Month,
		"day":         entry.Day,
		"code":        entry.Code,
	}).Debug("Upserting workday entry")

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "employee_id"}, {Name: "year"}, {Name: "month"}, {Name: "day"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"code", "updated_at"}),
	}).Create(entry).Error
}

// Delete удаляет запись дня; отсутствие записи ошибкой не считается
func (r *GormWorkdayRepository) Delete(employeeID uint, year, month, day int) error {
	return r.db.
		Where("employee_id = ? AND year = ? AND month = ? AND day = ?", employeeID, year, month, day).
		Delete(&models.WorkdayEntry{}).Error
}

func (r *GormWorkdayRepository) GetByYearMonth(year, month int) ([]models.WorkdayEntry, error) {
	var entries []models.WorkdayEntry
	err := r.db.Where("year = ? AND month = ?", year, month).
		Order("employee_id ASC, day ASC").
		Find(&entries).Error
	return entries, err
}

func (r *GormWorkdayRepository) GetByEmployee(employeeID uint) ([]models.WorkdayEntry, error) {
	var entries []models.WorkdayEntry
	err := r.db.Where("employee_id = ?", employeeID).
		Order("year ASC, month ASC, day ASC").
		Find(&entries).Error
	return entries, err
}

func (r *GormWorkdayRepository) GetByYear(year int) ([]models.WorkdayEntry, error) {
	var entries []models.WorkdayEntry
	err := r.db.Where("year = ?", year).
		Order("employee_id ASC, month ASC, day ASC").
		Find(&entries).Error
	return entries, err
}
