package repository

import (
	"ewidencja-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalendarOverrideRepository interface {
	Upsert(override *models.CalendarOverride) error
	Delete(year, month, day int, department string) error
	GetByYearMonth(year, month int, department string) ([]models.CalendarOverride, error)
}

type GormCalendarOverrideRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormCalendarOverrideRepository(db *gorm.DB) (*GormCalendarOverrideRepository, error) {
	logger := newLogger()

	// Автомиграция для таблицы calendar_overrides
	if err := db.AutoMigrate(&models.CalendarOverride{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate calendar_overrides table")
		return nil, err
	}

	return &GormCalendarOverrideRepository{db: db, logger: logger}, nil
}

func (r *GormCalendarOverrideRepository) Upsert(override *models.CalendarOverride) error {
	r.logger.WithFields(logrus.Fields{
		"year":       override.Year,
		"month":      override.Month,
		"day":        override.Day,
		"department": override.Department,
		"code":       override.Code,
	}).Info("Setting calendar override")

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "year"}, {Name: "month"}, {Name: "day"}, {Name: "department"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"code", "updated_at"}),
	}).Create(override).Error
}

func (r *GormCalendarOverrideRepository) Delete(year, month, day int, department string) error {
	r.logger.WithFields(logrus.Fields{
		"year":       year,
		"month":      month,
		"day":        day,
		"department": department,
	}).Info("Removing calendar override")

	return r.db.
		Where("year = ? AND month = ? AND day = ? AND department = ?", year, month, day, department).
		Delete(&models.CalendarOverride{}).Error
}

func (r *GormCalendarOverrideRepository) GetByYearMonth(year, month int, department string) ([]models.CalendarOverride, error) {
	var overrides []models.CalendarOverride
	err := r.db.Where("year = ? AND month = ? AND department = ?", year, month, department).
		Order("day ASC").
		Find(&overrides).Error
	return overrides, err
}
