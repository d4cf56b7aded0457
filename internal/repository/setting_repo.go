package repository

import (
	"ewidencja-bot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	GetAll() (map[string]string, error)
	Set(values map[string]string) error
	SeedDefaults() error
}

type GormSettingRepository struct {
	db *gorm.DB
}

func NewGormSettingRepository(db *gorm.DB) (*GormSettingRepository, error) {
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, err
	}
	return &GormSettingRepository{db: db}, nil
}

func (r *GormSettingRepository) GetAll() (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Set заменяет значения переданных ключей
func (r *GormSettingRepository) Set(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	rows := make([]models.Setting, 0, len(values))
	for k, v := range values {
		rows = append(rows, models.Setting{Key: k, Value: v})
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rows).Error
}

// SeedDefaults добавляет отсутствующие настройки, существующие не меняет
func (r *GormSettingRepository) SeedDefaults() error {
	rows := make([]models.Setting, 0)
	for k, v := range models.DefaultSettings() {
		rows = append(rows, models.Setting{Key: k, Value: v})
	}

	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
