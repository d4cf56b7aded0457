package repository

import (
	"errors"

	"ewidencja-bot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteRepository interface {
	Get(employeeID uint, year, month int) (*models.Note, error)
	Upsert(note *models.Note) error
	Delete(employeeID uint, year, month int) error
	GetByEmployee(employeeID uint) ([]models.Note, error)
}

type GormNoteRepository struct {
	db *gorm.DB
}

func NewGormNoteRepository(db *gorm.DB) (*GormNoteRepository, error) {
	if err := db.AutoMigrate(&models.Note{}); err != nil {
		return nil, err
	}
	return &GormNoteRepository{db: db}, nil
}

func (r *GormNoteRepository) Get(employeeID uint, year, month int) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *GormNoteRepository) Upsert(note *models.Note) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"note", "updated_at"}),
	}).Create(note).Error
}

func (r *GormNoteRepository) Delete(employeeID uint, year, month int) error {
	return r.db.Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Delete(&models.Note{}).Error
}

func (r *GormNoteRepository) GetByEmployee(employeeID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("employee_id = ?", employeeID).
		Order("year ASC, month ASC").
		Find(&notes).Error
	return notes, err
}
