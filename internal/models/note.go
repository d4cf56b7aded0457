package models

import "time"

// Note - примечание к месяцу сотрудника
type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_note_key" json:"employee_id"`
	Year       int       `gorm:"not null;uniqueIndex:idx_note_key" json:"year"`
	Month      int       `gorm:"not null;uniqueIndex:idx_note_key" json:"month"`
	Note       string    `gorm:"type:text" json:"note"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
