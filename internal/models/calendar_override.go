package models

import (
	"time"

	"ewidencja-bot/pkg/calendar"
)

// CalendarOverride - ручная замена статуса дня для отдела
type CalendarOverride struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Year       int       `gorm:"not null;uniqueIndex:idx_override_key" json:"year"`
	Month      int       `gorm:"not null;uniqueIndex:idx_override_key;check:month >= 1 AND month <= 12" json:"month"`
	Day        int       `gorm:"not null;uniqueIndex:idx_override_key" json:"day"`
	Department string    `gorm:"not null;uniqueIndex:idx_override_key" json:"department"`
	Code       string    `gorm:"type:varchar(32);not null" json:"code"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CalendarOverride) TableName() string {
	return "calendar_overrides"
}

// ToEngine конвертирует модель в замену для календаря
func (o CalendarOverride) ToEngine() calendar.Override {
	return calendar.Override{
		Year:       o.Year,
		Month:      o.Month,
		Day:        o.Day,
		Department: o.Department,
		Code:       o.Code,
	}
}
