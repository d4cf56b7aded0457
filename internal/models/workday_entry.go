package models

import (
	"time"

	"ewidencja-bot/pkg/attendance"
)

// WorkdayEntry - код дня сотрудника: часы ("8", "7.5") или код отсутствия ("l4", "w").
// Пустых кодов в таблице нет, пустой код удаляет запись.
type WorkdayEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_workday_key" json:"employee_id"`
	Year       int       `gorm:"not null;uniqueIndex:idx_workday_key;index:idx_workday_month" json:"year"`
	Month      int       `gorm:"not null;uniqueIndex:idx_workday_key;index:idx_workday_month;check:month >= 1 AND month <= 12" json:"month"`
	Day        int       `gorm:"not null;uniqueIndex:idx_workday_key;check:day >= 1 AND day <= 31" json:"day"`
	Code       string    `gorm:"type:varchar(16);not null" json:"code"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkdayEntry) TableName() string {
	return "workdays"
}

// ToEngine конвертирует модель в запись агрегатора
func (w WorkdayEntry) ToEngine() attendance.Entry {
	return attendance.Entry{
		EmployeeID: w.EmployeeID,
		Year:       w.Year,
		Month:      w.Month,
		Day:        w.Day,
		Code:       w.Code,
	}
}

// EntriesToEngine конвертирует список записей
func EntriesToEngine(rows []WorkdayEntry) []attendance.Entry {
	out := make([]attendance.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEngine())
	}
	return out
}
