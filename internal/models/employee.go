package models

import (
	"time"

	"ewidencja-bot/pkg/contracts"
)

// Отделы
const (
	DepartmentSupport = "Obsługa"
	DepartmentTeacher = "Nauczyciel"
)

// Departments возвращает список известных отделов
func Departments() []string {
	return []string{DepartmentSupport, DepartmentTeacher}
}

// IsValidDepartment проверяет название отдела
func IsValidDepartment(department string) bool {
	return department == DepartmentSupport || department == DepartmentTeacher
}

// Employee - сотрудник; DailyNorm используется, если на месяц нет договора
type Employee struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FullName      string    `gorm:"uniqueIndex;not null" json:"full_name" validate:"required,max=200"`
	Position      string    `json:"position" validate:"max=200"`
	PayrollNumber string    `json:"payroll_number" validate:"max=50"`
	WorkTimeFTE   float64   `json:"work_time_fte"`
	DailyNorm     float64   `gorm:"not null;default:8" json:"daily_norm" validate:"gt=0,lte=24"`
	Notes         string    `json:"notes"`
	Department    string    `gorm:"index" json:"department" validate:"required,oneof=Obsługa Nauczyciel"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// FTEForNorm переводит дневную норму в долю ставки (8 часов = 1.0)
func FTEForNorm(dailyNorm float64) float64 {
	return dailyNorm / 8
}

// ToEngine возвращает данные для расчета нормы
func (e Employee) ToEngine() contracts.Employee {
	return contracts.Employee{ID: e.ID, DailyNorm: e.DailyNorm}
}
