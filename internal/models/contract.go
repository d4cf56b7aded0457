package models

import (
	"time"

	"ewidencja-bot/pkg/contracts"
)

// Contract - договор сотрудника. Даты хранятся строками YYYY-MM-DD,
// чтобы сравнение в SQL и в коде было лексикографическим.
type Contract struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id" validate:"required"`
	StartDate  string    `gorm:"type:varchar(10);not null" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    *string   `gorm:"type:varchar(10)" json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	FTE        float64   `gorm:"not null" json:"fte"`
	DailyNorm  float64   `gorm:"not null" json:"daily_norm" validate:"gt=0,lte=24"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}

// ToEngine конвертирует модель в структуру расчета нормы
func (c Contract) ToEngine() contracts.Contract {
	return contracts.Contract{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		DailyNorm:  c.DailyNorm,
	}
}

// IsOpenEnded - бессрочный договор
func (c Contract) IsOpenEnded() bool {
	return c.EndDate == nil || *c.EndDate == ""
}
