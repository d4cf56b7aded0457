package models

import "ewidencja-bot/pkg/attendance"

type AbsenceType struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Code      string `gorm:"type:varchar(16);uniqueIndex;not null" json:"code" validate:"required,max=16"`
	Name      string `gorm:"not null" json:"name" validate:"required,max=100"`
	Color     string `gorm:"type:varchar(7);not null" json:"color" validate:"required,hexcolor"`
	SortOrder *int   `json:"sort_order"`
}

func (AbsenceType) TableName() string {
	return "absence_types"
}

// CatalogFromTypes строит справочник для агрегатора. Тип без sort_order сортируется по ID.
func CatalogFromTypes(types []AbsenceType) attendance.Catalog {
	items := make([]attendance.AbsenceType, 0, len(types))
	for _, t := range types {
		order := int(t.ID)
		if t.SortOrder != nil {
			order = *t.SortOrder
		}
		items = append(items, attendance.AbsenceType{
			Code:      t.Code,
			Name:      t.Name,
			Color:     t.Color,
			SortOrder: order,
		})
	}
	return attendance.NewCatalog(items)
}
