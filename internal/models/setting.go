package models

type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

// Ключи настроек по умолчанию
const (
	SettingCompanyName = "company_name"
	SettingCompanyNIP  = "company_nip"
)

// DefaultSettings - значения, которыми заполняется пустая таблица
func DefaultSettings() map[string]string {
	return map[string]string{
		SettingCompanyName: "Nazwa firmy",
		SettingCompanyNIP:  "0000000000",
	}
}
