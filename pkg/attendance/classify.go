package attendance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind - результат классификации кода дня
type Kind int

const (
	KindEmpty     Kind = iota // пустой код, как будто записи нет
	KindNumeric               // количество отработанных часов
	KindTracked               // код из справочника типов отсутствия
	KindUntracked             // неизвестный код, в сводку не попадает
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumeric:
		return "numeric"
	case KindTracked:
		return "tracked"
	case KindUntracked:
		return "untracked"
	}
	return "unknown"
}

// Classification описывает код дня после нормализации
type Classification struct {
	Kind  Kind
	Code  string
	Hours decimal.Decimal
}

// NormalizeCode приводит код к нижнему регистру без пробелов по краям
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ParseHours разбирает числовой код как десятичное число.
// NaN, бесконечности, "1_0" и "0x1p3" числом не считаются.
func ParseHours(code string) (decimal.Decimal, bool) {
	hours, err := decimal.NewFromString(code)
	if err != nil {
		return decimal.Zero, false
	}
	return hours, true
}

// ClassifyCode классифицирует код дня относительно справочника
func ClassifyCode(code string, catalog Catalog) Classification {
	c := NormalizeCode(code)
	if c == "" {
		return Classification{Kind: KindEmpty}
	}
	if hours, ok := ParseHours(c); ok {
		return Classification{Kind: KindNumeric, Code: c, Hours: hours}
	}
	if catalog.Tracked(c) {
		return Classification{Kind: KindTracked, Code: c}
	}
	return Classification{Kind: KindUntracked, Code: c}
}
