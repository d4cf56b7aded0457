package attendance

import "sort"

// AbsenceType - тип отсутствия (код, название, цвет для отображения)
type AbsenceType struct {
	Code      string
	Name      string
	Color     string
	SortOrder int
}

// Catalog - неизменяемый справочник типов отсутствия.
// Передается явно в агрегатор вместо общего состояния запроса.
type Catalog struct {
	types []AbsenceType
	index map[string]int
}

// NewCatalog строит справочник, сортируя типы по SortOrder (стабильно).
// Коды нормализуются, пустые коды и повторы пропускаются.
func NewCatalog(types []AbsenceType) Catalog {
	sorted := make([]AbsenceType, 0, len(types))
	for _, t := range types {
		t.Code = NormalizeCode(t.Code)
		if t.Code == "" {
			continue
		}
		sorted = append(sorted, t)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	c := Catalog{index: make(map[string]int, len(sorted))}
	for _, t := range sorted {
		if _, dup := c.index[t.Code]; dup {
			continue
		}
		c.index[t.Code] = len(c.types)
		c.types = append(c.types, t)
	}
	return c
}

// DefaultCatalog - набор типов, которым заполняется пустая база
func DefaultCatalog() Catalog {
	return NewCatalog(DefaultAbsenceTypes())
}

// DefaultAbsenceTypes возвращает начальные типы отсутствия в порядке по умолчанию
func DefaultAbsenceTypes() []AbsenceType {
	return []AbsenceType{
		{Code: "w", Name: "Urlop wypoczynkowy", Color: "#FABF8F", SortOrder: 1},
		{Code: "l4", Name: "Zwolnienie lekarskie", Color: "#FFC7CE", SortOrder: 2},
		{Code: "nd", Name: "Nieobecność niezawiniona", Color: "#CCC0DA", SortOrder: 3},
		{Code: "bz", Name: "Bezpłatny urlop", Color: "#92D050", SortOrder: 4},
		{Code: "op", Name: "Opieka", Color: "#F6A0F2", SortOrder: 5},
		{Code: "ok", Name: "Obecność okolicznościowa", Color: "#92CDDC", SortOrder: 6},
		{Code: "sw", Name: "Szkolenie wewnętrzne", Color: "#E26B0A", SortOrder: 7},
	}
}

// Types возвращает копию списка типов
func (c Catalog) Types() []AbsenceType {
	out := make([]AbsenceType, len(c.types))
	copy(out, c.types)
	return out
}

// Codes возвращает отслеживаемые коды в порядке сортировки
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c.types))
	for _, t := range c.types {
		codes = append(codes, t.Code)
	}
	return codes
}

// Tracked проверяет, учитывается ли код в сводке
func (c Catalog) Tracked(code string) bool {
	_, ok := c.index[NormalizeCode(code)]
	return ok
}

func (c Catalog) lookup(code string) (AbsenceType, bool) {
	i, ok := c.index[NormalizeCode(code)]
	if !ok {
		return AbsenceType{}, false
	}
	return c.types[i], true
}

// Color возвращает цвет кода или пустую строку
func (c Catalog) Color(code string) string {
	t, _ := c.lookup(code)
	return t.Color
}

// Name возвращает название кода или пустую строку
func (c Catalog) Name(code string) string {
	t, _ := c.lookup(code)
	return t.Name
}

// Len - количество типов
func (c Catalog) Len() int {
	return len(c.types)
}
