package catalog

import (
	"slices"
	"strings"
)

// SortOrder направление сортировки
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortOrder разбирает направление, по умолчанию asc
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

// ColumnKind способ сравнения значений колонки
type ColumnKind int

const (
	// KindString сравнение строк без учета регистра
	KindString ColumnKind = iota
	// KindDate сравнение по разобранной дате, нераспознанная дата = эпоха 0
	KindDate
)

// Column колонка таблицы
type Column[T any] struct {
	Name  string
	Kind  ColumnKind
	Value func(T) string
}

// Table набор колонок над записями типа T
type Table[T any] struct {
	columns map[string]Column[T]
}

// NewTable создает таблицу из колонок
func NewTable[T any](columns ...Column[T]) *Table[T] {
	t := &Table[T]{columns: make(map[string]Column[T], len(columns))}
	for _, c := range columns {
		t.columns[c.Name] = c
	}
	return t
}

// HasColumn сообщает, есть ли колонка
func (t *Table[T]) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// SortBy возвращает стабильно отсортированную копию записей.
// Пустое или неизвестное поле дает копию без изменения порядка.
func (t *Table[T]) SortBy(records []T, field string, order SortOrder) []T {
	out := slices.Clone(records)
	if out == nil {
		out = []T{}
	}
	col, ok := t.columns[field]
	if !ok {
		return out
	}

	keys := make([]sortKey, len(out))
	for i, r := range out {
		keys[i] = makeSortKey(col, r)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}

	slices.SortStableFunc(idx, func(a, b int) int {
		c := keys[a].compare(keys[b])
		if order == Desc {
			return -c
		}
		return c
	})

	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// Search возвращает записи, у которых значение поля содержит term без учета
// регистра. Пустой term возвращает вход без изменений, неизвестное поле дает
// пустой результат.
func (t *Table[T]) Search(records []T, field, term string) []T {
	if term == "" {
		return records
	}
	col, ok := t.columns[field]
	if !ok {
		return []T{}
	}
	needle := strings.ToLower(term)
	out := []T{}
	for _, r := range records {
		if strings.Contains(strings.ToLower(col.Value(r)), needle) {
			out = append(out, r)
		}
	}
	return out
}

type sortKey struct {
	str  string
	unix int64
	date bool
}

func makeSortKey[T any](col Column[T], r T) sortKey {
	v := col.Value(r)
	if col.Kind == KindDate {
		var ts int64
		if t := ParseDate(v); t != nil {
			ts = t.UnixMilli()
		}
		return sortKey{unix: ts, date: true}
	}
	return sortKey{str: strings.ToLower(v)}
}

func (k sortKey) compare(o sortKey) int {
	if k.date {
		switch {
		case k.unix < o.unix:
			return -1
		case k.unix > o.unix:
			return 1
		}
		return 0
	}
	return strings.Compare(k.str, o.str)
}

// SortState состояние сортировки одной таблицы
type SortState struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// Toggle обрабатывает клик по заголовку: та же колонка переключает asc/desc,
// новая колонка начинает с asc
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Order == Asc {
			return SortState{Field: field, Order: Desc}
		}
		return SortState{Field: field, Order: Asc}
	}
	return SortState{Field: field, Order: Asc}
}
