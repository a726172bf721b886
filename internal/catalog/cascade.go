package catalog

import (
	"strings"

	"github.com/avc/storefront-gateway/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Level уровень каскадного выбора
type Level int

const (
	LevelCategory Level = iota
	LevelBusiness
	LevelProduct
	LevelOption
)

var levelNames = [...]string{"category", "business", "product", "option"}

// Levels все уровни от верхнего к нижнему
var Levels = []Level{LevelCategory, LevelBusiness, LevelProduct, LevelOption}

func (l Level) String() string {
	if l < LevelCategory || l > LevelOption {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel разбирает имя уровня
func ParseLevel(s string) (Level, bool) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), true
		}
	}
	return 0, false
}

// Selection выбранные значения каскада
type Selection struct {
	Category string `json:"category"`
	Business string `json:"business"`
	Product  string `json:"product"`
	Option   string `json:"option"`
}

// Get возвращает значение уровня
func (s Selection) Get(l Level) string {
	switch l {
	case LevelCategory:
		return s.Category
	case LevelBusiness:
		return s.Business
	case LevelProduct:
		return s.Product
	case LevelOption:
		return s.Option
	}
	return ""
}

// With выставляет значение уровня и сбрасывает все более глубокие уровни
func (s Selection) With(l Level, value string) Selection {
	out := Selection{}
	for _, lvl := range Levels {
		switch {
		case lvl < l:
			out = out.set(lvl, s.Get(lvl))
		case lvl == l:
			out = out.set(lvl, value)
		}
	}
	return out
}

func (s Selection) set(l Level, v string) Selection {
	switch l {
	case LevelCategory:
		s.Category = v
	case LevelBusiness:
		s.Business = v
	case LevelProduct:
		s.Product = v
	case LevelOption:
		s.Option = v
	}
	return s
}

// Complete сообщает, выбраны ли категория, бизнес и товар.
// Пустая опция допустима: это товар без вариантов.
func (s Selection) Complete() bool {
	return s.Category != "" && s.Business != "" && s.Product != ""
}

func fieldOf(p domain.Product, l Level) string {
	switch l {
	case LevelCategory:
		return p.ItemCategory
	case LevelBusiness:
		return p.BusinessName
	case LevelProduct:
		return p.ProductName
	case LevelOption:
		return p.Option
	}
	return ""
}

// Resolver вычисляет варианты каскадного выбора
type Resolver struct {
	tag language.Tag
}

// NewResolver создает Resolver с локалью сортировки
func NewResolver(tag language.Tag) *Resolver {
	return &Resolver{tag: tag}
}

// OptionsFor возвращает уникальные значения уровня среди записей,
// совпадающих со всеми вышележащими выборами, в порядке сортировки локали.
// Если какой-то вышележащий выбор пуст, список пуст.
func (r *Resolver) OptionsFor(level Level, sel Selection, records []domain.Product) []string {
	for _, upper := range Levels[:levelIndex(level)] {
		if sel.Get(upper) == "" {
			return []string{}
		}
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range records {
		if !matchesAbove(p, sel, level) {
			continue
		}
		v := fieldOf(p, level)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	// Collator не потокобезопасен, поэтому создается на каждый вызов
	collate.New(r.tag).SortStrings(out)
	return out
}

// ResolvePrice возвращает цену единственной записи, совпадающей со всеми
// четырьмя выборами. При отсутствии совпадения или неоднозначности вернет 0.
func (r *Resolver) ResolvePrice(sel Selection, records []domain.Product) int64 {
	match, ok := UniqueMatch(sel, records)
	if !ok {
		return 0
	}
	return match.Price
}

// UniqueMatch ищет единственную запись, совпадающую с полным выбором
func UniqueMatch(sel Selection, records []domain.Product) (domain.Product, bool) {
	var (
		found domain.Product
		count int
	)
	for _, p := range records {
		if matchesAbove(p, sel, LevelOption+1) {
			found = p
			count++
			if count > 1 {
				return domain.Product{}, false
			}
		}
	}
	return found, count == 1
}

func matchesAbove(p domain.Product, sel Selection, level Level) bool {
	for _, upper := range Levels[:levelIndex(level)] {
		if fieldOf(p, upper) != sel.Get(upper) {
			return false
		}
	}
	return true
}

func levelIndex(l Level) int {
	switch {
	case l < LevelCategory:
		return 0
	case l > LevelOption:
		return len(Levels)
	}
	return int(l)
}
