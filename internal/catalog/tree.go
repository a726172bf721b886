package catalog

import (
	"encoding/json"

	"github.com/avc/storefront-gateway/internal/domain"
)

// ProductGroup товар и его опции в порядке строк SKU
type ProductGroup struct {
	ProductName string   `json:"productName"`
	Options     []string `json:"options"`
}

// CategoryGroup категория и ее товары в порядке первого появления
type CategoryGroup struct {
	Category string         `json:"category"`
	Products []ProductGroup `json:"products"`
}

// CategoryTree упорядоченное дерево категория -> товар -> опции
type CategoryTree struct {
	Categories []CategoryGroup
}

// GroupByCategory группирует товары в дерево. Порядок категорий и товаров
// внутри категории соответствует первому появлению во входном списке.
// Повторяющиеся опции сохраняются: каждая строка SKU дает отдельный элемент.
func GroupByCategory(products []domain.Product) CategoryTree {
	tree := CategoryTree{Categories: []CategoryGroup{}}
	catIdx := make(map[string]int)
	prodIdx := make(map[string]int)

	for _, p := range products {
		ci, ok := catIdx[p.ItemCategory]
		if !ok {
			ci = len(tree.Categories)
			catIdx[p.ItemCategory] = ci
			tree.Categories = append(tree.Categories, CategoryGroup{Category: p.ItemCategory})
		}

		key := p.ItemCategory + "\x00" + p.ProductName
		pi, ok := prodIdx[key]
		if !ok {
			pi = len(tree.Categories[ci].Products)
			prodIdx[key] = pi
			tree.Categories[ci].Products = append(tree.Categories[ci].Products, ProductGroup{
				ProductName: p.ProductName,
				Options:     []string{},
			})
		}

		group := &tree.Categories[ci].Products[pi]
		group.Options = append(group.Options, p.Option)
	}
	return tree
}

// Options возвращает опции товара в категории
func (t CategoryTree) Options(category, productName string) ([]string, bool) {
	for _, c := range t.Categories {
		if c.Category != category {
			continue
		}
		for _, p := range c.Products {
			if p.ProductName == productName {
				return p.Options, true
			}
		}
	}
	return nil, false
}

// MarshalJSON сериализует дерево упорядоченным массивом
func (t CategoryTree) MarshalJSON() ([]byte, error) {
	if t.Categories == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Categories)
}

// ExpansionKey составной ключ состояния раскрытия: категория
// или пара (категория, товар)
func ExpansionKey(category string, productName ...string) string {
	if len(productName) == 0 {
		return category
	}
	return category + "-" + productName[0]
}

// ExpansionState состояние раскрытия аккордеона, которым владеет вызывающий
type ExpansionState map[string]bool

// Toggle возвращает новое состояние с инвертированным ключом
func (s ExpansionState) Toggle(key string) ExpansionState {
	out := make(ExpansionState, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[key] = !s[key]
	return out
}
