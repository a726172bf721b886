package catalog

import (
	"encoding/json"
	"testing"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	t.Run("First seen order with repeated options", func(t *testing.T) {
		products := []domain.Product{
			{ItemCategory: "A", ProductName: "X", Option: "red"},
			{ItemCategory: "B", ProductName: "Y", Option: "blue"},
			{ItemCategory: "A", ProductName: "X", Option: "green"},
		}

		tree := GroupByCategory(products)
		require.Len(t, tree.Categories, 2)
		assert.Equal(t, "A", tree.Categories[0].Category)
		assert.Equal(t, "B", tree.Categories[1].Category)

		opts, ok := tree.Options("A", "X")
		require.True(t, ok)
		assert.Equal(t, []string{"red", "green"}, opts)

		opts, ok = tree.Options("B", "Y")
		require.True(t, ok)
		assert.Equal(t, []string{"blue"}, opts)
	})

	t.Run("Products keep first seen order and duplicates", func(t *testing.T) {
		products := []domain.Product{
			{ItemCategory: "sofa", ProductName: "Zeta", Option: "L"},
			{ItemCategory: "sofa", ProductName: "Alpha", Option: ""},
			{ItemCategory: "sofa", ProductName: "Zeta", Option: "L"},
		}

		tree := GroupByCategory(products)
		require.Len(t, tree.Categories, 1)
		require.Len(t, tree.Categories[0].Products, 2)
		assert.Equal(t, "Zeta", tree.Categories[0].Products[0].ProductName)
		assert.Equal(t, "Alpha", tree.Categories[0].Products[1].ProductName)
		assert.Equal(t, []string{"L", "L"}, tree.Categories[0].Products[0].Options)
		assert.Equal(t, []string{""}, tree.Categories[0].Products[1].Options)
	})

	t.Run("Same product name in different categories stays separate", func(t *testing.T) {
		products := []domain.Product{
			{ItemCategory: "A", ProductName: "X", Option: "1"},
			{ItemCategory: "B", ProductName: "X", Option: "2"},
		}

		tree := GroupByCategory(products)
		a, _ := tree.Options("A", "X")
		b, _ := tree.Options("B", "X")
		assert.Equal(t, []string{"1"}, a)
		assert.Equal(t, []string{"2"}, b)
	})

	t.Run("JSON keeps order", func(t *testing.T) {
		tree := GroupByCategory([]domain.Product{
			{ItemCategory: "B", ProductName: "Y", Option: "blue"},
			{ItemCategory: "A", ProductName: "X", Option: "red"},
		})

		data, err := json.Marshal(tree)
		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"category":"B","products":[{"productName":"Y","options":["blue"]}]},
			  {"category":"A","products":[{"productName":"X","options":["red"]}]}]`,
			string(data))
	})

	t.Run("Empty input", func(t *testing.T) {
		data, err := json.Marshal(GroupByCategory(nil))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}

func TestExpansionState(t *testing.T) {
	state := ExpansionState{}

	next := state.Toggle(ExpansionKey("A"))
	assert.True(t, next[ExpansionKey("A")])
	assert.False(t, state[ExpansionKey("A")])

	next = next.Toggle(ExpansionKey("A", "X"))
	assert.True(t, next["A-X"])

	next = next.Toggle(ExpansionKey("A"))
	assert.False(t, next["A"])
	assert.True(t, next["A-X"])
}
