package category

import (
	"strings"

	"github.com/google/uuid"

	"github.com/elelcahyani/uangku/internal/transaction"
)

// Category is a named, colored, typed grouping for transactions and
// budgets. Transactions and budgets reference it loosely by name, not by
// id, so renaming or deleting a category orphans historical records rather
// than cascading.
type Category struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Color string           `json:"color"`
	Icon  string           `json:"icon"`
	Type  transaction.Type `json:"type"`
}

// DefaultIcon is assigned to every category created through the tracker.
const DefaultIcon = "Circle"

// Fallback colors for references that no longer resolve to a category.
const (
	fallbackColor = "#EC4899"
)

// Defaults returns the seed set used when no categories have been
// persisted yet: 4 income and 8 expense categories, each with a distinct
// color.
func Defaults() []Category {
	seed := []struct {
		name  string
		color string
		typ   transaction.Type
	}{
		{"Salary", "#EC4899", transaction.TypeIncome},
		{"Freelance", "#F472B6", transaction.TypeIncome},
		{"Investment", "#FB7185", transaction.TypeIncome},
		{"Bonus", "#F87171", transaction.TypeIncome},

		{"Food", "#FBBF24", transaction.TypeExpense},
		{"Transport", "#A78BFA", transaction.TypeExpense},
		{"Shopping", "#8B5CF6", transaction.TypeExpense},
		{"Entertainment", "#06B6D4", transaction.TypeExpense},
		{"Health", "#10B981", transaction.TypeExpense},
		{"Education", "#34D399", transaction.TypeExpense},
		{"Bills", "#FB923C", transaction.TypeExpense},
		{"Other", "#6B7280", transaction.TypeExpense},
	}

	cats := make([]Category, len(seed))
	for i, s := range seed {
		cats[i] = Category{
			ID:    uuid.NewString(),
			Name:  s.name,
			Color: s.color,
			Icon:  DefaultIcon,
			Type:  s.typ,
		}
	}

	return cats
}

// AddParams holds the user-supplied fields of a new or updated category.
type AddParams struct {
	Name  string
	Color string
	Type  transaction.Type
}

// Add appends a fresh category. A name that is empty after trimming is a
// no-op: the original collection is returned unchanged with a nil second
// value. Name uniqueness is deliberately not enforced; duplicate names are
// legal and lookups resolve to the first match.
func Add(cats []Category, p AddParams) ([]Category, *Category) {
	if strings.TrimSpace(p.Name) == "" {
		return cats, nil
	}

	cat := Category{
		ID:    uuid.NewString(),
		Name:  p.Name,
		Color: p.Color,
		Icon:  DefaultIcon,
		Type:  p.Type,
	}

	out := make([]Category, 0, len(cats)+1)
	out = append(out, cats...)
	out = append(out, cat)

	return out, &cat
}

// Update replaces the name, color and type of the category matching id,
// keeping its id and icon. An unknown id or blank name is a no-op.
func Update(cats []Category, id string, p AddParams) ([]Category, *Category) {
	if strings.TrimSpace(p.Name) == "" {
		return cats, nil
	}

	out := make([]Category, len(cats))
	copy(out, cats)

	for i := range out {
		if out[i].ID != id {
			continue
		}

		out[i].Name = p.Name
		out[i].Color = p.Color
		out[i].Type = p.Type

		return out, &out[i]
	}

	return cats, nil
}

// Remove returns a new collection without the category matching id.
// Transactions and budgets referencing it by name are left alone.
func Remove(cats []Category, id string) []Category {
	out := make([]Category, 0, len(cats))

	for _, cat := range cats {
		if cat.ID == id {
			continue
		}

		out = append(out, cat)
	}

	return out
}

// Resolve looks a category up by name, first match wins. Unresolved
// references get a placeholder descriptor so orphaned transactions still
// render with a color and icon.
func Resolve(cats []Category, name string) Category {
	for _, cat := range cats {
		if cat.Name == name {
			return cat
		}
	}

	return Category{
		Name:  name,
		Color: fallbackColor,
		Icon:  DefaultIcon,
	}
}

// OfType returns the categories of the given type, preserving order.
func OfType(cats []Category, typ transaction.Type) []Category {
	out := make([]Category, 0, len(cats))

	for _, cat := range cats {
		if cat.Type == typ {
			out = append(out, cat)
		}
	}

	return out
}
