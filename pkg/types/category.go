package types

// CategoryAll is the filter sentinel that matches every category. It is
// never stored on a record.
const CategoryAll = "All"

// Recipe categories. The set is closed.
const (
	CategoryFastFood   = "FastFood"
	CategoryDasi       = "Dasi"
	CategorySeaFood    = "SeaFood"
	CategoryDesserts   = "Desserts"
	CategoryBeverages  = "Beverages"
	CategoryVegetarian = "Vegetarian"
	CategoryHealthy    = "Healthy"
	CategoryVegan      = "Vegan"
	CategoryGrilled    = "Grilled"
	CategorySalads     = "Salads"
	CategorySoups      = "Soups"
	CategoryBreakfast  = "Breakfast"
	CategoryPasta      = "Pasta"
	CategorySnacks     = "Snacks"
	CategoryRice       = "Rice"
	CategoryBaked      = "Baked"
)

// Categories lists the enumeration in display order.
var Categories = []string{
	CategoryFastFood,
	CategoryDasi,
	CategorySeaFood,
	CategoryDesserts,
	CategoryBeverages,
	CategoryVegetarian,
	CategoryHealthy,
	CategoryVegan,
	CategoryGrilled,
	CategorySalads,
	CategorySoups,
	CategoryBreakfast,
	CategoryPasta,
	CategorySnacks,
	CategoryRice,
	CategoryBaked,
}

// validCategories is the set of recognized category values.
var validCategories = func() map[string]bool {
	m := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidCategory reports whether c is one of the enumerated categories.
// Matching is exact; "Dessert" and "desserts" are not valid.
func ValidCategory(c string) bool {
	return validCategories[c]
}

// ValidFilterCategory reports whether c may be used as a category filter:
// an enumerated category or CategoryAll.
func ValidFilterCategory(c string) bool {
	return c == CategoryAll || validCategories[c]
}
