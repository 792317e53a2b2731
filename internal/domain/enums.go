package domain

import "strings"

type Category string

const (
	CategorySight     Category = "sight"
	CategoryFood      Category = "food"
	CategoryHotel     Category = "hotel"
	CategoryTransport Category = "transport"
	CategoryCoffee    Category = "coffee"
	CategoryOther     Category = "other"
)

// ValidCategories is the canonical set of recognized category strings.
// "other" is deliberately absent: it is the fallback, not an input.
var ValidCategories = map[string]bool{
	"sight": true, "food": true, "hotel": true, "transport": true, "coffee": true,
}

// Categories lists the recognized categories in display order.
var Categories = []Category{
	CategorySight, CategoryFood, CategoryHotel, CategoryTransport, CategoryCoffee,
}

// ParseCategory maps free-form input onto a Category. It never fails:
// anything unrecognized becomes CategoryOther.
func ParseCategory(s string) Category {
	norm := strings.ToLower(strings.TrimSpace(s))
	if ValidCategories[norm] {
		return Category(norm)
	}
	return CategoryOther
}
