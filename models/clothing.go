package models

import "strings"

// DefaultCurrency is the sentinel the form seeds a fresh item with. An item
// where only currency differs from this value still counts as empty.
const DefaultCurrency = "USD"

// ClothingItem is the attribute bag a user fills in. Multi-select fields
// (color, season etc.) are stored as comma-joined strings. No escaping is
// applied, a value containing a literal comma will split on round-trip.
type ClothingItem struct {
	Type      string `json:"type"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Fabric    string `json:"fabric"`
	Condition string `json:"condition"`
	Brand     string `json:"brand"`
	Notes     string `json:"notes"`
	Season    string `json:"season"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Currency  string `json:"currency"`

	DeliveryAvailable bool   `json:"delivery_available"`
	DeliveryCity      string `json:"delivery_city"`
	DeliveryCityPrice string `json:"delivery_city_price"`
	OtherCitiesPrice  string `json:"other_cities_price"`
}

// NewClothingItem returns the all-empty defaults the form starts from.
func NewClothingItem() ClothingItem {
	return ClothingItem{Currency: DefaultCurrency}
}

// HasAnyData reports whether the item carries anything beyond the defaults.
// Booleans are ignored, and the default currency sentinel does not count as
// data: a form where only the currency was touched is still "empty".
func (item ClothingItem) HasAnyData() bool {
	fields := []string{
		item.Type, item.Size, item.Color, item.Fabric, item.Condition,
		item.Brand, item.Notes, item.Season, item.Category, item.Price,
		item.DeliveryCity, item.DeliveryCityPrice, item.OtherCitiesPrice,
	}
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return strings.TrimSpace(item.Currency) != "" && item.Currency != DefaultCurrency
}

// DedupeMultiSelect normalizes a comma-joined multi-select value: tokens are
// trimmed and duplicates dropped while keeping first-seen order.
func DedupeMultiSelect(value string) string {
	if value == "" {
		return ""
	}
	seen := map[string]bool{}
	var tokens []string
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, ", ")
}

// NormalizeMultiSelects dedupes every multi-select field in place.
func (item *ClothingItem) NormalizeMultiSelects() {
	item.Color = DedupeMultiSelect(item.Color)
	item.Season = DedupeMultiSelect(item.Season)
	item.Category = DedupeMultiSelect(item.Category)
	item.Fabric = DedupeMultiSelect(item.Fabric)
}
