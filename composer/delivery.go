package composer

import (
	"fmt"
	"strings"

	"shopshopapi/models"
)

// DeliverySection renders the delivery block for an item, or "" when delivery
// is not available. The three-way ladder is deliberate: specific city pricing
// first, other-cities pricing second, and a generic availability line only
// when none of the optional fields were filled.
func DeliverySection(item models.ClothingItem, lang models.Language) string {
	if !item.DeliveryAvailable {
		return ""
	}

	texts := delivery[lang.Normalize()]
	currencySymbol := SymbolFor(item.Currency)

	var section strings.Builder
	section.WriteString("\n\n" + texts.Title + "\n")

	if item.DeliveryCity != "" && item.DeliveryCityPrice != "" {
		section.WriteString(fmt.Sprintf("• %s: %s %s\n", item.DeliveryCity, item.DeliveryCityPrice, currencySymbol))
	}

	if item.OtherCitiesPrice != "" {
		section.WriteString(fmt.Sprintf("• %s: %s %s\n", texts.OtherCities, item.OtherCitiesPrice, currencySymbol))
	}

	if item.DeliveryCity == "" && item.DeliveryCityPrice == "" && item.OtherCitiesPrice == "" {
		section.WriteString(texts.Available + "\n")
	}

	section.WriteString(texts.Fast + "\n" + texts.Secure)

	return section.String()
}
