package composer

import (
	"strings"
	"testing"

	"shopshopapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullItem() models.ClothingItem {
	return models.ClothingItem{
		Type:              "Jacket",
		Color:             "Black",
		Size:              "L",
		Fabric:            "Cotton",
		Condition:         "Brand New",
		Brand:             "Nike",
		Season:            "Winter",
		Category:          "Men",
		Price:             "40",
		Currency:          "USD",
		DeliveryAvailable: true,
		DeliveryCity:      "Cairo",
		DeliveryCityPrice: "5",
		OtherCitiesPrice:  "10",
	}
}

func TestComposeEmptyItemReturnsNarrative(t *testing.T) {
	item := models.NewClothingItem()

	for _, lang := range models.SupportedLanguages {
		output := Compose(item, lang, models.VariantProfessional)
		require.Equal(t, EmptyStateNarrative(lang), output, "language %s", lang)
	}

	// delivery flag alone is not meaningful data
	item.DeliveryAvailable = true
	assert.Equal(t, EmptyStateNarrative(models.EN), Compose(item, models.EN, models.VariantProfessional))

	// ...and neither is the untouched default currency
	item = models.ClothingItem{Currency: models.DefaultCurrency}
	assert.Equal(t, EmptyStateNarrative(models.EN), Compose(item, models.EN, models.VariantBasic))
}

func TestComposeUnknownLanguageFallsBack(t *testing.T) {
	output := Compose(fullItem(), models.Language("de"), models.VariantProfessional)
	assert.Contains(t, output, "Product Details")
}

func TestComposeProfessionalScenario(t *testing.T) {
	output := Compose(fullItem(), models.EN, models.VariantProfessional)

	assert.Contains(t, output, "Nike Jacket - Black")
	assert.Contains(t, output, "Price: 40 $")
	assert.Contains(t, output, "🚚 Delivery Information:")
	assert.Contains(t, output, "Cairo: 5 $")
	assert.Contains(t, output, "Other Cities: 10 $")
	assert.Contains(t, output, "#QualityClothing #Jacket #PremiumFashion #Winter")

	// section order: header before bullets before narrative before delivery
	header := strings.Index(output, "Nike Jacket - Black")
	details := strings.Index(output, "Product Details")
	narrative := strings.Index(output, "This premium jacket")
	deliveryIdx := strings.Index(output, "Delivery Information")
	closing := strings.Index(output, "Customer satisfaction guaranteed")
	assert.True(t, header < details && details < narrative && narrative < deliveryIdx && deliveryIdx < closing)
}

func TestComposeBasicVariant(t *testing.T) {
	output := Compose(fullItem(), models.EN, models.VariantBasic)

	assert.Contains(t, output, "Nike Jacket in Black | Size L")
	assert.Contains(t, output, "🧵 Material: Cotton")
	assert.Contains(t, output, "Perfect for winter wear")
	assert.Contains(t, output, "#Fashion #Jacket #Style #Clothing")
}

func TestComposeOmitsBlankBrandAndPrice(t *testing.T) {
	item := fullItem()
	item.Brand = ""
	item.Price = ""

	output := Compose(item, models.EN, models.VariantProfessional)
	assert.NotContains(t, output, "• Brand:")
	assert.NotContains(t, output, "• Price:")
	assert.True(t, strings.HasPrefix(output, "✨ Jacket - Black"))
}

func TestComposeMulticolorPluralization(t *testing.T) {
	item := fullItem()
	item.Color = "Black, White"

	output := Compose(item, models.EN, models.VariantProfessional)
	assert.Contains(t, output, "colors make it versatile")

	item.Color = "Black"
	output = Compose(item, models.EN, models.VariantProfessional)
	assert.Contains(t, output, "color makes it versatile")
}

func TestComposeHashtagsStripWhitespace(t *testing.T) {
	item := fullItem()
	item.Season = "All Seasons"

	output := Compose(item, models.EN, models.VariantProfessional)
	assert.Contains(t, output, "#AllSeasons")
}

func TestDeliverySectionOmittedWhenUnavailable(t *testing.T) {
	item := fullItem()
	item.DeliveryAvailable = false

	for _, lang := range models.SupportedLanguages {
		output := Compose(item, lang, models.VariantProfessional)
		assert.NotContains(t, output, delivery[lang].Title, "language %s", lang)
		assert.NotContains(t, output, "🚚")
	}
}

func TestDeliveryLadder(t *testing.T) {
	item := fullItem()
	item.DeliveryCity = "Tunis"
	item.DeliveryCityPrice = "10"
	item.OtherCitiesPrice = ""

	section := DeliverySection(item, models.EN)
	assert.Contains(t, section, "• Tunis: 10 $")
	assert.NotContains(t, section, "Other Cities")
	assert.NotContains(t, section, "• Delivery Available")

	// no specifics at all: generic availability line instead
	item.DeliveryCity = ""
	item.DeliveryCityPrice = ""
	section = DeliverySection(item, models.EN)
	assert.Contains(t, section, "• Delivery Available")
	assert.NotContains(t, section, "Tunis")

	// trust lines always close the section
	assert.Contains(t, section, "• Fast & Reliable Shipping")
	assert.Contains(t, section, "• Secure Packaging")
}

func TestDeliveryLadderOtherCitiesOnly(t *testing.T) {
	item := fullItem()
	item.DeliveryCity = ""
	item.DeliveryCityPrice = ""
	item.OtherCitiesPrice = "15"

	section := DeliverySection(item, models.FR)
	assert.Contains(t, section, "• Autres Villes: 15 $")
	assert.NotContains(t, section, "• Livraison Disponible")
}

func TestCurrencySymbolFallback(t *testing.T) {
	assert.Equal(t, "XYZ", SymbolFor("XYZ"))
	assert.Equal(t, "$", SymbolFor("USD"))
	assert.Equal(t, "€", SymbolFor("EUR"))
	assert.Equal(t, "د.ت", SymbolFor("TND"))
}

func TestComposeIsDeterministic(t *testing.T) {
	item := fullItem()
	first := Compose(item, models.AR, models.VariantProfessional)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Compose(item, models.AR, models.VariantProfessional))
	}
	assert.Contains(t, first, "تفاصيل المنتج")
}
