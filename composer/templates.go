package composer

import (
	"fmt"
	"strings"

	"shopshopapi/languageutil"
	"shopshopapi/models"
)

type templateKey struct {
	Language models.Language
	Variant  models.TemplateVariant
}

type templateFunc func(item models.ClothingItem) string

// optLine renders "prefix value\n" or nothing at all. Blank fields must not
// leave an empty labeled line behind.
func optLine(value string, format string, args ...interface{}) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(format, args...) + "\n"
}

func brandPrefix(item models.ClothingItem) string {
	if item.Brand == "" {
		return ""
	}
	return item.Brand + " "
}

var templates = map[templateKey]templateFunc{
	{models.EN, models.VariantBasic}: func(item models.ClothingItem) string {
		l := labels[models.EN]
		currencySymbol := SymbolFor(item.Currency)
		return fmt.Sprintf(`%s%s in %s | Size %s

📏 %s: %s
🎨 %s: %s
🧵 %s: %s
✨ %s: %s
🌟 %s: %s
👥 %s: %s
%s%s
%s
Perfect for %s wear and everyday styling. This %s offers comfort and style in one package.
%s

#Fashion #%s #Style #Clothing`,
			brandPrefix(item), item.Type, item.Color, item.Size,
			l.Size, item.Size,
			l.Color, item.Color,
			l.Material, item.Fabric,
			l.Condition, item.Condition,
			l.Season, item.Season,
			l.Category, item.Category,
			optLine(item.Brand, "🏷️ %s: %s", l.Brand, item.Brand),
			optLine(item.Price, "💰 %s: %s %s", l.Price, item.Price, currencySymbol),
			optLine(item.Notes, "📝 %s: %s", l.AdditionalDetails, item.Notes),
			languageutil.LowerFor("en", item.Season), languageutil.LowerFor("en", item.Type),
			DeliverySection(item, models.EN),
			languageutil.HashtagToken(item.Type),
		)
	},

	{models.EN, models.VariantProfessional}: func(item models.ClothingItem) string {
		l := labels[models.EN]
		currencySymbol := SymbolFor(item.Currency)
		colorVerb := " makes"
		if strings.Contains(item.Color, ",") {
			colorVerb = "s make"
		}
		pricedAt := ""
		if item.Price != "" {
			pricedAt = fmt.Sprintf("Priced at %s %s - ", item.Price, currencySymbol)
		}
		return fmt.Sprintf(`✨ %s%s - %s

🔹 %s:
• %s: %s
• %s: %s
• %s: %s
• %s: %s
• %s: %s
• %s: %s
%s%s
%s
🔹 %s:
This premium %s combines quality craftsmanship with timeless style. Made from high-quality %s, it offers both durability and comfort. The %s color%s it versatile for various occasions, perfect for %s wear.

Designed for %s, this piece represents excellent value for quality fashion.
%s

💰 %sExcellent value for a quality piece
📦 Ready to ship
🌟 Customer satisfaction guaranteed

#QualityClothing #%s #PremiumFashion #%s`,
			brandPrefix(item), item.Type, item.Color,
			l.ProductDetails,
			l.Size, item.Size,
			l.Color, item.Color,
			l.Fabric, item.Fabric,
			l.Condition, item.Condition,
			l.Season, item.Season,
			l.Category, item.Category,
			optLine(item.Brand, "• %s: %s", l.Brand, item.Brand),
			optLine(item.Price, "• %s: %s %s", l.Price, item.Price, currencySymbol),
			optLine(item.Notes, "• %s: %s", l.SpecialFeatures, item.Notes),
			l.Description,
			languageutil.LowerFor("en", item.Type), languageutil.LowerFor("en", item.Fabric),
			languageutil.LowerFor("en", item.Color), colorVerb,
			languageutil.LowerFor("en", item.Season),
			languageutil.LowerFor("en", item.Category),
			DeliverySection(item, models.EN),
			pricedAt,
			languageutil.HashtagToken(item.Type), languageutil.HashtagToken(item.Season),
		)
	},

	{models.FR, models.VariantBasic}: func(item models.ClothingItem) string {
		l := labels[models.FR]
		currencySymbol := SymbolFor(item.Currency)
		return fmt.Sprintf(`%s%s en %s | Taille %s

📏 %s: %s
🎨 %s: %s
🧵 %s: %s
✨ %s: %s
🌟 %s: %s
👥 %s: %s
%s%s
%s
Parfait pour le porter %s et le style quotidien. Ce %s offre confort et style en un seul ensemble.
%s

#Mode #%s #Style #Vêtements`,
			brandPrefix(item), item.Type, item.Color, item.Size,
			l.Size, item.Size,
			l.Color, item.Color,
			l.Material, item.Fabric,
			l.Condition, item.Condition,
			l.Season, item.Season,
			l.Category, item.Category,
			optLine(item.Brand, "🏷️ %s: %s", l.Brand, item.Brand),
			optLine(item.Price, "💰 %s: %s %s", l.Price, item.Price, currencySymbol),
			optLine(item.Notes, "📝 %s: %s", l.AdditionalDetails, item.Notes),
			languageutil.LowerFor("fr", item.Season), languageutil.LowerFor("fr", item.Type),
			DeliverySection(item, models.FR),
			languageutil.HashtagToken(item.Type),
		)
	},

	{models.FR, models.VariantProfessional}: func(item models.ClothingItem) string {
		l := labels[models.FR]
		currencySymbol := SymbolFor(item.Currency)
		pricedAt := ""
		if item.Price != "" {
			pricedAt = fmt.Sprintf("%s: %s %s - ", l.Price, item.Price, currencySymbol)
		}
		return fmt.Sprintf(`✨ %s%s - %s

🔹 %s:
• %s: %s
• %s: %s
• %s: %s
• %s: %s
• %s: %s
• %s: %s
%s%s
%s
🔹 %s:
Ce %s haut de gamme combine un savoir-faire de qualité avec un style intemporel. Fabriqué en %s de haute qualité, il offre à la fois durabilité et confort. La couleur %s le rend polyvalent pour diverses occasions, parfait pour la saison %s.

Conçu pour %s, cette pièce représente un excellent rapport qualité-prix.
%s

💰 %sExcellent rapport qualité-prix
📦 Prêt à expédier
🌟 Satisfaction client garantie

#VêtementsQualité #%s #ModePremium #%s`,
			brandPrefix(item), item.Type, item.Color,
			l.ProductDetails,
			l.Size, item.Size,
			l.Color, item.Color,
			l.Fabric, item.Fabric,
			l.Condition, item.Condition,
			l.Season, item.Season,
			l.Category, item.Category,
			optLine(item.Brand, "• %s: %s", l.Brand, item.Brand),
			optLine(item.Price, "• %s: %s %s", l.Price, item.Price, currencySymbol),
			optLine(item.Notes, "• %s: %s", l.SpecialFeatures, item.Notes),
			l.Description,
			languageutil.LowerFor("fr", item.Type), languageutil.LowerFor("fr", item.Fabric),
			languageutil.LowerFor("fr", item.Color), languageutil.LowerFor("fr", item.Season),
			languageutil.LowerFor("fr", item.Category),
			DeliverySection(item, models.FR),
			pricedAt,
			languageutil.HashtagToken(item.Type), languageutil.HashtagToken(item.Season),
		)
	},

	{models.AR, models.VariantBasic}: func(item models.ClothingItem) string {
		l := labels[models.AR]
		currencySymbol := SymbolFor(item.Currency)
		return fmt.Sprintf(`%s%s باللون %s | المقاس %s

📏 %s: %s
🎨 %s: %s
🧵 %s: %s
✨ %s: %s
🌟 %s: %s
👥 %s: %s
%s%s
%s
مثالي للارتداء %s والأناقة العصرية. هذا %s يوفر الراحة والأناقة في قطعة واحدة.
%s

#أزياء #%s #ستايل #ملابس`,
			brandPrefix(item), item.Type, item.Color, item.Size,
			l.Size, item.Size,
			l.Color, item.Color,
			l.Material, item.Fabric,
			l.Condition, item.Condition,
			l.Season, item.Season,
			l.Category, item.Category,
			optLine(item.Brand, "🏷️ %s: %s", l.Brand, item.Brand),
			optLine(item.Price, "💰 %s: %s %s", l.Price, item.Price, currencySymbol),
			optLine(item.Notes, "📝 %s: %s", l.AdditionalDetails, item.Notes),
			item.Season, item.Type,
			DeliverySection(item, models.AR),
			languageutil.HashtagToken(item.Type),
		)
	},

	{models.AR, models.VariantProfessional}: func(item models.ClothingItem) string {
		l := labels[models.AR]
		currencySymbol := SymbolFor(item.Currency)
		pricedAt := ""
		if item.Price != "" {
			pricedAt = fmt.Sprintf("%s: %s %s - ", l.Price, item.Price, currencySymbol)
		}
		return fmt.Sprintf(`✨ %s%s - %s

🔹 %s:
• %s: %s
• %s: %s
• %s: %s
• %s: %s
• %s: %s
• %s: %s
%s%s
%s
🔹 %s:
هذا %s الفاخر يجمع بين الجودة العالية والأناقة الخالدة. مصنوع من %s عالي الجودة، يوفر المتانة والراحة معاً. اللون %s يجعله متناسقاً مع مختلف المناسبات، مثالي للموسم %s.

مصمم لفئة %s، هذه القطعة تمثل قيمة ممتازة للأزياء عالية الجودة.
%s

💰 %sقيمة ممتازة مقابل قطعة عالية الجودة
📦 جاهز للشحن
🌟 ضمان رضا العملاء

#ملابس_جودة #%s #أزياء_فاخرة #%s`,
			brandPrefix(item), item.Type, item.Color,
			l.ProductDetails,
			l.Size, item.Size,
			l.Color, item.Color,
			l.Fabric, item.Fabric,
			l.Condition, item.Condition,
			l.Season, item.Season,
			l.Category, item.Category,
			optLine(item.Brand, "• %s: %s", l.Brand, item.Brand),
			optLine(item.Price, "• %s: %s %s", l.Price, item.Price, currencySymbol),
			optLine(item.Notes, "• %s: %s", l.SpecialFeatures, item.Notes),
			l.Description,
			item.Type, item.Fabric, item.Color, item.Season,
			item.Category,
			DeliverySection(item, models.AR),
			pricedAt,
			languageutil.HashtagToken(item.Type), languageutil.HashtagToken(item.Season),
		)
	},
}
