package composer

import "shopshopapi/models"

// labelSet is the closed set of translated label keys a template may use.
// Every language must fill every field, a missing translation is a compile
// error rather than a blank line at runtime.
type labelSet struct {
	Size              string
	Color             string
	Material          string // basic variant wording
	Fabric            string // professional variant wording
	Condition         string
	Season            string
	Category          string
	Brand             string
	Price             string
	AdditionalDetails string
	SpecialFeatures   string
	ProductDetails    string
	Description       string
}

// deliveryTexts is the closed set of delivery-section lines per language.
type deliveryTexts struct {
	Title       string
	OtherCities string
	Available   string
	Fast        string
	Secure      string
}

var labels = map[models.Language]labelSet{
	models.EN: {
		Size:              "Size",
		Color:             "Color",
		Material:          "Material",
		Fabric:            "Fabric",
		Condition:         "Condition",
		Season:            "Season",
		Category:          "Category",
		Brand:             "Brand",
		Price:             "Price",
		AdditionalDetails: "Additional Details",
		SpecialFeatures:   "Special Features",
		ProductDetails:    "Product Details",
		Description:       "Description",
	},
	models.FR: {
		Size:              "Taille",
		Color:             "Couleur",
		Material:          "Matière",
		Fabric:            "Tissu",
		Condition:         "État",
		Season:            "Saison",
		Category:          "Catégorie",
		Brand:             "Marque",
		Price:             "Prix",
		AdditionalDetails: "Détails supplémentaires",
		SpecialFeatures:   "Caractéristiques spéciales",
		ProductDetails:    "Détails du produit",
		Description:       "Description",
	},
	models.AR: {
		Size:              "المقاس",
		Color:             "اللون",
		Material:          "القماش",
		Fabric:            "نوع القماش",
		Condition:         "الحالة",
		Season:            "الموسم",
		Category:          "الفئة",
		Brand:             "الماركة",
		Price:             "السعر",
		AdditionalDetails: "تفاصيل إضافية",
		SpecialFeatures:   "ميزات خاصة",
		ProductDetails:    "تفاصيل المنتج",
		Description:       "الوصف",
	},
}

var delivery = map[models.Language]deliveryTexts{
	models.EN: {
		Title:       "🚚 Delivery Information:",
		OtherCities: "Other Cities",
		Available:   "• Delivery Available",
		Fast:        "• Fast & Reliable Shipping",
		Secure:      "• Secure Packaging",
	},
	models.FR: {
		Title:       "🚚 Informations de Livraison:",
		OtherCities: "Autres Villes",
		Available:   "• Livraison Disponible",
		Fast:        "• Expédition Rapide et Fiable",
		Secure:      "• Emballage Sécurisé",
	},
	models.AR: {
		Title:       "🚚 معلومات التوصيل:",
		OtherCities: "باقي المدن",
		Available:   "• التوصيل متوفر",
		Fast:        "• شحن سريع وموثوق",
		Secure:      "• تغليف آمن",
	},
}

var emptyStateNarratives = map[models.Language]string{
	models.EN: `✨ Fashion Item Description Card

🔹 Product Details:
• Style: Versatile Fashion Piece
• Quality: Premium Selection
• Design: Modern & Elegant
• Versatility: Multi-Occasion Wear

🔹 Description:
This carefully curated fashion piece represents the perfect blend of style and functionality. Designed with attention to detail and crafted for the modern wardrobe, this item offers endless styling possibilities.

Whether you're dressing up for a special occasion or creating a casual everyday look, this piece adapts beautifully to your personal style. The timeless design ensures it will remain a staple in your wardrobe for years to come.

Perfect for fashion enthusiasts who appreciate quality and style. This piece embodies the essence of contemporary fashion while maintaining classic appeal.

💰 Excellent value for a quality fashion piece
📦 Ready to enhance your wardrobe
🌟 Style meets functionality

#Fashion #Style #Wardrobe #Quality #Modern`,

	models.FR: `✨ Carte de Description d'Article de Mode

🔹 Détails du produit:
• Style: Pièce de Mode Polyvalente
• Qualité: Sélection Premium
• Design: Moderne & Élégant
• Polyvalence: Tenue Multi-Occasions

🔹 Description:
Cette pièce de mode soigneusement sélectionnée représente le mélange parfait entre style et fonctionnalité. Conçue avec attention aux détails et créée pour la garde-robe moderne, cet article offre des possibilités de style infinies.

Que vous vous habilliez pour une occasion spéciale ou que vous créiez un look décontracté quotidien, cette pièce s'adapte magnifiquement à votre style personnel. Le design intemporel garantit qu'elle restera un élément de base de votre garde-robe pendant des années.

Parfait pour les passionnés de mode qui apprécient la qualité et le style. Cette pièce incarne l'essence de la mode contemporaine tout en conservant un attrait classique.

💰 Excellent rapport qualité-prix pour une pièce de mode de qualité
📦 Prêt à améliorer votre garde-robe
🌟 Le style rencontre la fonctionnalité

#Mode #Style #GardeRobe #Qualité #Moderne`,

	models.AR: `✨ بطاقة وصف قطعة أزياء

🔹 تفاصيل المنتج:
• الستايل: قطعة أزياء متعددة الاستخدامات
• الجودة: اختيار مميز
• التصميم: عصري وأنيق
• التنوع: مناسب لمختلف المناسبات

🔹 الوصف:
هذه القطعة المختارة بعناية تمثل المزيج المثالي بين الأناقة والعملية. مصممة بعناية فائقة ومصنوعة لخزانة الملابس العصرية، تقدم هذه القطعة إمكانيات لا محدودة للتنسيق.

سواء كنت تتأنق لمناسبة خاصة أو تنشئ إطلالة يومية عادية، تتكيف هذه القطعة بشكل رائع مع أسلوبك الشخصي. التصميم الخالد يضمن أنها ستبقى عنصراً أساسياً في خزانة ملابسك لسنوات قادمة.

مثالية لعشاق الموضة الذين يقدرون الجودة والأناقة. هذه القطعة تجسد جوهر الموضة المعاصرة مع الحفاظ على الجاذبية الكلاسيكية.

💰 قيمة ممتازة لقطعة أزياء عالية الجودة
📦 جاهزة لتحسين خزانة ملابسك
🌟 الأناقة تلتقي بالعملية

#أزياء #ستايل #خزانة_ملابس #جودة #عصري`,
}

// EmptyStateNarrative is the fixed marketing text shown when the form holds
// no meaningful data.
func EmptyStateNarrative(lang models.Language) string {
	return emptyStateNarratives[lang.Normalize()]
}
