package models

// FormOptions is the pick lists the item form offers per language.
type FormOptions struct {
	Types      []string `json:"types"`
	Brands     []string `json:"brands"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
	Fabrics    []string `json:"fabrics"`
	Conditions []string `json:"conditions"`
	Seasons    []string `json:"seasons"`
	Categories []string `json:"categories"`
	Currencies []string `json:"currencies"`
}

var sharedSizes = []string{
	"XS", "S", "M", "L", "XL", "XXL", "XXXL",
	"32", "34", "36", "38", "40", "42", "44", "46", "48", "50",
	"35 EU", "36 EU", "37 EU", "38 EU", "39 EU", "40 EU", "41 EU", "42 EU", "43 EU", "44 EU",
}

var sharedBrands = []string{
	"Nike", "Adidas", "Zara", "H&M", "Gucci", "Louis Vuitton", "Puma", "Lacoste",
	"Uniqlo", "Mango", "Bershka", "Stradivarius", "Dior", "Chanel", "Versace",
	"Armani", "Calvin Klein", "Tommy Hilfiger", "Ralph Lauren",
}

var sharedCurrencies = []string{"USD", "EUR", "GBP", "AED", "SAR", "EGP", "MAD", "TND"}

var formOptions = map[Language]FormOptions{
	EN: {
		Types: []string{
			"T-shirt", "Shirt", "Blouse", "Pants", "Jeans", "Dress", "Jacket", "Coat",
			"Skirt", "Suit", "Shorts", "Abaya", "Hijab", "Pajamas", "Shoes", "Bag",
			"Accessory", "Sweater", "Gloves", "Hat", "Glasses", "Socks", "Belt", "Other",
		},
		Brands: append(append([]string{}, sharedBrands...), "Other"),
		Sizes: append(append([]string{}, sharedSizes...),
			"2 Years", "4 Years", "6 Years", "8 Years", "10 Years", "12 Years"),
		Colors: []string{
			"Black", "White", "Gray", "Blue", "Navy", "Red", "Pink", "Green", "Olive",
			"Yellow", "Orange", "Beige", "Brown", "Purple", "Gold", "Silver", "Multicolor",
		},
		Fabrics: []string{
			"Cotton", "Polyester", "Wool", "Silk", "Genuine Leather", "Synthetic Leather",
			"Denim", "Linen", "Velvet", "Chiffon", "Lace", "Elastane", "Cashmere", "Other",
		},
		Conditions: []string{
			"Brand New", "New without Tags", "Excellent Used", "Good Used",
			"Used with Minor Flaws", "Vintage/For Parts",
		},
		Seasons:    []string{"Summer", "Winter", "Fall", "Spring", "All Seasons"},
		Categories: []string{"Men", "Women", "Boys", "Girls", "Unisex"},
		Currencies: sharedCurrencies,
	},
	FR: {
		Types: []string{
			"T-shirt", "Chemise", "Blouse", "Pantalon", "Jean", "Robe", "Veste", "Manteau",
			"Jupe", "Costume", "Short", "Abaya", "Hijab", "Pyjama", "Chaussures", "Sac",
			"Accessoire", "Pull", "Gants", "Chapeau", "Lunettes", "Chaussettes", "Ceinture", "Autre",
		},
		Brands: append(append([]string{}, sharedBrands...), "Autre"),
		Sizes: append(append([]string{}, sharedSizes...),
			"2 ans", "4 ans", "6 ans", "8 ans", "10 ans", "12 ans"),
		Colors: []string{
			"Noir", "Blanc", "Gris", "Bleu", "Marine", "Rouge", "Rose", "Vert", "Olive",
			"Jaune", "Orange", "Beige", "Marron", "Violet", "Or", "Argent", "Multicolore",
		},
		Fabrics: []string{
			"Coton", "Polyester", "Laine", "Soie", "Cuir véritable", "Cuir synthétique",
			"Denim", "Lin", "Velours", "Mousseline", "Dentelle", "Élasthanne", "Cachemire", "Autre",
		},
		Conditions: []string{
			"Neuf", "Neuf sans étiquette", "Excellent état", "Bon état",
			"Usagé avec défauts mineurs", "Vintage/Pour pièces",
		},
		Seasons:    []string{"Été", "Hiver", "Automne", "Printemps", "Toutes saisons"},
		Categories: []string{"Homme", "Femme", "Garçon", "Fille", "Mixte"},
		Currencies: sharedCurrencies,
	},
	AR: {
		Types: []string{
			"تيشيرت", "قميص", "بلوزة", "بنطلون", "جينز", "فستان", "جاكيت", "معطف",
			"تنورة", "بدلة", "شورت", "عباية", "حجاب", "بيجامة", "حذاء", "حقيبة",
			"إكسسوار", "سترة", "قفازات", "قبعة", "نظارات", "جوارب", "حزام", "أخرى",
		},
		Brands: []string{
			"نايك", "أديداس", "زارا", "اتش اند ام", "غوتشي", "لويس فيتون", "بوما", "لاكوست",
			"يونيكلو", "مانجو", "بيرشكا", "ستراديفاريوس", "ديور", "شانيل", "فيرساتشي",
			"أرماني", "كالفن كلاين", "تومي هيلفيغر", "رالف لورين", "أخرى",
		},
		Sizes: append(append([]string{}, sharedSizes...),
			"سنتان", "4 سنوات", "6 سنوات", "8 سنوات", "10 سنوات", "12 سنة"),
		Colors: []string{
			"أسود", "أبيض", "رمادي", "أزرق", "كحلي", "أحمر", "وردي", "أخضر", "زيتي",
			"أصفر", "برتقالي", "بيج", "بني", "بنفسجي", "ذهبي", "فضي", "متعدد الألوان",
		},
		Fabrics: []string{
			"قطن", "بوليستر", "صوف", "حرير", "جلد طبيعي", "جلد صناعي",
			"جينز", "كتان", "مخمل", "شيفون", "دانتيل", "مطاطي", "كشمير", "أخرى",
		},
		Conditions: []string{
			"جديد", "جديد بدون بطاقة", "مستخدم بحالة ممتازة", "مستخدم بحالة جيدة",
			"مستخدم مع بعض العيوب", "قديم أو للقطع",
		},
		Seasons:    []string{"صيفي", "شتوي", "خريفي", "ربيعي", "لجميع المواسم"},
		Categories: []string{"رجالي", "نسائي", "أطفال - أولاد", "أطفال - بنات", "للجميع"},
		Currencies: sharedCurrencies,
	},
}

// OptionsFor returns the pick lists for a language, falling back to the
// default language for unknown codes.
func OptionsFor(lang Language) FormOptions {
	if options, ok := formOptions[lang.Normalize()]; ok {
		return options
	}
	return formOptions[DefaultLanguage]
}
