package composer

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AED": "د.إ",
	"SAR": "ر.س",
	"EGP": "ج.م",
	"MAD": "د.م",
	"TND": "د.ت",
}

// SymbolFor resolves a currency code to its display symbol. Unknown codes are
// shown as-is, never an error.
func SymbolFor(currencyCode string) string {
	if symbol, ok := currencySymbols[currencyCode]; ok {
		return symbol
	}
	return currencyCode
}
