package composer

import (
	"strings"

	"shopshopapi/models"
)

// Compose renders the localized description for an item. It is a pure
// function of its three inputs: no storage, no network, same output for the
// same item every time, so it is safe to call on every form keystroke.
//
// An item with no meaningful data yields the fixed empty-state narrative for
// the language instead of a blank card.
func Compose(item models.ClothingItem, lang models.Language, variant models.TemplateVariant) string {
	lang = lang.Normalize()
	variant = variant.Normalize()

	if !item.HasAnyData() {
		return EmptyStateNarrative(lang)
	}

	render := templates[templateKey{Language: lang, Variant: variant}]
	return strings.TrimSpace(render(item))
}
