package compositor

import (
	"fmt"
	"time"

	"shopshopapi/models"
)

// Base canvas size in pixels. Quality tiers scale this at render time.
const (
	CanvasWidth  = 800.0
	CanvasHeight = 500.0
)

// MaxElementRenderWidth caps how wide a text element may render.
const MaxElementRenderWidth = 600.0

// TextElement is one positioned, styled text box on the canvas.
type TextElement struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FontSize   float64 `json:"font_size"`
	Color      string  `json:"color"`
	FontFamily string  `json:"font_family"`
	FontWeight string  `json:"font_weight"`
	TextAlign  string  `json:"text_align"`
	Width      float64 `json:"width"`
}

// TextElementPatch carries a partial update, nil fields are left untouched.
type TextElementPatch struct {
	Content    *string  `json:"content"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	FontSize   *float64 `json:"font_size" validate:"omitempty,min=8,max=72"`
	Color      *string  `json:"color"`
	FontFamily *string  `json:"font_family"`
	FontWeight *string  `json:"font_weight"`
	TextAlign  *string  `json:"text_align" validate:"omitempty,oneof=left center right"`
	Width      *float64 `json:"width"`
}

func newElementContent(lang models.Language) string {
	switch lang.Normalize() {
	case models.AR:
		return "نص جديد"
	case models.FR:
		return "Nouveau texte"
	default:
		return "New Text"
	}
}

// layout holds the ordered element collection and the selection pointer.
// Not safe for concurrent use on its own, the owning Session serializes
// access.
type layout struct {
	elements   []*TextElement
	selectedID string
	lastID     int64
}

func newLayout() *layout {
	return &layout{}
}

// nextElementID derives a time-based id, bumped past the previous one so two
// adds inside the same millisecond stay unique.
func (l *layout) nextElementID() string {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return fmt.Sprintf("%d", id)
}

// seed replaces the whole collection with the single default element carrying
// the composed description. All prior edits are discarded on purpose.
func (l *layout) seed(description string, textColor string) {
	el := &TextElement{
		ID:         "1",
		Content:    description,
		X:          50,
		Y:          100,
		FontSize:   16,
		Color:      textColor,
		FontFamily: "Inter",
		FontWeight: "400",
		TextAlign:  "left",
		Width:      500,
	}
	l.elements = []*TextElement{el}
	l.selectedID = el.ID
	l.lastID = 1
}

func (l *layout) add(lang models.Language, textColor string) *TextElement {
	el := &TextElement{
		ID:         l.nextElementID(),
		Content:    newElementContent(lang),
		X:          100,
		Y:          200,
		FontSize:   16,
		Color:      textColor,
		FontFamily: "Inter",
		FontWeight: "400",
		TextAlign:  "left",
		Width:      300,
	}
	l.elements = append(l.elements, el)
	l.selectedID = el.ID
	return el
}

// remove deletes an element. Removing the sole remaining element is a no-op,
// never an error: the collection must not end up empty.
func (l *layout) remove(id string) {
	if len(l.elements) <= 1 {
		return
	}
	kept := l.elements[:0]
	for _, el := range l.elements {
		if el.ID != id {
			kept = append(kept, el)
		}
	}
	if len(kept) == len(l.elements) {
		return
	}
	l.elements = kept
	if l.selectedID == id {
		l.selectedID = l.elements[0].ID
	}
}

func (l *layout) get(id string) *TextElement {
	for _, el := range l.elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}

func (l *layout) update(id string, patch TextElementPatch) bool {
	el := l.get(id)
	if el == nil {
		return false
	}
	if patch.Content != nil {
		el.Content = *patch.Content
	}
	if patch.X != nil {
		el.X = *patch.X
	}
	if patch.Y != nil {
		el.Y = *patch.Y
	}
	if patch.FontSize != nil {
		el.FontSize = *patch.FontSize
	}
	if patch.Color != nil {
		el.Color = *patch.Color
	}
	if patch.FontFamily != nil {
		el.FontFamily = *patch.FontFamily
	}
	if patch.FontWeight != nil {
		el.FontWeight = *patch.FontWeight
	}
	if patch.TextAlign != nil {
		el.TextAlign = *patch.TextAlign
	}
	if patch.Width != nil {
		el.Width = *patch.Width
	}
	return true
}

// selectElement moves the active pointer, element data is untouched.
func (l *layout) selectElement(id string) bool {
	if l.get(id) == nil {
		return false
	}
	l.selectedID = id
	return true
}

// recolorAll resets every element to the given color. Selecting a background
// template discards per-element color overrides.
func (l *layout) recolorAll(color string) {
	for _, el := range l.elements {
		el.Color = color
	}
}

func (l *layout) snapshot() []TextElement {
	out := make([]TextElement, len(l.elements))
	for i, el := range l.elements {
		out[i] = *el
	}
	return out
}
