package compositor

import (
	"fmt"

	"shopshopapi/models"
)

// GradientStop is one color stop of a linear gradient, At in [0,1].
type GradientStop struct {
	Color string  `json:"color"`
	At    float64 `json:"at"`
}

// Gradient describes a procedural linear-gradient background.
type Gradient struct {
	AngleDegrees float64        `json:"angle_degrees"`
	Stops        []GradientStop `json:"stops"`
}

// BackgroundTemplate is a named backdrop for the card canvas: either a
// built-in gradient or a custom uploaded image, each with a text color the
// template recommends for readability.
type BackgroundTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameFr    string    `json:"name_fr"`
	NameAr    string    `json:"name_ar"`
	Gradient  *Gradient `json:"gradient,omitempty"`
	TextColor string    `json:"text_color"`
	IsCustom  bool      `json:"is_custom"`
	ImageData []byte    `json:"image_data,omitempty"`
}

func (t BackgroundTemplate) LocalizedName(lang models.Language) string {
	switch lang.Normalize() {
	case models.AR:
		return t.NameAr
	case models.FR:
		return t.NameFr
	default:
		return t.Name
	}
}

func gradient135(colors ...string) *Gradient {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		at := 0.0
		if len(colors) > 1 {
			at = float64(i) / float64(len(colors)-1)
		}
		stops[i] = GradientStop{Color: c, At: at}
	}
	return &Gradient{AngleDegrees: 135, Stops: stops}
}

// builtinBackgrounds is the fixed catalog, order matters: the first entry is
// the default selection and the fallback after deleting a selected custom.
var builtinBackgrounds = []BackgroundTemplate{
	{
		ID:        "classic-white",
		Name:      "Classic White",
		NameAr:    "أبيض كلاسيكي",
		NameFr:    "Blanc Classique",
		Gradient:  gradient135("#ffffff", "#f8fafc"),
		TextColor: "#1f2937",
	},
	{
		ID:        "ocean-breeze",
		Name:      "Ocean Breeze",
		NameAr:    "نسيم المحيط",
		NameFr:    "Brise Océanique",
		Gradient:  gradient135("#0ea5e9", "#0284c7", "#0369a1"),
		TextColor: "#ffffff",
	},
	{
		ID:        "sunset-glow",
		Name:      "Sunset Glow",
		NameAr:    "توهج الغروب",
		NameFr:    "Lueur du Coucher",
		Gradient:  gradient135("#f97316", "#ea580c", "#dc2626"),
		TextColor: "#ffffff",
	},
	{
		ID:        "forest-mist",
		Name:      "Forest Mist",
		NameAr:    "ضباب الغابة",
		NameFr:    "Brume Forestière",
		Gradient:  gradient135("#10b981", "#059669", "#047857"),
		TextColor: "#ffffff",
	},
	{
		ID:        "royal-purple",
		Name:      "Royal Purple",
		NameAr:    "بنفسجي ملكي",
		NameFr:    "Violet Royal",
		Gradient:  gradient135("#8b5cf6", "#7c3aed", "#6d28d9"),
		TextColor: "#ffffff",
	},
	{
		ID:        "golden-hour",
		Name:      "Golden Hour",
		NameAr:    "الساعة الذهبية",
		NameFr:    "Heure Dorée",
		Gradient:  gradient135("#fbbf24", "#f59e0b", "#d97706"),
		TextColor: "#1f2937",
	},
	{
		ID:        "midnight-sky",
		Name:      "Midnight Sky",
		NameAr:    "سماء منتصف الليل",
		NameFr:    "Ciel de Minuit",
		Gradient:  gradient135("#1e293b", "#0f172a", "#020617"),
		TextColor: "#ffffff",
	},
	{
		ID:        "rose-garden",
		Name:      "Rose Garden",
		NameAr:    "حديقة الورود",
		NameFr:    "Jardin de Roses",
		Gradient:  gradient135("#f472b6", "#ec4899", "#db2777"),
		TextColor: "#ffffff",
	},
}

// BuiltinBackgrounds returns a copy of the fixed catalog.
func BuiltinBackgrounds() []BackgroundTemplate {
	out := make([]BackgroundTemplate, len(builtinBackgrounds))
	copy(out, builtinBackgrounds)
	return out
}

func newCustomBackground(imageData []byte, idMillis int64) BackgroundTemplate {
	return BackgroundTemplate{
		ID:        fmt.Sprintf("custom-%d", idMillis),
		Name:      "Custom Background",
		NameAr:    "خلفية مخصصة",
		NameFr:    "Arrière-plan personnalisé",
		TextColor: "#1f2937",
		IsCustom:  true,
		ImageData: imageData,
	}
}
