package models

// AppSettings seeds default appearance for the composer and the compositor.
// The core only reads these, their lifecycle belongs to the settings screen.
type AppSettings struct {
	Theme               string          `json:"theme"`
	DefaultCurrency     string          `json:"default_currency"`
	DefaultTemplate     TemplateVariant `json:"default_template"`
	ImageQuality        ImageQuality    `json:"image_quality"`
	ExportFormat        string          `json:"export_format"`
	CardBackgroundColor string          `json:"card_background_color"`
	CardTextColor       string          `json:"card_text_color"`
	DisplayStyle        string          `json:"display_style"`
	AutoSave            bool            `json:"auto_save"`
	ShowBranding        bool            `json:"show_branding"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:               "light",
		DefaultCurrency:     DefaultCurrency,
		DefaultTemplate:     VariantProfessional,
		ImageQuality:        QualityHigh,
		ExportFormat:        "png",
		CardBackgroundColor: "#ffffff",
		CardTextColor:       "#1f2937",
		DisplayStyle:        "modern",
		AutoSave:            true,
		ShowBranding:        true,
	}
}
