package services

import (
	"shopshopapi/models"
)

// LoadSettings applies environment overrides on top of the built-in
// defaults. Settings are read once at request time and never written back.
func LoadSettings() models.AppSettings {
	settings := models.DefaultSettings()
	settings.Theme = GetEnv("APP_THEME", settings.Theme)
	settings.DefaultCurrency = GetEnv("APP_DEFAULT_CURRENCY", settings.DefaultCurrency)
	settings.DefaultTemplate = models.TemplateVariant(GetEnv("APP_DEFAULT_TEMPLATE", string(settings.DefaultTemplate))).Normalize()
	settings.ImageQuality = models.ImageQuality(GetEnv("APP_IMAGE_QUALITY", string(settings.ImageQuality)))
	settings.ExportFormat = GetEnv("APP_EXPORT_FORMAT", settings.ExportFormat)
	settings.CardBackgroundColor = GetEnv("APP_CARD_BACKGROUND_COLOR", settings.CardBackgroundColor)
	settings.CardTextColor = GetEnv("APP_CARD_TEXT_COLOR", settings.CardTextColor)
	settings.DisplayStyle = GetEnv("APP_DISPLAY_STYLE", settings.DisplayStyle)
	return settings
}
