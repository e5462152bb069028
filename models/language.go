package models

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator"
)

type Language string

const (
	EN Language = "en"
	FR Language = "fr"
	AR Language = "ar"
)

// DefaultLanguage is what unknown or missing language codes fall back to.
const DefaultLanguage = EN

var SupportedLanguages = []Language{EN, FR, AR}

func (l *Language) Scan(value interface{}) error {
	*l = Language(value.(string))
	return nil
}

func (l Language) Value() (string, error) {
	return string(l), nil
}

func (l Language) Emoji() string {
	msg := "?"
	value := strings.ToLower(string(l))
	switch value {
	case "en":
		msg = "🇺🇸"
	case "fr":
		msg = "🇫🇷"
	case "ar":
		msg = "🇸🇦"
	}

	return msg
}

// Normalize maps unknown codes to the default language, it never errors.
func (l Language) Normalize() Language {
	switch l {
	case EN, FR, AR:
		return l
	default:
		return DefaultLanguage
	}
}

func ValidateLanguage(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	matched, _ := regexp.MatchString("^en|fr|ar$", value)
	return matched
}

func ValidateLanguageRaw(value string) bool {

	matched, _ := regexp.MatchString("^en|fr|ar$", value)
	return matched
}

type TemplateVariant string

const (
	VariantBasic        TemplateVariant = "basic"
	VariantProfessional TemplateVariant = "professional"
)

// Normalize defaults anything that is not "basic" to "professional".
func (v TemplateVariant) Normalize() TemplateVariant {
	if v == VariantBasic {
		return v
	}
	return VariantProfessional
}

func ValidateVariant(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	matched, _ := regexp.MatchString("^basic|professional$", value)
	return matched
}
