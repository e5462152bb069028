package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

type ImageQuality string

const (
	QualityLow    ImageQuality = "low"
	QualityMedium ImageQuality = "medium"
	QualityHigh   ImageQuality = "high"
)

// Scale maps a quality tier to its rasterization scale factor.
func (q ImageQuality) Scale() float64 {
	switch q {
	case QualityLow:
		return 1.0
	case QualityMedium:
		return 1.5
	default:
		return 2.0
	}
}

func ValidateQuality(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	matched, _ := regexp.MatchString("^low|medium|high$", value)
	return matched
}

// RenderJob tracks one snapshot request. The layout is serialized into the
// job so the worker needs no access to the in-memory compositor session.
type RenderJob struct {
	JsonModel
	SessionID          string       `json:"session_id"`
	FilenameBase       string       `json:"filename_base"`
	Quality            ImageQuality `json:"quality"`
	LayoutJSON         string       `gorm:"type:text" json:"-"`
	Status             string       `json:"status"` // pending, completed, failed
	ImageKey           *string      `json:"image_key"`
	RenderRetryTimes   int          `json:"render_retry_times"`
	RenderErrorMessage *string      `json:"render_error_message"`
}
