package controllers

import (
	"fmt"
	"net/http"
	"time"

	"shopshopapi/composer"
	"shopshopapi/models"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Request structs for validation
type GenerateDescriptionIn struct {
	Item     models.ClothingItem `json:"item"`
	Language string              `json:"language" validate:"omitempty,language"`
	Variant  string              `json:"variant" validate:"omitempty,oneof=basic professional"`
}

type SaveDescriptionIn struct {
	Item        models.ClothingItem `json:"item"`
	Language    string              `json:"language" validate:"omitempty,language"`
	Description string              `json:"description" validate:"required"`
}

type UpdateDescriptionIn struct {
	Description string `json:"description" validate:"required"`
}

// Response structs
type GeneratedDescriptionResponse struct {
	Description string `json:"description"`
	Language    string `json:"language"`
	Variant     string `json:"variant"`
}

type SavedDescriptionResponse struct {
	RecordID    string              `json:"id"`
	Description string              `json:"description"`
	Item        models.ClothingItem `json:"item"`
	Language    string              `json:"language"`
	CreatedAt   string              `json:"created_at"`
}

type DescriptionsController struct {
}

func (controller *DescriptionsController) DescriptionRoutes(g *echo.Group) {
	g.POST("/generate", controller.GenerateDescription)
	g.POST("/save", controller.SaveDescription)
	g.GET("/list", controller.ListDescriptions)
	g.PUT("/:recordId", controller.UpdateDescription)
	g.DELETE("/clear", controller.ClearDescriptions)
	g.DELETE("/:recordId", controller.DeleteDescription)
}

// GenerateDescription composes the listing text from the item fields. The
// composition is pure, nothing is stored until the client saves explicitly.
func (controller *DescriptionsController) GenerateDescription(c echo.Context) error {
	var req GenerateDescriptionIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	lang := models.Language(req.Language).Normalize()
	variant := models.TemplateVariant(req.Variant).Normalize()
	req.Item.NormalizeMultiSelects()
	description := composer.Compose(req.Item, lang, variant)

	return c.JSON(http.StatusOK, GeneratedDescriptionResponse{
		Description: description,
		Language:    string(lang),
		Variant:     string(variant),
	})
}

func (controller *DescriptionsController) SaveDescription(c echo.Context) error {
	var req SaveDescriptionIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	lang := models.Language(req.Language).Normalize()
	record := models.GeneratedDescription{
		RecordID:    models.NewRecordID(time.Now()),
		Namespace:   models.DescriptionNamespace,
		Description: req.Description,
		Language:    lang,
	}
	if err := record.SetItem(req.Item); err != nil {
		sentry.CaptureException(fmt.Errorf("Failed to serialize item for record %s: %v", record.RecordID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save description"})
	}
	if err := db.Create(&record).Error; err != nil {
		sentry.CaptureException(fmt.Errorf("Failed to save description record %s: %v", record.RecordID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save description"})
	}

	// Keep only the newest records, drop everything past the cap.
	var ids []uint
	db.Model(&models.GeneratedDescription{}).
		Where("namespace = ?", models.DescriptionNamespace).
		Order("record_id DESC").
		Offset(models.MaxSavedDescriptions).
		Pluck("id", &ids)
	if len(ids) > 0 {
		db.Delete(&models.GeneratedDescription{}, ids)
	}

	return c.JSON(http.StatusCreated, toSavedResponse(record))
}

// ListDescriptions returns saved records newest first. A storage failure
// yields an empty list rather than an error, matching save-history being a
// convenience feature.
func (controller *DescriptionsController) ListDescriptions(c echo.Context) error {
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var records []models.GeneratedDescription
	res := db.Where("namespace = ?", models.DescriptionNamespace).
		Order("record_id DESC").
		Limit(models.MaxSavedDescriptions).
		Find(&records)
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("Failed to list saved descriptions: %v", res.Error))
		return c.JSON(http.StatusOK, []SavedDescriptionResponse{})
	}

	response := make([]SavedDescriptionResponse, 0, len(records))
	for _, record := range records {
		item, err := record.Item()
		if err != nil {
			sentry.CaptureException(fmt.Errorf("Corrupt item payload in record %s: %v", record.RecordID, err))
			continue
		}
		response = append(response, SavedDescriptionResponse{
			RecordID:    record.RecordID,
			Description: record.Description,
			Item:        item,
			Language:    string(record.Language),
			CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateDescription replaces the description text of one saved record. The
// item snapshot and language stay as they were at save time.
func (controller *DescriptionsController) UpdateDescription(c echo.Context) error {
	var req UpdateDescriptionIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var record models.GeneratedDescription
	res := db.Where("namespace = ? AND record_id = ?", models.DescriptionNamespace, c.Param("recordId")).First(&record)
	if res.Error != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Saved description not found"})
	}
	record.Description = req.Description
	if err := db.Save(&record).Error; err != nil {
		sentry.CaptureException(fmt.Errorf("Failed to update description record %s: %v", record.RecordID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update description"})
	}
	return c.JSON(http.StatusOK, toSavedResponse(record))
}

func (controller *DescriptionsController) DeleteDescription(c echo.Context) error {
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	res := db.Where("namespace = ? AND record_id = ?", models.DescriptionNamespace, c.Param("recordId")).
		Delete(&models.GeneratedDescription{})
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("Failed to delete description record %s: %v", c.Param("recordId"), res.Error))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete description"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Saved description not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}

func (controller *DescriptionsController) ClearDescriptions(c echo.Context) error {
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	res := db.Where("namespace = ?", models.DescriptionNamespace).Delete(&models.GeneratedDescription{})
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("Failed to clear saved descriptions: %v", res.Error))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to clear descriptions"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cleared"})
}

func toSavedResponse(record models.GeneratedDescription) SavedDescriptionResponse {
	item, _ := record.Item()
	return SavedDescriptionResponse{
		RecordID:    record.RecordID,
		Description: record.Description,
		Item:        item,
		Language:    string(record.Language),
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
	}
}
