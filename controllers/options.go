package controllers

import (
	"net/http"

	"shopshopapi/models"
	"shopshopapi/services"

	"github.com/labstack/echo/v4"
)

type OptionsController struct {
}

func (controller *OptionsController) OptionsRoutes(g *echo.Group) {
	g.GET("/options/:language", controller.GetFormOptions)
	g.GET("/settings", controller.GetSettings)
	g.GET("/languages", controller.GetLanguages)
}

type LanguageResponse struct {
	Code  string `json:"code"`
	Emoji string `json:"emoji"`
}

// GetFormOptions returns the localized pick lists for the item form. An
// unknown language falls back to English.
func (controller *OptionsController) GetFormOptions(c echo.Context) error {
	lang := models.Language(c.Param("language")).Normalize()
	return c.JSON(http.StatusOK, models.OptionsFor(lang))
}

func (controller *OptionsController) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, services.LoadSettings())
}

func (controller *OptionsController) GetLanguages(c echo.Context) error {
	response := make([]LanguageResponse, 0, len(models.SupportedLanguages))
	for _, lang := range models.SupportedLanguages {
		response = append(response, LanguageResponse{Code: string(lang), Emoji: lang.Emoji()})
	}
	return c.JSON(http.StatusOK, response)
}
