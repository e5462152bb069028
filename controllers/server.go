package controllers

import (
	"context"
	"log"
	"net/http"

	"shopshopapi/compositor"
	"shopshopapi/models"
	"shopshopapi/services"
	"shopshopapi/tasks"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func SetupServer(
	db *gorm.DB,
	awsService services.AWSServiceProvider,
	asynqClient tasks.TaskEnqueuer,
	urlCache services.URLCacheServiceProvider,
) *echo.Echo {

	if awsService != nil {
		err := awsService.InitPresignClient(context.Background())
		if err != nil {
			log.Fatal("Failed to initialize AWS provider: S3")
		}
	}

	e := echo.New()
	v := validator.New()
	v.RegisterValidation("language", models.ValidateLanguage)
	v.RegisterValidation("variant", models.ValidateVariant)
	v.RegisterValidation("quality", models.ValidateQuality)
	e.Validator = &CustomValidator{validator: v}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__db", db)
			if asynqClient != nil {
				c.Set("__asynqclient", asynqClient)
			}
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	descriptionsController := DescriptionsController{}
	descriptionsGroup := e.Group("/descriptions")
	descriptionsController.DescriptionRoutes(descriptionsGroup)

	editorController := EditorController{
		Sessions:   compositor.NewSessionManager(),
		AWSService: awsService,
		URLCache:   urlCache,
	}
	editorGroup := e.Group("/editor")
	editorController.EditorRoutes(editorGroup)

	optionsController := OptionsController{}
	optionsController.OptionsRoutes(e.Group(""))

	return e
}
