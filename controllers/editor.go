package controllers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"

	"shopshopapi/compositor"
	"shopshopapi/models"
	"shopshopapi/services"
	"shopshopapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type OpenEditorIn struct {
	Description string `json:"description"`
	Language    string `json:"language" validate:"omitempty,language"`
}

type ResetEditorIn struct {
	Description string `json:"description"`
}

type SelectBackgroundIn struct {
	BackgroundID string `json:"background_id" validate:"required"`
}

type UploadBackgroundIn struct {
	// base64 of the raw image bytes, the format is sniffed server side
	ImageData string `json:"image_data" validate:"required"`
}

type PointerEventIn struct {
	ElementID     string  `json:"element_id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	CanvasWidth   float64 `json:"canvas_width"`
	CanvasHeight  float64 `json:"canvas_height"`
	ElementWidth  float64 `json:"element_width"`
	ElementHeight float64 `json:"element_height"`
}

type ExportSnapshotIn struct {
	Quality      string `json:"quality" validate:"omitempty,quality"`
	FilenameBase string `json:"filename_base" validate:"omitempty,max=100"`
}

type BackgroundResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TextColor string `json:"text_color"`
	IsCustom  bool   `json:"is_custom"`
	Selected  bool   `json:"selected"`
}

type EditorStateResponse struct {
	SessionID         string                        `json:"session_id"`
	Language          string                        `json:"language"`
	Elements          []compositor.TextElement      `json:"elements"`
	SelectedElementID string                        `json:"selected_element_id"`
	Background        compositor.BackgroundTemplate `json:"background"`
	Dragging          bool                          `json:"dragging"`
}

type ExportCreatedResponse struct {
	RenderID uint   `json:"render_id"`
	Status   string `json:"status"`
}

type ExportStatusResponse struct {
	RenderID     uint    `json:"render_id"`
	Status       string  `json:"status"`
	ImageURL     *string `json:"image_url,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

type EditorController struct {
	Sessions   *compositor.SessionManager
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
}

func (controller *EditorController) EditorRoutes(g *echo.Group) {
	g.POST("/open", controller.OpenSession)
	g.POST("/:sessionId/reset", controller.ResetSession)
	g.DELETE("/:sessionId", controller.CloseSession)
	g.GET("/:sessionId/state", controller.GetState)
	g.GET("/:sessionId/backgrounds", controller.ListBackgrounds)
	g.POST("/:sessionId/backgrounds/select", controller.SelectBackground)
	g.POST("/:sessionId/backgrounds/upload", controller.UploadBackground)
	g.DELETE("/:sessionId/backgrounds/:backgroundId", controller.DeleteBackground)
	g.POST("/:sessionId/elements", controller.AddElement)
	g.PUT("/:sessionId/elements/:elementId", controller.UpdateElement)
	g.DELETE("/:sessionId/elements/:elementId", controller.RemoveElement)
	g.POST("/:sessionId/elements/:elementId/select", controller.SelectElement)
	g.POST("/:sessionId/pointer/down", controller.PointerDown)
	g.POST("/:sessionId/pointer/move", controller.PointerMove)
	g.POST("/:sessionId/pointer/up", controller.PointerUp)
	g.POST("/:sessionId/pointer/leave", controller.PointerLeave)
	g.GET("/:sessionId/layout", controller.GetLayout)
	g.POST("/:sessionId/export", controller.ExportSnapshot)
	g.GET("/exports/:renderId", controller.ExportStatus)
}

func (controller *EditorController) session(c echo.Context) (*compositor.Session, error) {
	session, ok := controller.Sessions.Get(c.Param("sessionId"))
	if !ok {
		return nil, c.JSON(http.StatusNotFound, map[string]string{"error": "Editor session not found"})
	}
	return session, nil
}

func (controller *EditorController) state(c echo.Context, session *compositor.Session) error {
	return c.JSON(http.StatusOK, EditorStateResponse{
		SessionID:         session.ID,
		Language:          string(session.Language),
		Elements:          session.Elements(),
		SelectedElementID: session.SelectedElementID(),
		Background:        session.SelectedBackground(),
		Dragging:          session.Dragging(),
	})
}

// OpenSession starts a fresh editor seeded with the given description. Any
// previously open session is discarded, the editor is single card at a time.
func (controller *EditorController) OpenSession(c echo.Context) error {
	var req OpenEditorIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	session := controller.Sessions.Open(req.Description, models.Language(req.Language).Normalize())
	return controller.state(c, session)
}

func (controller *EditorController) ResetSession(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	var req ResetEditorIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	session.Reset(req.Description)
	return controller.state(c, session)
}

func (controller *EditorController) CloseSession(c echo.Context) error {
	controller.Sessions.Close(c.Param("sessionId"))
	return c.JSON(http.StatusOK, map[string]string{"message": "Closed"})
}

func (controller *EditorController) GetState(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	return controller.state(c, session)
}

func (controller *EditorController) ListBackgrounds(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	selected := session.SelectedBackground()
	backgrounds := session.Backgrounds()
	response := make([]BackgroundResponse, 0, len(backgrounds))
	for _, background := range backgrounds {
		response = append(response, BackgroundResponse{
			ID:        background.ID,
			Name:      background.LocalizedName(session.Language),
			TextColor: background.TextColor,
			IsCustom:  background.IsCustom,
			Selected:  background.ID == selected.ID,
		})
	}
	return c.JSON(http.StatusOK, response)
}

func (controller *EditorController) SelectBackground(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	var req SelectBackgroundIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := session.SelectBackground(req.BackgroundID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Background not found"})
	}
	return controller.state(c, session)
}

func (controller *EditorController) UploadBackground(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	var req UploadBackgroundIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	imageData, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Image data is not valid base64"})
	}
	if _, err := session.UploadBackground(imageData); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Uploaded file is not an image"})
	}
	return controller.state(c, session)
}

func (controller *EditorController) DeleteBackground(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	session.DeleteBackground(c.Param("backgroundId"))
	return controller.state(c, session)
}

func (controller *EditorController) AddElement(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	session.AddElement()
	return controller.state(c, session)
}

func (controller *EditorController) UpdateElement(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	var patch compositor.TextElementPatch
	if err := c.Bind(&patch); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if !session.UpdateElement(c.Param("elementId"), patch) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Element not found"})
	}
	return controller.state(c, session)
}

func (controller *EditorController) RemoveElement(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	session.RemoveElement(c.Param("elementId"))
	return controller.state(c, session)
}

func (controller *EditorController) SelectElement(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	if !session.SelectElement(c.Param("elementId")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Element not found"})
	}
	return controller.state(c, session)
}

func pointerEvent(req PointerEventIn) compositor.PointerEvent {
	return compositor.PointerEvent{
		X:             req.X,
		Y:             req.Y,
		CanvasWidth:   req.CanvasWidth,
		CanvasHeight:  req.CanvasHeight,
		ElementWidth:  req.ElementWidth,
		ElementHeight: req.ElementHeight,
	}
}

func (controller *EditorController) PointerDown(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	var req PointerEventIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	session.PointerDown(req.ElementID, pointerEvent(req))
	return controller.state(c, session)
}

func (controller *EditorController) PointerMove(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	var req PointerEventIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	session.PointerMove(pointerEvent(req))
	return controller.state(c, session)
}

func (controller *EditorController) PointerUp(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	session.PointerUp()
	return controller.state(c, session)
}

func (controller *EditorController) PointerLeave(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	session.PointerLeave()
	return controller.state(c, session)
}

func (controller *EditorController) GetLayout(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	return c.JSON(http.StatusOK, session.SnapshotLayout())
}

// ExportSnapshot freezes the current layout into a render job and hands it
// to the worker queue. The layout is serialized into the job so rendering
// keeps working even if the session closes before the worker picks it up.
func (controller *EditorController) ExportSnapshot(c echo.Context) error {
	session, err := controller.session(c)
	if session == nil {
		return err
	}
	var req ExportSnapshotIn
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
	asynqClient, ok := c.Get("__asynqclient").(tasks.TaskEnqueuer)
	if !ok || asynqClient == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Service is not available, please try again a bit later"})
	}

	layoutJSON, err := session.SnapshotLayoutJSON()
	if err != nil {
		sentry.CaptureException(fmt.Errorf("Failed to serialize layout for session %s: %v", session.ID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export image"})
	}

	quality := models.ImageQuality(req.Quality)
	if quality == "" {
		quality = models.QualityMedium
	}
	filenameBase := req.FilenameBase
	if filenameBase == "" {
		filenameBase = "clothing-card"
	}

	job := models.RenderJob{
		SessionID:    session.ID,
		FilenameBase: filenameBase,
		Quality:      quality,
		LayoutJSON:   layoutJSON,
		Status:       "pending",
	}
	if err := db.Create(&job).Error; err != nil {
		sentry.CaptureException(fmt.Errorf("Failed to create render job for session %s: %v", session.ID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export image"})
	}

	task, err := tasks.NewRenderSnapshotTask(job.ID)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("Failed to build render task for job %v: %v", job.ID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export image"})
	}
	if _, err := asynqClient.Enqueue(task); err != nil {
		sentry.CaptureException(fmt.Errorf("Failed to enqueue render task for job %v: %v", job.ID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export image"})
	}

	return c.JSON(http.StatusCreated, ExportCreatedResponse{RenderID: job.ID, Status: job.Status})
}

func (controller *EditorController) ExportStatus(c echo.Context) error {
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}
	renderID, err := strconv.ParseUint(c.Param("renderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid render id"})
	}

	var job models.RenderJob
	if res := db.First(&job, uint(renderID)); res.Error != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Render job not found"})
	}

	response := ExportStatusResponse{
		RenderID:     job.ID,
		Status:       job.Status,
		ErrorMessage: job.RenderErrorMessage,
	}
	if job.Status == "completed" && job.ImageKey != nil && controller.URLCache != nil {
		imageURL, err := controller.URLCache.GetReadURL(c.Request().Context(), *job.ImageKey)
		if err != nil {
			sentry.CaptureException(fmt.Errorf("Failed to presign read URL for job %v: %v", job.ID, err))
		} else if imageURL != "" {
			response.ImageURL = &imageURL
		}
	}
	return c.JSON(http.StatusOK, response)
}
