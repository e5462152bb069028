package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopshopapi/composer"
	"shopshopapi/dbhelper"
	"shopshopapi/models"
	"shopshopapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDescriptionOk(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	item := models.NewClothingItem()
	item.Type = "Jacket"
	item.Brand = "Nike"
	item.Color = "Black"
	item.Price = "40"
	reqBody := GenerateDescriptionIn{Item: item, Language: "en", Variant: "professional"}

	req := test.NewJSONRequest("POST", "/descriptions/generate", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response GeneratedDescriptionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Contains(t, response.Description, "Nike Jacket - Black")
	assert.Contains(t, response.Description, "Price: 40 $")
	assert.Equal(t, "en", response.Language)
	assert.Equal(t, "professional", response.Variant)
}

func TestGenerateDescriptionEmptyItem(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	reqBody := GenerateDescriptionIn{Item: models.NewClothingItem(), Language: "fr"}

	req := test.NewJSONRequest("POST", "/descriptions/generate", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response GeneratedDescriptionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, composer.EmptyStateNarrative(models.FR), response.Description)
}

func TestGenerateDescriptionInvalidVariant(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	reqBody := GenerateDescriptionIn{Item: models.NewClothingItem(), Variant: "fancy"}

	req := test.NewJSONRequest("POST", "/descriptions/generate", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveAndListDescriptions(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	item := models.NewClothingItem()
	item.Type = "Shirt"
	item.Color = "Blue"

	first := SaveDescriptionIn{Item: item, Language: "en", Description: "First description"}
	req := test.NewJSONRequest("POST", "/descriptions/save", first)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	second := SaveDescriptionIn{Item: item, Language: "ar", Description: "Second description"}
	req = test.NewJSONRequest("POST", "/descriptions/save", second)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = test.NewJSONRequest("GET", "/descriptions/list", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []SavedDescriptionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &listed)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// newest first
	assert.Equal(t, "Second description", listed[0].Description)
	assert.Equal(t, "ar", listed[0].Language)
	assert.Equal(t, "First description", listed[1].Description)
	assert.Equal(t, "Blue", listed[1].Item.Color)
}

func TestSaveDescriptionMissingText(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	reqBody := SaveDescriptionIn{Item: models.NewClothingItem(), Language: "en"}
	req := test.NewJSONRequest("POST", "/descriptions/save", reqBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveDescriptionEvictsOldest(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	var oldest *models.GeneratedDescription
	for i := 0; i < models.MaxSavedDescriptions; i++ {
		record := test.FakeDescription(db, fmt.Sprintf("Seeded %d", i), models.EN, i-models.MaxSavedDescriptions)
		if oldest == nil {
			oldest = record
		}
	}

	reqBody := SaveDescriptionIn{Item: models.NewClothingItem(), Language: "en", Description: "The newest one"}
	req := test.NewJSONRequest("POST", "/descriptions/save", reqBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	db.Model(&models.GeneratedDescription{}).Where("namespace = ?", models.DescriptionNamespace).Count(&count)
	assert.Equal(t, int64(models.MaxSavedDescriptions), count)

	var gone int64
	db.Model(&models.GeneratedDescription{}).Where("record_id = ?", oldest.RecordID).Count(&gone)
	assert.Equal(t, int64(0), gone)
}

func TestUpdateDescriptionReplacesTextOnly(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	record := test.FakeDescription(db, "Original text", models.FR, 0)

	reqBody := UpdateDescriptionIn{Description: "Edited text"}
	req := test.NewJSONRequest("PUT", fmt.Sprintf("/descriptions/%s", record.RecordID), reqBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response SavedDescriptionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Edited text", response.Description)
	assert.Equal(t, "fr", response.Language)
	assert.Equal(t, "Shirt", response.Item.Type)
}

func TestUpdateDescriptionNotFound(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	reqBody := UpdateDescriptionIn{Description: "Edited text"}
	req := test.NewJSONRequest("PUT", "/descriptions/12345", reqBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDescription(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	record := test.FakeDescription(db, "To delete", models.EN, 0)

	req := test.NewJSONRequest("DELETE", fmt.Sprintf("/descriptions/%s", record.RecordID), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = test.NewJSONRequest("DELETE", fmt.Sprintf("/descriptions/%s", record.RecordID), nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearDescriptions(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, nil, test.URLCacheMock{})

	test.FakeDescription(db, "One", models.EN, 0)
	test.FakeDescription(db, "Two", models.EN, 1)

	req := test.NewJSONRequest("DELETE", "/descriptions/clear", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	db.Model(&models.GeneratedDescription{}).Where("namespace = ?", models.DescriptionNamespace).Count(&count)
	assert.Equal(t, int64(0), count)
}
