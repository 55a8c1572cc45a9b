package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/models"
	"github.com/stretchr/testify/assert"
)

func postJSON(router http.Handler, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddLot(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/lots", mockSessionMiddleware(1, "Admin", "mock-token"), AddLot)

	// First insertion succeeds
	w := postJSON(router, "/lots", map[string]interface{}{
		"lot_number":  "L1",
		"description": "Lote de setembro",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "L1", data["lot_number"])
	assert.Equal(t, "Lote de setembro", data["description"])

	// Duplicate key is reported and nothing is overwritten
	w = postJSON(router, "/lots", map[string]interface{}{
		"lot_number":  "L1",
		"description": "descrição diferente",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "DUPLICATE", errorData["code"])

	var lots []models.Lot
	assert.NoError(t, db.Find(&lots).Error)
	assert.Len(t, lots, 1)
	assert.Equal(t, "Lote de setembro", lots[0].Description)

	// Missing key fails validation
	w = postJSON(router, "/lots", map[string]interface{}{
		"description": "sem número",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSize(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/sizes", mockSessionMiddleware(1, "Admin", "mock-token"), AddSize)

	w := postJSON(router, "/sizes", map[string]interface{}{"size_name": "M"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/sizes", map[string]interface{}{"size_name": "M"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var sizes []models.Size
	assert.NoError(t, db.Find(&sizes).Error)
	assert.Len(t, sizes, 1)
}

func TestAddModel(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/models", mockSessionMiddleware(1, "Admin", "mock-token"), AddModel)

	w := postJSON(router, "/models", map[string]interface{}{
		"model_name":  "Polo",
		"description": "Gola polo com botões",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/models", map[string]interface{}{"model_name": "Polo"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var tshirtModels []models.TShirtModel
	assert.NoError(t, db.Find(&tshirtModels).Error)
	assert.Len(t, tshirtModels, 1)
}

func TestCatalogListings(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	assert.NoError(t, db.Create(&models.Lot{LotNumber: "L1"}).Error)
	assert.NoError(t, db.Create(&models.Lot{LotNumber: "L2"}).Error)
	assert.NoError(t, db.Create(&models.Size{SizeName: "M"}).Error)
	assert.NoError(t, db.Create(&models.TShirtModel{ModelName: "Polo"}).Error)

	router := setupTestRouter()
	auth := mockSessionMiddleware(1, "Admin", "mock-token")
	router.GET("/lots", auth, GetLots)
	router.GET("/sizes", auth, GetSizes)
	router.GET("/models", auth, GetModels)

	tests := []struct {
		path          string
		expectedCount int
	}{
		{"/lots", 2},
		{"/sizes", 1},
		{"/models", 1},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Len(t, response["data"].([]interface{}), tt.expectedCount)
		})
	}
}
