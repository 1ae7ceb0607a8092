package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"experimenthub/internal/controllers"
	"experimenthub/internal/mocks"
	"experimenthub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupExperimentController(t *testing.T) (*controllers.ExperimentController, *mocks.MockExperimentRepository) {
	repo := new(mocks.MockExperimentRepository)
	return controllers.NewExperimentController(repo, t.TempDir()), repo
}

func TestListExperiments(t *testing.T) {
	controller, repo := setupExperimentController(t)

	uploaded := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	repo.On("FindAll").Return([]models.Experiment{
		{
			ID:         1,
			Title:      "Volcano",
			Subject:    "chemistry",
			Level:      "medium",
			Class:      "7-9",
			Procedure:  `["mix","pour"]`,
			VideoLink:  "https://example.com/v",
			FileName:   "volcano.pdf",
			UploadedAt: uploaded,
		},
		{
			ID:         2,
			Title:      "Untitled defaults",
			UploadedAt: uploaded,
		},
	}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/experiments", controller.List)

	req := httptest.NewRequest("GET", "/api/experiments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 2)

	assert.Equal(t, "Volcano", out[0]["title"])
	assert.Equal(t, []interface{}{"mix", "pour"}, out[0]["detailedProc"])
	assert.Equal(t, "volcano.pdf", out[0]["file_name"])

	// Missing attributes fall back to catalog defaults.
	assert.Equal(t, "science", out[1]["subject"])
	assert.Equal(t, "easy", out[1]["level"])
	assert.Equal(t, "4-6", out[1]["class"])
	assert.Equal(t, []interface{}{}, out[1]["detailedProc"])

	repo.AssertExpectations(t)
}

func TestUploadExperiment(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		controller, repo := setupExperimentController(t)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/api/upload", controller.Upload)

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		assert.NoError(t, form.WriteField("description", "no title here"))
		assert.NoError(t, form.Close())

		req := httptest.NewRequest("POST", "/api/upload", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
		assert.Equal(t, "Title is required", response["error"])

		repo.AssertExpectations(t)
	})

	t.Run("metadata only upload", func(t *testing.T) {
		controller, repo := setupExperimentController(t)
		repo.On("Create", mock.MatchedBy(func(e *models.Experiment) bool {
			return e.Title == "Volcano" && e.Procedure == `["mix","pour"]` && e.FilePath == ""
		})).Return(nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/api/upload", controller.Upload)

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		assert.NoError(t, form.WriteField("title", "Volcano"))
		assert.NoError(t, form.WriteField("procedure", `["mix","pour"]`))
		assert.NoError(t, form.Close())

		req := httptest.NewRequest("POST", "/api/upload", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])

		repo.AssertExpectations(t)
	})
}

func TestDeleteExperiment(t *testing.T) {
	controller, repo := setupExperimentController(t)
	repo.On("FindByID", uint(4)).Return(&models.Experiment{ID: 4, Title: "Volcano"}, nil)
	repo.On("Delete", uint(4)).Return(nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/api/experiments/:id", controller.Delete)

	req := httptest.NewRequest("DELETE", "/api/experiments/4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Experiment and associated file deleted", response["message"])

	repo.AssertExpectations(t)
}
