package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"experimenthub/internal/models"
	"experimenthub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExperimentController struct {
	repo       repository.ExperimentRepository
	uploadsDir string
}

func NewExperimentController(repo repository.ExperimentRepository, uploadsDir string) *ExperimentController {
	return &ExperimentController{
		repo:       repo,
		uploadsDir: uploadsDir,
	}
}

// Upload godoc
// @Summary Upload an experiment with an optional file attachment
// @Tags experiments
// @Accept mpfd
// @Produce json
// @Success 200 {object} map[string]interface{} "success flag"
// @Router /api/upload [post]
func (ec *ExperimentController) Upload(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Title is required"})
		return
	}

	// Procedure arrives either as a JSON array or as a single step.
	procedure := c.PostForm("procedure")
	var steps []string
	if procedure != "" {
		if err := json.Unmarshal([]byte(procedure), &steps); err != nil {
			steps = []string{procedure}
		}
	}
	if steps == nil {
		steps = []string{}
	}
	procedureJSON, _ := json.Marshal(steps)

	experiment := &models.Experiment{
		Title:       title,
		Description: strings.TrimSpace(c.PostForm("description")),
		Subject:     c.PostForm("subject"),
		Level:       c.PostForm("level"),
		Class:       c.PostForm("class"),
		Procedure:   string(procedureJSON),
		VideoLink:   strings.TrimSpace(c.PostForm("videoLink")),
	}

	if userID, ok := c.Get("user_id"); ok {
		if id, ok := userID.(uint); ok {
			experiment.UserID = id
		}
	}

	if file, err := c.FormFile("file"); err == nil {
		storedName := uuid.NewString() + filepath.Ext(file.Filename)
		storedPath := filepath.Join(ec.uploadsDir, storedName)
		if err := c.SaveUploadedFile(file, storedPath); err != nil {
			log.Printf("Experiment file save failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "Upload failed"})
			return
		}
		experiment.FilePath = storedPath
		experiment.FileName = file.Filename
	}

	if err := ec.repo.Create(experiment); err != nil {
		log.Printf("Experiment insert failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List godoc
// @Summary List all experiments, newest first
// @Tags experiments
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/experiments [get]
func (ec *ExperimentController) List(c *gin.Context) {
	experiments, err := ec.repo.FindAll()
	if err != nil {
		log.Printf("Experiment fetch failed: %v", err)
		c.JSON(http.StatusOK, []gin.H{})
		return
	}

	out := make([]gin.H, 0, len(experiments))
	for _, e := range experiments {
		var steps []string
		if e.Procedure != "" {
			if err := json.Unmarshal([]byte(e.Procedure), &steps); err != nil {
				steps = []string{}
			}
		}
		if steps == nil {
			steps = []string{}
		}

		subject := e.Subject
		if subject == "" {
			subject = "science"
		}
		level := e.Level
		if level == "" {
			level = "easy"
		}
		class := e.Class
		if class == "" {
			class = "4-6"
		}

		out = append(out, gin.H{
			"id":           e.ID,
			"title":        e.Title,
			"description":  e.Description,
			"subject":      subject,
			"level":        level,
			"class":        class,
			"detailedProc": steps,
			"videoLink":    e.VideoLink,
			"video_link":   e.VideoLink,
			"file_name":    e.FileName,
			"uploaded_at":  e.UploadedAt,
			"uploadDate":   e.UploadedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

// Delete godoc
// @Summary Delete an experiment and its stored file
// @Tags experiments
// @Produce json
// @Param id path int true "Experiment ID"
// @Success 200 {object} map[string]interface{} "success flag and message"
// @Router /api/experiments/{id} [delete]
func (ec *ExperimentController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid experiment ID"})
		return
	}

	experiment, err := ec.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Database error"})
		return
	}

	if experiment.FilePath != "" {
		if err := os.Remove(experiment.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("File deletion error: %v", err)
		}
	}

	if err := ec.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to delete record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Experiment and associated file deleted"})
}
