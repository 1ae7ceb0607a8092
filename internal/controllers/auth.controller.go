package controllers

import (
	"log"
	"net/http"
	"strings"

	"experimenthub/internal/models"
	"experimenthub/internal/repository"
	"experimenthub/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Grade    string `json:"grade"`
	StaffID  string `json:"staff_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	userRepo repository.UserRepository
}

func NewAuthController(userRepo repository.UserRepository) *AuthController {
	return &AuthController{userRepo: userRepo}
}

// Signup godoc
// @Summary Register a student or staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 200 {object} map[string]interface{} "success flag"
// @Router /api/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Missing fields"})
		return
	}
	if req.Role == models.RoleStudent && req.Grade == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Grade required"})
		return
	}
	if req.Role == models.RoleStaff && req.StaffID == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Staff ID required"})
		return
	}

	exists, err := ac.userRepo.EmailExists(req.Email)
	if err != nil {
		log.Printf("Signup email check failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Email already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Signup hashing failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Server error"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	switch req.Role {
	case models.RoleStudent:
		user.Grade = req.Grade
	case models.RoleStaff:
		user.StaffID = req.StaffID
	}

	if err := ac.userRepo.CreateUser(user); err != nil {
		log.Printf("Signup insert failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Signup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Login godoc
// @Summary Log in and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "success flag, role, redirect and token"
// @Router /api/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Missing credentials"})
		return
	}

	user, err := ac.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Wrong password"})
		return
	}

	redirect := "student-dashboard.html"
	if user.Role == models.RoleStaff {
		redirect = "dashboard.html"
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Printf("Token generation failed for %s: %v", user.Email, err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"role":     user.Role,
		"redirect": redirect,
		"token":    token,
	})
}
