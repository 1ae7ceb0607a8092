package controllers

import (
	"errors"
	"net/http"

	"experimenthub/internal/services"

	"github.com/gin-gonic/gin"
)

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// PasswordResetController exposes the reset workflow over the original
// frontend contract: every response is HTTP 200 with a success flag.
type PasswordResetController struct {
	workflow *services.ResetWorkflow
}

func NewPasswordResetController(workflow *services.ResetWorkflow) *PasswordResetController {
	return &PasswordResetController{workflow: workflow}
}

func failureMessage(err error) string {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, services.ErrAccountNotFound):
		return "No account found with this email"
	case errors.Is(err, services.ErrInvalidOrExpired):
		return "Invalid or expired OTP"
	case errors.Is(err, services.ErrOTPIssue):
		return "Failed to generate OTP"
	case errors.Is(err, services.ErrCredentialUpdate):
		return "Failed to update password"
	default:
		return "Server error"
	}
}

// ForgotPassword godoc
// @Summary Request a password reset OTP
// @Description Issues a 6-digit reset code for the account and emails it
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{} "success flag and message"
// @Router /api/forgot-password [post]
func (pc *PasswordResetController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	mailSent, err := pc.workflow.RequestReset(req.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": failureMessage(err)})
		return
	}

	message := "OTP sent to your email"
	if !mailSent {
		message = "OTP generated. Check server console..."
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// VerifyOTP godoc
// @Summary Verify a password reset OTP
// @Description Checks the code without consuming it
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Email and OTP"
// @Success 200 {object} map[string]interface{} "success flag and message"
// @Router /api/verify-otp [post]
func (pc *PasswordResetController) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	if err := pc.workflow.VerifyOTP(req.Email, req.OTP); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": failureMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified"})
}

// ResetPassword godoc
// @Summary Complete a password reset
// @Description Re-verifies the OTP, replaces the credential and consumes the code
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email, OTP and new password"
// @Success 200 {object} map[string]interface{} "success flag and message"
// @Router /api/reset-password [post]
func (pc *PasswordResetController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	if err := pc.workflow.CompleteReset(req.Email, req.OTP, req.NewPassword); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": failureMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful"})
}
