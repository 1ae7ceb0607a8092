package services

import (
	"errors"
	"log"
	"strings"

	"experimenthub/internal/repository"
	"experimenthub/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mailer delivers a reset code to the user out of band.
type Mailer interface {
	SendOTP(recipient, code string) error
}

// SMTPMailer sends reset codes over SMTP using the configured account.
type SMTPMailer struct {
	config utils.MailConfig
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{config: utils.LoadMailConfig()}
}

func (m *SMTPMailer) SendOTP(recipient, code string) error {
	return utils.SendEmail(m.config, recipient, "Password Reset OTP - ExperimentHub", utils.OTPEmailBody(code))
}

// ResetWorkflow orchestrates the password recovery sequence:
// RequestReset issues a code, VerifyOTP optionally pre-checks it, and
// CompleteReset re-checks it and replaces the credential.
type ResetWorkflow struct {
	userRepo repository.UserRepository
	otpRepo  repository.ResetOTPRepository
	mailer   Mailer
}

func NewResetWorkflow(userRepo repository.UserRepository, otpRepo repository.ResetOTPRepository, mailer Mailer) *ResetWorkflow {
	return &ResetWorkflow{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailer:   mailer,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RequestReset issues a fresh code for the account and emails it. The
// returned flag reports whether the email actually went out: a dispatch
// failure is logged and downgrades the response message, but the code has
// been issued and must not be rolled back.
func (w *ResetWorkflow) RequestReset(email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, &ValidationError{Message: "Email is required"}
	}

	if _, err := w.userRepo.GetUserByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrAccountNotFound
		}
		log.Printf("Account lookup failed for %s: %v", email, err)
		return false, ErrPersistence
	}

	code, err := w.otpRepo.IssueCode(email)
	if err != nil {
		log.Printf("OTP issue failed for %s: %v", email, err)
		return false, ErrOTPIssue
	}

	// Operator fallback when mail is down.
	log.Printf("Reset OTP for %s: %s (expires in 10 min)", email, code)

	if err := w.mailer.SendOTP(email, code); err != nil {
		log.Printf("Failed to send reset OTP to %s: %v", email, err)
		return false, nil
	}
	return true, nil
}

// VerifyOTP checks a code without consuming it, so the client can confirm
// the code before submitting a new password. Skipping it is fine;
// CompleteReset re-checks regardless.
func (w *ResetWorkflow) VerifyOTP(email, code string) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return &ValidationError{Message: "Email and OTP required"}
	}

	ok, err := w.otpRepo.VerifyCode(email, code)
	if err != nil {
		log.Printf("OTP lookup failed for %s: %v", email, err)
		return ErrPersistence
	}
	if !ok {
		return ErrInvalidOrExpired
	}
	return nil
}

// CompleteReset re-verifies the code, stores the new bcrypt credential and
// consumes all outstanding codes for the email.
func (w *ResetWorkflow) CompleteReset(email, code, newPassword string) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" || newPassword == "" {
		return &ValidationError{Message: "Email, OTP and new password required"}
	}

	ok, err := w.otpRepo.VerifyCode(email, code)
	if err != nil {
		log.Printf("OTP lookup failed for %s: %v", email, err)
		return ErrPersistence
	}
	if !ok {
		return ErrInvalidOrExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Password hashing failed for %s: %v", email, err)
		return ErrPersistence
	}

	if err := w.userRepo.UpdatePassword(email, string(hashed)); err != nil {
		log.Printf("Credential update failed for %s: %v", email, err)
		return ErrCredentialUpdate
	}

	// The credential change already succeeded; a failed invalidation must
	// not turn the reset into an error.
	if err := w.otpRepo.DeleteByEmail(email); err != nil {
		log.Printf("Failed to invalidate OTP for %s after reset: %v", email, err)
	}
	return nil
}
