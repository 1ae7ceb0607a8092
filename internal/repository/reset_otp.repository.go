package repository

import (
	"log"
	"time"

	"experimenthub/internal/models"
	"experimenthub/internal/utils"

	"gorm.io/gorm"
)

// Reset codes stay valid for ten minutes after issuance.
const otpTTL = 10 * time.Minute

// ResetOTPRepository is the one-time-code store for the password reset flow.
type ResetOTPRepository interface {
	// IssueCode replaces any outstanding codes for email with a fresh
	// 6-digit code and returns it.
	IssueCode(email string) (string, error)
	// VerifyCode reports whether an unexpired code matches. It never
	// mutates state, so a client may verify more than once before the
	// final reset.
	VerifyCode(email, code string) (bool, error)
	DeleteByEmail(email string) error
}

type resetOTPRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewResetOTPRepository(db *gorm.DB) ResetOTPRepository {
	return &resetOTPRepository{
		db:  db,
		now: time.Now,
	}
}

// NewResetOTPRepositoryWithClock allows tests to pin the expiry clock.
func NewResetOTPRepositoryWithClock(db *gorm.DB, now func() time.Time) ResetOTPRepository {
	return &resetOTPRepository{
		db:  db,
		now: now,
	}
}

func (rp *resetOTPRepository) IssueCode(email string) (string, error) {
	code := utils.GenerateOTP()
	record := &models.PasswordResetOTP{
		Email:     email,
		Code:      code,
		ExpiresAt: rp.now().Add(otpTTL),
	}

	// Delete and insert in one transaction so two concurrent requests for
	// the same email cannot both leave a live code behind.
	err := rp.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("email = ?", email).
			Delete(&models.PasswordResetOTP{}).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

func (rp *resetOTPRepository) VerifyCode(email, code string) (bool, error) {
	var count int64
	err := rp.db.Model(&models.PasswordResetOTP{}).
		Where("email = ? AND code = ? AND expires_at > ?", email, code, rp.now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (rp *resetOTPRepository) DeleteByEmail(email string) error {
	result := rp.db.Unscoped().Where("email = ?", email).Delete(&models.PasswordResetOTP{})
	if result.Error != nil {
		log.Println("Error deleting reset OTP records:", result.Error)
	}
	return result.Error
}
