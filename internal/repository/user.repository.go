package repository

import (
	"experimenthub/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the account store. Email lookups are exact; callers are
// expected to normalize emails to lowercase before calling.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	EmailExists(email string) (bool, error)
	UpdatePassword(email, hashedPassword string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (ur *userRepository) CreateUser(user *models.User) error {
	return ur.db.Create(user).Error
}

func (ur *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := ur.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := ur.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (ur *userRepository) UpdatePassword(email, hashedPassword string) error {
	return ur.db.Model(&models.User{}).Where("email = ?", email).
		Update("password", hashedPassword).Error
}
