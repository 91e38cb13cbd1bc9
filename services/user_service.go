package services

import (
	"errors"
	"strings"

	"hotel-booking-backend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Create registers the user and its empty profile in one transaction. Profile
// creation is an explicit step here, not a persistence hook.
func (s *UserService) Create(user *models.User, password string) error {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	if user.Username == "" {
		return ErrUsernameRequired
	}
	if user.Email == "" {
		return ErrEmailRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
}

func (s *UserService) GetByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := s.DB.Preload("Profile").First(&user, "id = ?", id).Error
	return user, err
}

func (s *UserService) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := s.DB.Where("username = ? OR email = ?", username, username).First(&user).Error
	return user, err
}

func (s *UserService) UpdateProfile(userID uuid.UUID, updates map[string]interface{}) error {
	result := s.DB.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete applies the per-entity referential policy in one transaction:
// hotels lose their owner, images and rooms lose their author, reservations
// authored by the user are removed along with the profile and the user row.
func (s *UserService) Delete(id uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Hotel{}).Where("owner_id = ?", id).Update("owner_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.HotelImage{}).Where("author_id = ?", id).Update("author_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("author_id = ?", id).Update("author_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
