package services

import (
	"errors"
	"time"

	"hotel-booking-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidStars = errors.New("stars must be between 1 and 5")

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// HotelListOptions mirror the admin list screen: filter by location fields,
// search by name, order by name or creation time.
type HotelListOptions struct {
	Country        string
	City           string
	State          string
	Search         string
	OrderByCreated bool
	IncludeDeleted bool
}

func validStars(stars string) bool {
	switch stars {
	case "1", "2", "3", "4", "5":
		return true
	}
	return false
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	if hotel.Stars == "" {
		hotel.Stars = "1"
	}
	if !validStars(hotel.Stars) {
		return ErrInvalidStars
	}
	return s.DB.Omit("Owner", "Images", "Rooms").Create(hotel).Error
}

func (s *HotelService) GetByUID(uid uuid.UUID) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Preload("Images").Preload("Rooms").First(&hotel, "uid = ?", uid).Error
	return hotel, err
}

func (s *HotelService) List(opts HotelListOptions) ([]models.Hotel, error) {
	q := s.DB.Model(&models.Hotel{})
	if opts.Country != "" {
		q = q.Where("country = ?", opts.Country)
	}
	if opts.City != "" {
		q = q.Where("city = ?", opts.City)
	}
	if opts.State != "" {
		q = q.Where("state = ?", opts.State)
	}
	if opts.Search != "" {
		q = q.Where("name LIKE ?", "%"+opts.Search+"%")
	}
	if !opts.IncludeDeleted {
		q = q.Where("deleted = ?", false)
	}
	if opts.OrderByCreated {
		q = q.Order("created_at")
	} else {
		q = q.Order("name")
	}

	var hotels []models.Hotel
	err := q.Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) Update(uid uuid.UUID, updates map[string]interface{}) error {
	if stars, ok := updates["stars"].(string); ok && !validStars(stars) {
		return ErrInvalidStars
	}
	result := s.DB.Model(&models.Hotel{}).Where("uid = ?", uid).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkDeleted soft-deletes the hotel. A hotel that is already deleted keeps
// its original deletion timestamp.
func (s *HotelService) MarkDeleted(uid uuid.UUID) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "uid = ?", uid).Error; err != nil {
		return hotel, err
	}
	if hotel.Deleted {
		return hotel, nil
	}
	hotel.MarkDeleted(time.Now())
	err := s.DB.Model(&hotel).Select("deleted", "deleted_at").Updates(&hotel).Error
	return hotel, err
}

func (s *HotelService) Restore(uid uuid.UUID) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "uid = ?", uid).Error; err != nil {
		return hotel, err
	}
	if !hotel.Deleted {
		return hotel, nil
	}
	hotel.Restore()
	err := s.DB.Model(&hotel).Select("deleted", "deleted_at").Updates(map[string]interface{}{
		"deleted":    false,
		"deleted_at": nil,
	}).Error
	return hotel, err
}

// Delete removes the hotel and everything hanging off it: reservations of its
// rooms, room-image links, rooms, and images, in one transaction.
func (s *HotelService) Delete(uid uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		roomUIDs := tx.Model(&models.Room{}).Select("uid").Where("hotel_uid = ?", uid)

		if err := tx.Where("room_uid IN (?)", roomUIDs).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM room_images WHERE room_uid IN (SELECT uid FROM rooms WHERE hotel_uid = ?)", uid).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_uid = ?", uid).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_uid = ?", uid).Delete(&models.HotelImage{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Hotel{}, "uid = ?", uid)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
