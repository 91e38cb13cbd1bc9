package services

import (
	"errors"

	"hotel-booking-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidBedType = errors.New("bed type must be queen, king or single")
	ErrNegativeCount  = errors.New("beds and sleeps must not be negative")
	ErrNegativePrice  = errors.New("price must not be negative")
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func validateRoom(room *models.Room) error {
	if room.BedType != nil && !room.BedType.Valid() {
		return ErrInvalidBedType
	}
	if room.Beds != nil && *room.Beds < 0 {
		return ErrNegativeCount
	}
	if room.Sleeps != nil && *room.Sleeps < 0 {
		return ErrNegativeCount
	}
	if room.Price.IsNegative() {
		return ErrNegativePrice
	}
	if room.Discount != nil && room.Discount.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func (s *RoomService) Create(room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	return s.DB.Omit("Hotel", "Images", "Author").Create(room).Error
}

func (s *RoomService) GetByUID(uid uuid.UUID) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Images").First(&room, "uid = ?", uid).Error
	return room, err
}

func (s *RoomService) ListByHotel(hotelUID uuid.UUID) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("Images").Where("hotel_uid = ?", hotelUID).Order("name").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Update(uid uuid.UUID, updates map[string]interface{}) error {
	if bt, ok := updates["bed_type"].(string); ok && !models.BedType(bt).Valid() {
		return ErrInvalidBedType
	}
	result := s.DB.Model(&models.Room{}).Where("uid = ?", uid).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the room, its reservations and its image links together.
func (s *RoomService) Delete(uid uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_uid = ?", uid).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM room_images WHERE room_uid = ?", uid).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Room{}, "uid = ?", uid)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *RoomService) AttachImage(roomUID, imageUID uuid.UUID) error {
	room := models.Room{UID: roomUID}
	return s.DB.Model(&room).Association("Images").Append(&models.HotelImage{UID: imageUID})
}

func (s *RoomService) DetachImage(roomUID, imageUID uuid.UUID) error {
	room := models.Room{UID: roomUID}
	return s.DB.Model(&room).Association("Images").Delete(&models.HotelImage{UID: imageUID})
}
