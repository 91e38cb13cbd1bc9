package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrStartDateRequired = errors.New("start date is required")
	ErrEndDateRequired   = errors.New("end date is required")
	ErrInvalidDateRange  = errors.New("end date must fall after start date")
)

// ReservationService owns the reservation lifecycle: range validation,
// duration/cost derivation on every persist, and number assignment at
// creation.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DeriveStay validates the date range and returns the stay length in whole
// days plus its cost at the given nightly price. Cost is exact decimal
// arithmetic rounded to two places, matching the price column precision.
func DeriveStay(start time.Time, end *time.Time, price decimal.Decimal) (int, decimal.Decimal, error) {
	if start.IsZero() {
		return 0, decimal.Zero, ErrStartDateRequired
	}
	if end == nil {
		return 0, decimal.Zero, ErrEndDateRequired
	}

	s := dateOnly(start)
	e := dateOnly(*end)
	if !e.After(s) {
		return 0, decimal.Zero, ErrInvalidDateRange
	}

	days := int(e.Sub(s) / (24 * time.Hour))
	cost := price.Mul(decimal.NewFromInt(int64(days))).Round(2)
	return days, cost, nil
}

// FormatNumber renders the insert-assigned sequence value as the zero-padded
// display number, e.g. 42 -> "000042".
func FormatNumber(id uint) string {
	return fmt.Sprintf("%06d", id)
}

// Create validates and derives the reservation fields, then inserts the row
// and assigns its number in a single transaction. Either the reservation
// commits fully numbered or nothing is written.
func (s *ReservationService) Create(res *models.Reservation) error {
	var room models.Room
	if err := s.DB.First(&room, "uid = ?", res.RoomUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("room %s: %w", res.RoomUID, err)
		}
		return fmt.Errorf("failed to load room: %w", err)
	}

	duration, cost, err := DeriveStay(res.StartDate, res.EndDate, room.Price)
	if err != nil {
		return err
	}
	res.Duration = duration
	res.Cost = cost
	res.Number = ""

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Number", "Room", "Author").Create(res).Error; err != nil {
			return err
		}
		res.Number = FormatNumber(res.ID)
		return tx.Model(&models.Reservation{}).
			Where("id = ?", res.ID).
			Update("number", res.Number).Error
	})
}

// Update recomputes duration and cost from the submitted dates. The number
// column is never part of the update, so an assigned number can't change.
func (s *ReservationService) Update(res *models.Reservation) error {
	var existing models.Reservation
	if err := s.DB.First(&existing, res.ID).Error; err != nil {
		return err
	}

	roomUID := res.RoomUID
	if roomUID == uuid.Nil {
		roomUID = existing.RoomUID
	}
	var room models.Room
	if err := s.DB.First(&room, "uid = ?", roomUID).Error; err != nil {
		return fmt.Errorf("failed to load room: %w", err)
	}

	duration, cost, err := DeriveStay(res.StartDate, res.EndDate, room.Price)
	if err != nil {
		return err
	}
	res.Duration = duration
	res.Cost = cost
	res.RoomUID = roomUID
	res.Number = existing.Number

	return s.DB.Model(&models.Reservation{}).
		Where("id = ?", res.ID).
		Updates(map[string]interface{}{
			"room_uid":   roomUID,
			"start_date": res.StartDate,
			"end_date":   res.EndDate,
			"duration":   duration,
			"cost":       cost,
		}).Error
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var res models.Reservation
	err := s.DB.Preload("Room").First(&res, id).Error
	return res, err
}

func (s *ReservationService) ListByRoom(roomUID uuid.UUID) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Where("room_uid = ?", roomUID).Order("id").Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) ListByAuthor(authorID uuid.UUID) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Room").Where("author_id = ?", authorID).Order("id").Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
