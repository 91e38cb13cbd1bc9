package services

import (
	"testing"

	"hotel-booking-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func bedTypePtr(b models.BedType) *models.BedType { return &b }

func TestCreateRoomValidation(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewRoomService(db)

	err := service.Create(&models.Room{Name: "101", BedType: bedTypePtr("bunk")})
	assert.ErrorIs(t, err, ErrInvalidBedType)

	err = service.Create(&models.Room{Name: "101", Beds: intPtr(-1)})
	assert.ErrorIs(t, err, ErrNegativeCount)

	err = service.Create(&models.Room{Name: "101", Sleeps: intPtr(-2)})
	assert.ErrorIs(t, err, ErrNegativeCount)

	err = service.Create(&models.Room{Name: "101", Price: decimal.RequireFromString("-1.00")})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestCreateRoomAcceptsValidBedTypes(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewRoomService(db)

	for _, bt := range []models.BedType{models.BedQueen, models.BedKing, models.BedSingle} {
		mock.ExpectExec("INSERT INTO `rooms`").
			WillReturnResult(sqlmock.NewResult(0, 1))

		room := models.Room{
			Name:     "101",
			HotelUID: uuid.New(),
			BedType:  bedTypePtr(bt),
			Beds:     intPtr(1),
			Sleeps:   intPtr(2),
			Price:    decimal.RequireFromString("100.00"),
		}
		assert.NoError(t, service.Create(&room), "bed type %s", bt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoomCascadesReservations(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewRoomService(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `reservations`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM room_images").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `rooms`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Delete(uuid.New())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoomRejectsInvalidBedType(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewRoomService(db)

	err := service.Update(uuid.New(), map[string]interface{}{"bed_type": "hammock"})
	assert.ErrorIs(t, err, ErrInvalidBedType)
}
