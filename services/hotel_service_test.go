package services

import (
	"testing"

	"hotel-booking-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateHotelValidatesStars(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewHotelService(db)

	for _, stars := range []string{"0", "6", "x", "10"} {
		err := service.Create(&models.Hotel{Name: "Grand", Stars: stars})
		assert.ErrorIs(t, err, ErrInvalidStars, "stars=%s", stars)
	}
}

func TestCreateHotelDefaultsStars(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewHotelService(db)

	mock.ExpectExec("INSERT INTO `hotels`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	hotel := models.Hotel{Name: "Grand Plaza"}
	err := service.Create(&hotel)
	assert.NoError(t, err)
	assert.Equal(t, "1", hotel.Stars)
	assert.NotEqual(t, uuid.Nil, hotel.UID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHotelRejectsInvalidStars(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewHotelService(db)

	err := service.Update(uuid.New(), map[string]interface{}{"stars": "9"})
	assert.ErrorIs(t, err, ErrInvalidStars)
}

func TestMarkDeletedSetsTimestampOnce(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewHotelService(db)

	uid := uuid.New()
	mock.ExpectQuery("SELECT .* FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "name", "deleted"}).
			AddRow(uid.String(), "Grand Plaza", false))
	mock.ExpectExec("UPDATE `hotels` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	hotel, err := service.MarkDeleted(uid)
	assert.NoError(t, err)
	assert.True(t, hotel.Deleted)
	assert.NotNil(t, hotel.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDeletedIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewHotelService(db)

	uid := uuid.New()
	// Already deleted: no update statement expected.
	mock.ExpectQuery("SELECT .* FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "name", "deleted"}).
			AddRow(uid.String(), "Grand Plaza", true))

	hotel, err := service.MarkDeleted(uid)
	assert.NoError(t, err)
	assert.True(t, hotel.Deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreClearsSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewHotelService(db)

	uid := uuid.New()
	mock.ExpectQuery("SELECT .* FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "name", "deleted"}).
			AddRow(uid.String(), "Grand Plaza", true))
	mock.ExpectExec("UPDATE `hotels` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	hotel, err := service.Restore(uid)
	assert.NoError(t, err)
	assert.False(t, hotel.Deleted)
	assert.Nil(t, hotel.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Hard delete takes rooms, their reservations, image links and images down
// with the hotel in a single transaction.
func TestDeleteHotelCascades(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewHotelService(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `reservations`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM room_images").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `rooms`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `hotel_images`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `hotels`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Delete(uuid.New())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHotelsFilters(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewHotelService(db)

	mock.ExpectQuery("SELECT .* FROM `hotels` WHERE country = .* AND name LIKE .* AND deleted = .* ORDER BY name").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "name", "country"}).
			AddRow(uuid.New().String(), "Grand Plaza", "US"))

	hotels, err := service.List(HotelListOptions{Country: "US", Search: "Grand"})
	assert.NoError(t, err)
	assert.Len(t, hotels, 1)
	assert.Equal(t, "Grand Plaza", hotels[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
