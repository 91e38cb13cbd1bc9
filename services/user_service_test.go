package services

import (
	"testing"

	"hotel-booking-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequiresUsernameAndEmail(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewUserService(db)

	err := service.Create(&models.User{Email: "a@b.c"}, "secret123")
	assert.ErrorIs(t, err, ErrUsernameRequired)

	err = service.Create(&models.User{Username: "alice"}, "secret123")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestCreateUserPersistsProfileInSameTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewUserService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `profiles`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := models.User{Username: "alice", Email: "alice@example.com"}
	err := service.Create(&user, "secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "secret123", user.Password) // stored hashed
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deleting a user nullifies hotel owners and image/room authors but removes
// authored reservations, the profile and the user itself.
func TestDeleteUserAppliesReferentialPolicy(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewUserService(db)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `hotels` SET").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE `hotel_images` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `rooms` SET").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `reservations`").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM `profiles`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Delete(userID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserMissingRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewUserService(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `hotels` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE `hotel_images` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE `rooms` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `reservations`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `profiles`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := service.Delete(uuid.New())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
