package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

type reservationPayload struct {
	RoomUID   string     `json:"room_uid" binding:"required"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date"`
}

func dateRangeStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, services.ErrStartDateRequired),
		errors.Is(err, services.ErrEndDateRequired),
		errors.Is(err, services.ErrInvalidDateRange):
		return http.StatusUnprocessableEntity, true
	}
	return 0, false
}

// ListReservations returns the caller's reservations, or a room's
// reservations when ?room_uid= is given.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	if raw := c.Query("room_uid"); raw != "" {
		roomUID, err := uuid.Parse(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid room uid")
			return
		}
		reservations, err := rc.Service.ListByRoom(roomUID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations")
			return
		}
		c.JSON(http.StatusOK, reservations)
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	reservations, err := rc.Service.ListByAuthor(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := rc.Service.GetByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	roomUID, err := uuid.Parse(payload.RoomUID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room uid")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	reservation := models.Reservation{
		RoomUID:   roomUID,
		AuthorID:  userID,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
	}

	if err := rc.Service.Create(&reservation); err != nil {
		if status, ok := dateRangeStatus(err); ok {
			utils.JSONError(c, status, err.Error())
			return
		}
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	middleware.ReservationsCreated.Inc()
	c.JSON(http.StatusCreated, reservation)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	roomUID, err := uuid.Parse(payload.RoomUID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room uid")
		return
	}

	reservation := models.Reservation{
		ID:        uint(id),
		RoomUID:   roomUID,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
	}

	if err := rc.Service.Update(&reservation); err != nil {
		if status, ok := dateRangeStatus(err); ok {
			utils.JSONError(c, status, err.Error())
			return
		}
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	if err := rc.Service.Delete(uint(id)); err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
