package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

func (rc *RoomController) ListRooms(c *gin.Context) {
	hotelUID, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	rooms, err := rc.Service.ListByHotel(hotelUID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room uid")
		return
	}

	room, err := rc.Service.GetByUID(uid)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %s not found", uid))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	hotelUID, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room name is required")
		return
	}

	room.HotelUID = hotelUID
	if userID, ok := middleware.CurrentUserID(c); ok {
		room.AuthorID = &userID
	}

	if err := rc.Service.Create(&room); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBedType),
			errors.Is(err, services.ErrNegativeCount),
			errors.Is(err, services.ErrNegativePrice):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case isDuplicate(err):
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Room '%s' already exists", room.Name))
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room uid")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	delete(updateData, "uid")
	delete(updateData, "hotel_uid")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")

	if err := rc.Service.Update(uid, updateData); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBedType):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case isNotFound(err):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %s not found", uid))
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room updated successfully"})
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room uid")
		return
	}

	if err := rc.Service.Delete(uid); err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %s not found", uid))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

type roomImagePayload struct {
	ImageUID string `json:"image_uid" binding:"required"`
}

func (rc *RoomController) AttachImage(c *gin.Context) {
	rc.changeImage(c, rc.Service.AttachImage)
}

func (rc *RoomController) DetachImage(c *gin.Context) {
	rc.changeImage(c, rc.Service.DetachImage)
}

func (rc *RoomController) changeImage(c *gin.Context, op func(roomUID, imageUID uuid.UUID) error) {
	roomUID, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room uid")
		return
	}

	var payload roomImagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	imageUID, err := uuid.Parse(payload.ImageUID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image uid")
		return
	}

	if err := op(roomUID, imageUID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room images")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room images updated"})
}
