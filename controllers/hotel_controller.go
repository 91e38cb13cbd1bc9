package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Service *services.HotelService
}

func NewHotelController(service *services.HotelService) *HotelController {
	return &HotelController{Service: service}
}

// ListHotels supports the admin list screen query params:
// ?country= ?city= ?state= ?q= ?order=created ?include_deleted=true
func (hc *HotelController) ListHotels(c *gin.Context) {
	opts := services.HotelListOptions{
		Country:        c.Query("country"),
		City:           c.Query("city"),
		State:          c.Query("state"),
		Search:         c.Query("q"),
		OrderByCreated: c.Query("order") == "created",
		IncludeDeleted: c.Query("include_deleted") == "true",
	}

	hotels, err := hc.Service.List(opts)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list hotels")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	hotel, err := hc.Service.GetByUID(uid)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s not found", uid))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if userID, ok := middleware.CurrentUserID(c); ok && hotel.OwnerID == nil {
		hotel.OwnerID = &userID
	}

	if err := hc.Service.Create(&hotel); err != nil {
		if errors.Is(err, services.ErrInvalidStars) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create hotel")
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Protected fields; soft delete goes through the dedicated endpoints.
	delete(updateData, "uid")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted")
	delete(updateData, "deleted_at")

	if err := hc.Service.Update(uid, updateData); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStars):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case isNotFound(err):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s not found", uid))
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Hotel updated successfully"})
}

func (hc *HotelController) SoftDeleteHotel(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	hotel, err := hc.Service.MarkDeleted(uid)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s not found", uid))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete hotel")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) RestoreHotel(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	hotel, err := hc.Service.Restore(uid)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s not found", uid))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to restore hotel")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) DeleteHotel(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	if err := hc.Service.Delete(uid); err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s not found", uid))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete hotel")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Hotel deleted successfully"})
}
