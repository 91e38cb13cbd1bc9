package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

const hotelImagesDir = "images/hotels"

type ImageController struct {
	Service *services.ImageService
}

func NewImageController(service *services.ImageService) *ImageController {
	return &ImageController{Service: service}
}

func (ic *ImageController) ListImages(c *gin.Context) {
	hotelUID, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	images, err := ic.Service.ListByHotel(hotelUID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list images")
		return
	}
	c.JSON(http.StatusOK, images)
}

type base64ImagePayload struct {
	Title string `json:"title"`
	Image string `json:"image" binding:"required"`
}

// UploadImage accepts either a multipart "file" field or a JSON body with a
// base64 payload, matching what the admin screens send.
func (ic *ImageController) UploadImage(c *gin.Context) {
	hotelUID, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel uid")
		return
	}

	image := models.HotelImage{HotelUID: hotelUID}
	if userID, ok := middleware.CurrentUserID(c); ok {
		image.AuthorID = &userID
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "file field is required")
			return
		}
		path, err := services.SaveUpload(c, fileHeader, hotelImagesDir)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		image.FilePath = path
		image.Title = c.PostForm("title")
	} else {
		var payload base64ImagePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		path, err := services.SaveBase64Image(payload.Image, hotelImagesDir)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		image.FilePath = path
		image.Title = payload.Title
	}

	if err := ic.Service.Create(&image); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save image")
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (ic *ImageController) DeleteImage(c *gin.Context) {
	uid, ok := uidParam(c, "uid")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid image uid")
		return
	}

	if err := ic.Service.Delete(uid); err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Image %s not found", uid))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete image")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
