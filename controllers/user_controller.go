package controllers

import (
	"fmt"
	"net/http"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{Service: service}
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	delete(updateData, "id")
	delete(updateData, "user_id")

	if err := uc.Service.UpdateProfile(userID, updateData); err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "Profile not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// DeleteUser removes an account. Managers can delete anyone; other users only
// themselves. Authored reservations go with the account, owned hotels keep
// existing without an owner.
func (uc *UserController) DeleteUser(c *gin.Context) {
	targetID, ok := uidParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	if targetID != callerID && !c.GetBool(middleware.ContextIsManager) {
		utils.JSONError(c, http.StatusForbidden, "cannot delete another user")
		return
	}

	if err := uc.Service.Delete(targetID); err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("User %s not found", targetID))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
