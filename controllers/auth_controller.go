package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewAuthController(auth *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{Auth: auth, Users: users}
}

type registerPayload struct {
	Username  string  `json:"username" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	IsOwner   bool    `json:"is_owner"`
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user := models.User{
		Username:   payload.Username,
		Email:      payload.Email,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Phone:      payload.Phone,
		IsCustomer: true,
		IsOwner:    payload.IsOwner,
	}

	if err := ac.Users.Create(&user, payload.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameRequired), errors.Is(err, services.ErrEmailRequired):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case isDuplicate(err):
			utils.JSONError(c, http.StatusConflict, "Username or email already exists")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, user, err := ac.Auth.Login(strings.TrimSpace(payload.Username), payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"is_manager": user.IsManager,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	bearer := c.GetHeader("Authorization")
	if !strings.HasPrefix(bearer, "Bearer ") {
		utils.JSONError(c, http.StatusBadRequest, "missing bearer token")
		return
	}

	if err := ac.Auth.Logout(c.Request.Context(), strings.TrimPrefix(bearer, "Bearer ")); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid token")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := ac.Users.GetByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
