package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	ic *controllers.ImageController,
	resc *controllers.ReservationController,
	uc *controllers.UserController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
			auth.GET("/me", middleware.JWTAuth(), ac.Me)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.ListHotels)
			hotels.GET("/:uid", hc.GetHotel)
			hotels.GET("/:uid/rooms", rc.ListRooms)
			hotels.GET("/:uid/images", ic.ListImages)

			protected := hotels.Group("", middleware.JWTAuth())
			{
				protected.POST("", hc.CreateHotel)
				protected.PATCH("/:uid", hc.UpdateHotel)
				protected.PUT("/:uid", hc.UpdateHotel)
				protected.POST("/:uid/delete", hc.SoftDeleteHotel)
				protected.POST("/:uid/restore", hc.RestoreHotel)
				protected.DELETE("/:uid", middleware.ManagerOnly(), hc.DeleteHotel)
				protected.POST("/:uid/rooms", rc.CreateRoom)
				protected.POST("/:uid/images", ic.UploadImage)
			}
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/:uid", rc.GetRoom)

			protected := rooms.Group("", middleware.JWTAuth())
			{
				protected.PATCH("/:uid", rc.UpdateRoom)
				protected.PUT("/:uid", rc.UpdateRoom)
				protected.DELETE("/:uid", rc.DeleteRoom)
				protected.POST("/:uid/images", rc.AttachImage)
				protected.DELETE("/:uid/images", rc.DetachImage)
			}
		}

		images := api.Group("/images", middleware.JWTAuth())
		{
			images.DELETE("/:uid", ic.DeleteImage)
		}

		reservations := api.Group("/reservations", middleware.JWTAuth())
		{
			reservations.GET("", resc.ListReservations)
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/:id", resc.GetReservation)
			reservations.PATCH("/:id", resc.UpdateReservation)
			reservations.PUT("/:id", resc.UpdateReservation)
			reservations.DELETE("/:id", resc.DeleteReservation)
		}

		users := api.Group("/users", middleware.JWTAuth())
		{
			users.PATCH("/profile", uc.UpdateProfile)
			users.DELETE("/:id", uc.DeleteUser)
		}
	}

	return r
}
