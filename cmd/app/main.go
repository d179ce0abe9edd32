package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"babylog/cmd/fx/account_fx"
	"babylog/cmd/fx/baby_fx"
	"babylog/cmd/fx/caregiver_fx"
	"babylog/cmd/fx/controllers_fx"
	"babylog/cmd/fx/db_fx"
	"babylog/cmd/fx/mail_fx"
	"babylog/cmd/fx/memcache_fx"
	"babylog/cmd/fx/photo_fx"
	"babylog/cmd/fx/storage_fx"
	"babylog/cmd/fx/tracking_fx"
	"babylog/internal/api/controllers"
	"babylog/pkg/middleware"
	"babylog/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}
	utils.SetSessionSecret([]byte(secret))

	app := fx.New(
		db_fx.Module,
		storage_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		baby_fx.Module,
		caregiver_fx.Module,
		tracking_fx.Module,
		photo_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	dashboardController *controllers.DashboardController,
	babyController *controllers.BabyController,
	trackingController *controllers.TrackingController,
	photoController *controllers.PhotoController,
	caregiverController *controllers.CaregiverController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.SessionMiddleware())

	RegisterRoutes(r,
		accountController,
		dashboardController,
		babyController,
		trackingController,
		photoController,
		caregiverController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	dashboardController *controllers.DashboardController,
	babyController *controllers.BabyController,
	trackingController *controllers.TrackingController,
	photoController *controllers.PhotoController,
	caregiverController *controllers.CaregiverController) {

	r.GET("/", dashboardController.Home)
	r.POST("/", accountController.Login)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/logout", accountController.Logout)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	r.GET("/dashboard", middleware.RequireSession(), dashboardController.Dashboard)
	r.POST("/babies", middleware.RequireSession(), babyController.CreateBaby)

	baby := r.Group("/baby/:id", middleware.RequireSession())
	baby.GET("", babyController.GetBaby)
	baby.GET("/track/:type", trackingController.TrackingForm)
	baby.POST("/track/photo", photoController.UploadPhoto)
	baby.POST("/track/:type", trackingController.SubmitTracking)
	baby.GET("/edit/:trackingType/:eventId", trackingController.EditForm)
	baby.POST("/edit/:trackingType/:eventId", trackingController.SubmitEdit)
	baby.POST("/add-caregiver", caregiverController.AddCaregiver)
	baby.POST("/invite-response", caregiverController.RespondToInvite)
	baby.DELETE("/caregivers/:userId", caregiverController.RemoveCaregiver)
	baby.POST("/owner", caregiverController.TransferOwnership)
	baby.PATCH("/photos/:photoId", photoController.UpdatePhoto)
	baby.DELETE("/photos/:photoId", photoController.DeletePhoto)
}
