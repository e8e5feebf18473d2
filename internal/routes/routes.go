package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowstudio/landing-builder/internal/assist"
	"github.com/glowstudio/landing-builder/internal/config"
	"github.com/glowstudio/landing-builder/internal/handlers"
	"github.com/glowstudio/landing-builder/internal/middleware"
	"github.com/glowstudio/landing-builder/internal/preview"
	"github.com/glowstudio/landing-builder/internal/store"
	"github.com/glowstudio/landing-builder/internal/timezone"
	ucBooking "github.com/glowstudio/landing-builder/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	docs *store.Documents,
	users *store.Users,
	hub *preview.Hub,
	improver assist.Improver,
	cfg *config.Config,
) {

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		docs,
		hub,
		nil, // uuid ids
		timezone.Location(cfg.StudioTimezone),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(users, docs, cfg)
	dataHandler := handlers.NewDataHandler(docs, hub, cfg.StudioTimezone)
	bookingHandler := handlers.NewBookingHandler(createBookingUC)
	assistHandler := handlers.NewAssistHandler(improver)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/initial-data", dataHandler.InitialData)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.IdentityMiddleware(cfg))
		{
			secured.GET("/data", dataHandler.GetData)
			secured.PUT("/data", dataHandler.PutData)
			secured.POST("/reset", dataHandler.Reset)

			secured.POST("/book", bookingHandler.Book)

			secured.POST("/assist/about", assistHandler.ImproveAbout)
			secured.POST("/assist/service", assistHandler.DescribeService)

			secured.GET("/preview/ws", func(c *gin.Context) {
				preview.ServeWS(hub, c, c.GetString(middleware.ContextUserID))
			})
		}
	}
}
