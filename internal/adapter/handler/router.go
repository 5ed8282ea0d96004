package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/srgjo27/scalable_parking/internal/platform/auth"
)

type Handlers struct {
	Bookings *BookingHandler
	Payments *PaymentHandler
	Slots    *SlotHandler
}

func NewRouter(h Handlers, verifier *auth.Verifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/slots", h.Slots.List)
		v1.GET("/slots/stats", h.Slots.Stats)

		v1.POST("/payments/callback", h.Payments.Callback)

		secured := v1.Group("")
		secured.Use(JWTAuth(verifier))
		{
			secured.POST("/bookings", h.Bookings.Create)
			secured.GET("/bookings", h.Bookings.List)
			secured.POST("/bookings/leave", h.Bookings.Leave)
			secured.POST("/bookings/undo", h.Bookings.Undo)
			secured.GET("/bookings/:id/status", h.Bookings.Status)
			secured.POST("/bookings/:id/cancel", h.Bookings.Cancel)
		}

		admin := v1.Group("/admin")
		admin.Use(JWTAuth(verifier), RequireStaff())
		{
			admin.POST("/slots", h.Slots.Create)
			admin.PUT("/slots/:id", h.Slots.Update)
			admin.DELETE("/slots/:id", h.Slots.Delete)
			admin.PUT("/slots/:id/occupancy", h.Slots.SetOccupancy)
			admin.POST("/slots/:id/toggle", h.Slots.Toggle)

			admin.GET("/bookings", h.Bookings.ListAll)
			admin.POST("/bookings/:id/simulate-paid", h.Payments.SimulatePaid)

			admin.GET("/rates", h.Slots.ListRates)
			admin.PUT("/rates/:category", h.Slots.SetRate)
		}
	}

	return r
}
