package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. The availability check hangs off
// the venues group so the URL reads naturally
// (GET /venues/:id/availability).
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)

		group.GET("/:id/status", h.Status)
		group.POST("/:id/feedback", h.SubmitFeedback)
	}

	// Admin review queue and the accept/reject action links from the
	// notification email.
	admin := g.Group("/admin/bookings")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/pending", h.ListPending)
		admin.GET("/accept", h.Accept)
		admin.GET("/reject", h.Reject)
	}

	g.GET("/venues/:id/availability", h.CheckAvailability)
}
