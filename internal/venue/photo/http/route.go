package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers photo routes. Listing and downloading are public;
// uploading and deleting are restricted to administrators.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	g.GET("/venues/:id/photos", h.ListByVenue)
	g.POST("/venues/:id/photos", authMiddleware, adminMiddleware, h.Upload)

	g.GET("/photos/:id", h.Download)
	g.GET("/photos/:id/thumbnail", h.DownloadThumbnail)
	g.DELETE("/photos/:id", authMiddleware, adminMiddleware, h.Delete)
}
