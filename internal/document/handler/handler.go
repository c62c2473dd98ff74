package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/service"
)

// RegisterDocumentRoutes exposes save, lookup and search over JSON.
// Both PUT and POST on /api/documents upsert.
func RegisterDocumentRoutes(r *gin.Engine, svc service.Service) {
	save := func(c *gin.Context) {
		var d document.Document
		if err := c.ShouldBindJSON(&d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saved, err := svc.Save(c.Request.Context(), &d)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
	r.POST("/api/documents", save)
	r.PUT("/api/documents", save)

	r.GET("/api/documents", func(c *gin.Context) {
		list, err := svc.Search(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/documents/:id", func(c *gin.Context) {
		d, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		c.JSON(http.StatusOK, d)
	})

	// an empty body searches without criteria
	r.POST("/api/documents/search", func(c *gin.Context) {
		var req *document.SearchRequest
		if c.Request.ContentLength != 0 {
			req = &document.SearchRequest{}
			if err := c.ShouldBindJSON(req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		list, err := svc.Search(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
