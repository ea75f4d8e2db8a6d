package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

func (s *Server) listDocuments(c *gin.Context) {
	items, err := s.store.ListDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := dashboard.DocumentFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	c.JSON(http.StatusOK, dashboard.FilterDocuments(items, filter))
}

func (s *Server) createDocument(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if doc.Category == "" {
		doc.Category = models.DocOther
	}
	if doc.Tags == nil {
		doc.Tags = models.StringSlice{}
	}

	if err := s.store.CreateDocument(c.Request.Context(), &doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("document.created", doc)
	c.JSON(http.StatusCreated, doc)
}

func (s *Server) deleteDocument(c *gin.Context) {
	id := c.Param("id")
	if err := s.store.DeleteDocument(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("document.deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

// uploadDocument stores raw file content and returns the metadata the
// client then posts to /documents.
func (s *Server) uploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	defer file.Close()

	url, err := s.files.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":      url,
		"filename": header.Filename,
		"fileSize": header.Size,
		"mimeType": header.Header.Get("Content-Type"),
	})
}

func (s *Server) documentStats(c *gin.Context) {
	items, err := s.store.ListDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.AggregateDocuments(items))
}
