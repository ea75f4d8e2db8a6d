package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

func (s *Server) listEquipment(c *gin.Context) {
	items, err := s.store.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := dashboard.EquipmentFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	c.JSON(http.StatusOK, dashboard.FilterEquipment(s.now(), items, filter))
}

func (s *Server) getEquipment(c *gin.Context) {
	item, err := s.store.GetEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createEquipment(c *gin.Context) {
	var item models.Equipment
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.Status == "" {
		item.Status = models.EquipmentStatusActive
	}
	if item.Condition == "" {
		item.Condition = models.ConditionGood
	}

	if err := s.store.CreateEquipment(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("equipment.created", item)
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateEquipment(c *gin.Context) {
	existing, err := s.store.GetEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	var item models.Equipment
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.Images = nil
	item.MaintenanceRecords = nil

	if err := s.store.UpdateEquipment(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("equipment.updated", item)
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteEquipment(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.store.GetEquipment(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	if err := s.store.DeleteEquipment(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("equipment.deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}

func (s *Server) equipmentStats(c *gin.Context) {
	items, err := s.store.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.AggregateEquipment(s.now(), items))
}

func (s *Server) uploadEquipmentImage(c *gin.Context) {
	equipmentID := c.Param("id")
	if _, err := s.store.GetEquipment(c.Request.Context(), equipmentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

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

	image := models.Image{
		Filename:    header.Filename,
		URL:         url,
		Size:        header.Size,
		MimeType:    header.Header.Get("Content-Type"),
		IsPrimary:   c.PostForm("isPrimary") == "true",
		EquipmentID: equipmentID,
	}
	if err := s.store.AddImage(c.Request.Context(), &image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("equipment.updated", gin.H{"id": equipmentID})
	c.JSON(http.StatusCreated, image)
}
