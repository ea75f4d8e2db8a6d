package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

func (s *Server) listConsumables(c *gin.Context) {
	items, err := s.store.ListConsumables(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := dashboard.ConsumableFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	c.JSON(http.StatusOK, dashboard.FilterConsumables(items, filter))
}

func (s *Server) createConsumable(c *gin.Context) {
	var item models.Consumable
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.CreateConsumable(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("consumable.created", item)
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateConsumable(c *gin.Context) {
	existing, err := s.store.GetConsumable(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consumable not found"})
		return
	}

	var item models.Consumable
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateConsumable(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("consumable.updated", item)
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteConsumable(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.store.GetConsumable(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consumable not found"})
		return
	}

	if err := s.store.DeleteConsumable(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("consumable.deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Consumable deleted successfully"})
}

func (s *Server) consumableStats(c *gin.Context) {
	items, err := s.store.ListConsumables(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.AggregateConsumables(s.now(), items))
}

func (s *Server) listConsumableCategories(c *gin.Context) {
	items, err := s.store.ListConsumableCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
