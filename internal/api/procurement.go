package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

func (s *Server) listProcurementRequests(c *gin.Context) {
	items, err := s.store.ListProcurementRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := dashboard.ProcurementFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	c.JSON(http.StatusOK, dashboard.FilterProcurement(items, filter))
}

func (s *Server) createProcurementRequest(c *gin.Context) {
	var item models.ProcurementRequest
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.Status == "" {
		item.Status = models.ProcurementSubmitted
	}
	if item.Priority == "" {
		item.Priority = models.PriorityMedium
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if err := s.store.CreateProcurementRequest(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("procurement.created", item)
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateProcurementRequest(c *gin.Context) {
	var item models.ProcurementRequest
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = c.Param("id")
	if err := s.store.UpdateProcurementRequest(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("procurement.updated", item)
	c.JSON(http.StatusOK, item)
}

func (s *Server) procurementStats(c *gin.Context) {
	items, err := s.store.ListProcurementRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.AggregateProcurement(items))
}

func (s *Server) listWishLists(c *gin.Context) {
	items, err := s.store.ListWishLists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) createWishList(c *gin.Context) {
	var list models.WishList
	if err := c.ShouldBindJSON(&list); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list.IsActive = true
	if err := s.store.CreateWishList(c.Request.Context(), &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (s *Server) addWishListItem(c *gin.Context) {
	var item models.WishListItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.WishListID = c.Param("id")
	if item.Priority == "" {
		item.Priority = models.PriorityMedium
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if err := s.store.AddWishListItem(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}
