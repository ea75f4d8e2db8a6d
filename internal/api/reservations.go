package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

func (s *Server) listReservations(c *gin.Context) {
	items, err := s.store.ListReservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := dashboard.ReservationFilter{
		Status:      c.Query("status"),
		EquipmentID: c.Query("equipmentId"),
	}
	c.JSON(http.StatusOK, dashboard.FilterReservations(s.now(), items, filter))
}

func (s *Server) getReservation(c *gin.Context) {
	item, err := s.store.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createReservation(c *gin.Context) {
	var item models.Reservation
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.EndDate.Before(item.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end date is before start date"})
		return
	}
	if item.Status == "" {
		item.Status = models.ReservationPending
	}

	if _, err := s.store.GetEquipment(c.Request.Context(), item.EquipmentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	if err := s.store.CreateReservation(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("reservation.created", item)
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateReservation(c *gin.Context) {
	existing, err := s.store.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	var item models.Reservation
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.CheckInOuts = nil

	if err := s.store.UpdateReservation(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("reservation.updated", item)
	c.JSON(http.StatusOK, item)
}

// checkRequest is the body for check-in and check-out actions.
type checkRequest struct {
	Condition string   `json:"condition"`
	Notes     string   `json:"notes"`
	Images    []string `json:"images"`
	UserID    string   `json:"userId"`
}

func (s *Server) checkOut(c *gin.Context) {
	s.logCheckEvent(c, models.CheckTypeOut)
}

func (s *Server) checkIn(c *gin.Context) {
	s.logCheckEvent(c, models.CheckTypeIn)
}

func (s *Server) logCheckEvent(c *gin.Context, checkType models.CheckType) {
	reservation, err := s.store.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.CheckInOut{
		Type:          checkType,
		Timestamp:     s.now(),
		Condition:     req.Condition,
		Notes:         req.Notes,
		Images:        req.Images,
		ReservationID: reservation.ID,
		UserID:        req.UserID,
	}

	if err := s.store.CreateCheckInOut(c.Request.Context(), &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("reservation.updated", gin.H{"id": reservation.ID})
	c.JSON(http.StatusCreated, event)
}

func (s *Server) reservationStats(c *gin.Context) {
	items, err := s.store.ListReservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.AggregateReservations(s.now(), items))
}
