package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

func (s *Server) listMaintenance(c *gin.Context) {
	items, err := s.store.ListMaintenanceRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) listEquipmentMaintenance(c *gin.Context) {
	items, err := s.store.ListMaintenanceForEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) createMaintenanceRecord(c *gin.Context) {
	equipmentID := c.Param("id")
	if _, err := s.store.GetEquipment(c.Request.Context(), equipmentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	var record models.MaintenanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record.EquipmentID = equipmentID
	if record.Status == "" {
		record.Status = models.MaintenanceScheduled
	}
	if record.PerformedDate.IsZero() {
		record.PerformedDate = s.now()
	}

	if err := s.store.CreateMaintenanceRecord(c.Request.Context(), &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("maintenance.created", record)
	c.JSON(http.StatusCreated, record)
}

func (s *Server) updateMaintenanceRecord(c *gin.Context) {
	var record models.MaintenanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record.ID = c.Param("id")
	if err := s.store.UpdateMaintenanceRecord(c.Request.Context(), &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast("maintenance.updated", record)
	c.JSON(http.StatusOK, record)
}

func (s *Server) maintenanceStats(c *gin.Context) {
	items, err := s.store.ListMaintenanceRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.AggregateMaintenance(s.now(), items))
}

func (s *Server) listContacts(c *gin.Context) {
	items, err := s.store.ListContacts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) createContact(c *gin.Context) {
	var contact models.ContactPerson
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.CreateContact(c.Request.Context(), &contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (s *Server) listManufacturers(c *gin.Context) {
	items, err := s.store.ListManufacturers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) createManufacturer(c *gin.Context) {
	var m models.Manufacturer
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.CreateManufacturer(c.Request.Context(), &m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}
