// Package api exposes the lab operations REST API.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skillslab/internal/config"
	"skillslab/internal/files"
	"skillslab/internal/models"
	"skillslab/internal/monitoring"
)

// Store is the persistence interface the handlers operate on.
type Store interface {
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*models.Equipment, error)
	CreateEquipment(ctx context.Context, item *models.Equipment) error
	UpdateEquipment(ctx context.Context, item *models.Equipment) error
	DeleteEquipment(ctx context.Context, id string) error
	AddImage(ctx context.Context, image *models.Image) error

	ListMaintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error)
	ListMaintenanceForEquipment(ctx context.Context, equipmentID string) ([]models.MaintenanceRecord, error)
	CreateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error
	UpdateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error

	ListContacts(ctx context.Context) ([]models.ContactPerson, error)
	CreateContact(ctx context.Context, contact *models.ContactPerson) error
	ListManufacturers(ctx context.Context) ([]models.Manufacturer, error)
	CreateManufacturer(ctx context.Context, m *models.Manufacturer) error

	ListConsumables(ctx context.Context) ([]models.Consumable, error)
	GetConsumable(ctx context.Context, id string) (*models.Consumable, error)
	CreateConsumable(ctx context.Context, item *models.Consumable) error
	UpdateConsumable(ctx context.Context, item *models.Consumable) error
	DeleteConsumable(ctx context.Context, id string) error
	ListConsumableCategories(ctx context.Context) ([]models.ConsumableCategory, error)

	ListReservations(ctx context.Context) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
	CreateReservation(ctx context.Context, item *models.Reservation) error
	UpdateReservation(ctx context.Context, item *models.Reservation) error
	CreateCheckInOut(ctx context.Context, event *models.CheckInOut) error

	ListProcurementRequests(ctx context.Context) ([]models.ProcurementRequest, error)
	CreateProcurementRequest(ctx context.Context, item *models.ProcurementRequest) error
	UpdateProcurementRequest(ctx context.Context, item *models.ProcurementRequest) error
	ListWishLists(ctx context.Context) ([]models.WishList, error)
	CreateWishList(ctx context.Context, list *models.WishList) error
	AddWishListItem(ctx context.Context, item *models.WishListItem) error

	ListDocuments(ctx context.Context) ([]models.Document, error)
	CreateDocument(ctx context.Context, doc *models.Document) error
	DeleteDocument(ctx context.Context, id string) error
}

// Server wires the handlers, store and file store onto a gin router.
type Server struct {
	router *gin.Engine
	store  Store
	files  files.Store
	hub    *Hub
	secret string
	now    func() time.Time
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, store Store, fileStore files.Store) *Server {
	s := &Server{
		router: gin.Default(),
		store:  store,
		files:  fileStore,
		hub:    newHub(),
		secret: cfg.Auth.Secret,
		now:    time.Now,
	}

	s.router.Use(monitoring.Middleware())
	s.setupRoutes(cfg)
	return s
}

// Router returns the gin router for serving or testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes(cfg *config.Config) {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "SkillsLab API is running"})
	})
	s.router.GET("/ws", s.handleWS)

	if cfg.Files.Dir != "" && cfg.Files.BaseURL != "" {
		s.router.Static(cfg.Files.BaseURL, cfg.Files.Dir)
	}

	v1 := s.router.Group("/api/v1")
	if s.secret != "" {
		v1.Use(AuthRequired(s.secret))
	}
	{
		// Equipment tracking
		v1.GET("/equipment", s.listEquipment)
		v1.POST("/equipment", s.createEquipment)
		v1.GET("/equipment/stats", s.equipmentStats)
		v1.GET("/equipment/:id", s.getEquipment)
		v1.PUT("/equipment/:id", s.updateEquipment)
		v1.DELETE("/equipment/:id", s.deleteEquipment)
		v1.POST("/equipment/:id/images", s.uploadEquipmentImage)
		v1.GET("/equipment/:id/maintenance", s.listEquipmentMaintenance)
		v1.POST("/equipment/:id/maintenance", s.createMaintenanceRecord)

		// Maintenance scheduling
		v1.GET("/maintenance", s.listMaintenance)
		v1.GET("/maintenance/stats", s.maintenanceStats)
		v1.PUT("/maintenance/:id", s.updateMaintenanceRecord)
		v1.GET("/contacts", s.listContacts)
		v1.POST("/contacts", s.createContact)
		v1.GET("/manufacturers", s.listManufacturers)
		v1.POST("/manufacturers", s.createManufacturer)

		// Consumable stock
		v1.GET("/consumables", s.listConsumables)
		v1.POST("/consumables", s.createConsumable)
		v1.GET("/consumables/stats", s.consumableStats)
		v1.GET("/consumables/categories", s.listConsumableCategories)
		v1.PUT("/consumables/:id", s.updateConsumable)
		v1.DELETE("/consumables/:id", s.deleteConsumable)

		// Reservations
		v1.GET("/reservations", s.listReservations)
		v1.POST("/reservations", s.createReservation)
		v1.GET("/reservations/stats", s.reservationStats)
		v1.GET("/reservations/:id", s.getReservation)
		v1.PUT("/reservations/:id", s.updateReservation)
		v1.POST("/reservations/:id/checkout", s.checkOut)
		v1.POST("/reservations/:id/checkin", s.checkIn)

		// Procurement
		v1.GET("/procurement/requests", s.listProcurementRequests)
		v1.POST("/procurement/requests", s.createProcurementRequest)
		v1.PUT("/procurement/requests/:id", s.updateProcurementRequest)
		v1.GET("/procurement/stats", s.procurementStats)
		v1.GET("/procurement/wish-lists", s.listWishLists)
		v1.POST("/procurement/wish-lists", s.createWishList)
		v1.POST("/procurement/wish-lists/:id/items", s.addWishListItem)

		// Document repository
		v1.GET("/documents", s.listDocuments)
		v1.POST("/documents", s.createDocument)
		v1.GET("/documents/stats", s.documentStats)
		v1.DELETE("/documents/:id", s.deleteDocument)
		v1.POST("/documents/upload", s.uploadDocument)
	}
}
