package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
)

// ApiClient handles API requests to the SkillsLab API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
}

// NewApiClient creates a new API client from the environment
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("SKILLSLAB_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
		Token:   os.Getenv("SKILLSLAB_TOKEN"),
	}
}

// Ping checks if the API server is available
func (c *ApiClient) Ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *ApiClient) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *ApiClient) post(path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetEquipment retrieves the equipment collection, optionally filtered
func (c *ApiClient) GetEquipment(query string) ([]models.Equipment, error) {
	var items []models.Equipment
	path := "/api/v1/equipment"
	if query != "" {
		path += "?" + query
	}
	err := c.get(path, &items)
	return items, err
}

// GetEquipmentStats retrieves the equipment dashboard tiles
func (c *ApiClient) GetEquipmentStats() (*dashboard.EquipmentStats, error) {
	var stats dashboard.EquipmentStats
	err := c.get("/api/v1/equipment/stats", &stats)
	return &stats, err
}

// GetConsumables retrieves the consumable collection
func (c *ApiClient) GetConsumables() ([]models.Consumable, error) {
	var items []models.Consumable
	err := c.get("/api/v1/consumables", &items)
	return items, err
}

// GetConsumableStats retrieves the consumable dashboard tiles
func (c *ApiClient) GetConsumableStats() (*dashboard.ConsumableStats, error) {
	var stats dashboard.ConsumableStats
	err := c.get("/api/v1/consumables/stats", &stats)
	return &stats, err
}

// GetReservations retrieves the reservation collection
func (c *ApiClient) GetReservations() ([]models.Reservation, error) {
	var items []models.Reservation
	err := c.get("/api/v1/reservations", &items)
	return items, err
}

// GetReservationStats retrieves the reservation dashboard tiles
func (c *ApiClient) GetReservationStats() (*dashboard.ReservationStats, error) {
	var stats dashboard.ReservationStats
	err := c.get("/api/v1/reservations/stats", &stats)
	return &stats, err
}

// CreateEquipment registers a new piece of equipment
func (c *ApiClient) CreateEquipment(item models.Equipment) (*models.Equipment, error) {
	var created models.Equipment
	err := c.post("/api/v1/equipment", item, &created)
	return &created, err
}
