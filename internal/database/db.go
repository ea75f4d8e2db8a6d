// Package database implements the relational store behind the API using GORM.
package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"skillslab/internal/config"
	"skillslab/internal/models"
)

// DB wraps the GORM connection and implements the API's Store interface.
type DB struct {
	conn *gorm.DB
}

// Open connects to the configured database, migrates the schema and seeds
// default data.
func Open(cfg config.DatabaseConfig) (*DB, error) {
	conn, err := gorm.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	conn.DB().SetMaxIdleConns(10)
	conn.DB().SetMaxOpenConns(100)
	conn.DB().SetConnMaxLifetime(time.Hour)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	db.seedDefaults()

	return db, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}

func (d *DB) migrate() error {
	result := d.conn.AutoMigrate(
		&models.Equipment{},
		&models.Image{},
		&models.MaintenanceRecord{},
		&models.ContactPerson{},
		&models.Manufacturer{},
		&models.Consumable{},
		&models.ConsumableCategory{},
		&models.Reservation{},
		&models.CheckInOut{},
		&models.ProcurementRequest{},
		&models.WishList{},
		&models.WishListItem{},
		&models.Document{},
		&models.User{},
	)
	if result.Error != nil {
		return fmt.Errorf("failed to migrate schema: %w", result.Error)
	}
	return nil
}

// seedDefaults ensures essential reference data exists in the database
func (d *DB) seedDefaults() {
	var count int64
	d.conn.Model(&models.ConsumableCategory{}).Count(&count)
	if count == 0 {
		for _, name := range models.ConsumableCategories {
			d.conn.Create(&models.ConsumableCategory{
				ID:   newID(),
				Name: name,
			})
		}
	}
}
