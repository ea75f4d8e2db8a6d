package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Document represents stored file metadata; the file content itself lives
// behind the file store and is addressed by URL.
type Document struct {
	ID           string           `json:"id" gorm:"primary_key"`
	Title        string           `json:"title" gorm:"not null"`
	Filename     string           `json:"filename"`
	OriginalName string           `json:"originalName"`
	FileSize     int64            `json:"fileSize"`
	MimeType     string           `json:"mimeType"`
	URL          string           `json:"url"`
	Description  string           `json:"description,omitempty"`
	Category     DocumentCategory `json:"category"`
	Tags         StringSlice      `json:"tags" gorm:"type:text"`
	UploadedByID string           `json:"uploadedById"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// TableName sets the table name for Document
func (Document) TableName() string {
	return "documents"
}

// DocumentCategory classifies a stored document
type DocumentCategory string

const (
	// Document categories
	DocInvoice       DocumentCategory = "INVOICE"
	DocReceipt       DocumentCategory = "RECEIPT"
	DocManual        DocumentCategory = "MANUAL"
	DocWarranty      DocumentCategory = "WARRANTY"
	DocServiceRecord DocumentCategory = "SERVICE_RECORD"
	DocCertificate   DocumentCategory = "CERTIFICATE"
	DocPolicy        DocumentCategory = "POLICY"
	DocProcedure     DocumentCategory = "PROCEDURE"
	DocTraining      DocumentCategory = "TRAINING"
	DocOther         DocumentCategory = "OTHER"
)

// DocumentTags is the recognized tag vocabulary.
var DocumentTags = []string{
	"Equipment",
	"Maintenance",
	"Procurement",
	"Training",
	"Safety",
	"Compliance",
	"Financial",
	"Technical",
	"Administrative",
}
