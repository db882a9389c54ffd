package entity

import "time"

// Client represents a customer of the print shop. The mobile number is the
// natural key: it never changes after creation and no two clients share one.
type Client struct {
	MobileNumber string    `gorm:"size:50;primaryKey" json:"mobile_number"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        *string   `gorm:"size:255" json:"email,omitempty"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
