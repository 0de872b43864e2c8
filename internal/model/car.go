package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, matching what the frontend sends back.
	decimal.MarshalJSONWithoutQuotes = true
}

// Car represents a vehicle in the inventory. ShowroomID is nullable: a car
// may exist without being assigned to a showroom.
type Car struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"size:100;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Year       int             `json:"year" gorm:"not null"`
	Type       string          `json:"type" gorm:"size:50;not null"`
	ImageURL   string          `json:"image_url" gorm:"size:500"`
	ShowroomID *uint           `json:"showroom_id" gorm:"index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relations
	Showroom *Showroom `json:"-" gorm:"foreignKey:ShowroomID"`
}
