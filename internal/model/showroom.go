package model

import "time"

// Showroom represents a physical showroom location. Rows are created by the
// seed script; the API exposes them read-only.
type Showroom struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Location  string    `json:"location,omitempty" gorm:"size:200"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Cars   []Car   `json:"cars,omitempty" gorm:"foreignKey:ShowroomID"`
	Admins []Admin `json:"admins,omitempty" gorm:"foreignKey:ShowroomID"`
}
