package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Admin represents a showroom administrator account.
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ShowroomID   *uint     `json:"showroom_id" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Showroom *Showroom `json:"-" gorm:"foreignKey:ShowroomID"`
}

// SetPassword replaces the stored hash with a bcrypt hash of plaintext.
// The plaintext itself is never persisted.
func (a *Admin) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func (a *Admin) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)) == nil
}
