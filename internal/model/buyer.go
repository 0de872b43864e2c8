package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Buyer represents a customer account. Username and email are both unique.
type Buyer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetPassword replaces the stored hash with a bcrypt hash of plaintext.
func (b *Buyer) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	b.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func (b *Buyer) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(plaintext)) == nil
}
