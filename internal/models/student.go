package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	gorm.Model
	StudentNumber  string  `gorm:"uniqueIndex;not null"` // Campus-issued identifier
	FullName       string  `gorm:"not null"`
	Email          string  `gorm:"uniqueIndex;not null"` // Unique index on Email
	CredentialHash string  `gorm:"not null"`             // Hashed externally; opaque here
	Department     string  `gorm:"default:''"`
	Wallet         *Wallet `gorm:"foreignKey:StudentID"`
}

// Profile holds the mutable fields of a student record. Identity
// (StudentNumber, Email) is fixed once the account exists.
type Profile struct {
	FullName   string
	Department string
}

func (s *Student) UpdateProfile(p Profile, now time.Time) {
	if p.FullName != "" {
		s.FullName = p.FullName
	}
	s.Department = p.Department
	s.UpdatedAt = now
}
