package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// College status values as printed in the CAP cutoff reports.
const (
	CollegeStatusGovernment = "Government"
	CollegeStatusPrivate    = "Private"
	CollegeStatusAided      = "Aided"
)

type College struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code       int       `gorm:"not null;uniqueIndex:idx_colleges_code_name_status" json:"code"`
	Name       string    `gorm:"type:varchar(500);not null;uniqueIndex:idx_colleges_code_name_status" json:"name"`
	Status     string    `gorm:"type:varchar(50);uniqueIndex:idx_colleges_code_name_status" json:"status"`
	University string    `gorm:"type:varchar(500)" json:"university,omitempty"`
	Region     string    `gorm:"type:varchar(200);index" json:"region,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	Cutoffs []Cutoff `gorm:"foreignKey:CollegeID" json:"-"`
}

func (c *College) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Name == "" {
		return errors.New("college name is required")
	}
	if c.Code <= 0 {
		return errors.New("college code is required")
	}
	return nil
}

func (c *College) TableName() string {
	return "colleges"
}
