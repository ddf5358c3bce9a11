package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RankedCollege is a denormalized ranking row with the branch already
// normalized to its canonical code, rebuilt from cutoffs after ingestion.
type RankedCollege struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CollegeID     uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`
	CollegeCode   int       `gorm:"not null" json:"college_code"`
	CollegeName   string    `gorm:"type:varchar(500);not null" json:"college_name"`
	CollegeStatus string    `gorm:"type:varchar(50)" json:"college_status,omitempty"`
	Branch        string    `gorm:"type:varchar(500);not null;index" json:"branch"`
	BranchCode    string    `gorm:"type:varchar(20);not null;index" json:"branch_code"`
	CutoffRank    int       `gorm:"not null" json:"cutoff_rank"`
	RankPosition  int       `gorm:"not null" json:"rank_position"`
	Year          int       `json:"year,omitempty"`
	Stage         string    `gorm:"type:varchar(50)" json:"stage,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (rc *RankedCollege) BeforeCreate(tx *gorm.DB) error {
	if rc.ID == uuid.Nil {
		rc.ID = uuid.New()
	}
	return nil
}

func (rc *RankedCollege) TableName() string {
	return "ranked_colleges"
}
