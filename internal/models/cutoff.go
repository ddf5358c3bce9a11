package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cutoff is one admission cutoff record: the worst admitted rank for a
// college/branch/category combination in one admission stage. The category
// column holds the opaque code from the source report (e.g. GOPENS, LSEBCH,
// PWDRSCS, TFWS); eligibility matching is by substring containment against it.
type Cutoff struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CollegeID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"college_id"`
	CollegeCode int             `gorm:"not null" json:"college_code"`
	Branch      string          `gorm:"type:varchar(500);index" json:"branch"`
	CourseCode  int64           `gorm:"not null;default:0" json:"course_code"`
	Category    string          `gorm:"type:varchar(50);index" json:"category"`
	Rank        *int            `gorm:"index" json:"rank"`
	Percentile  decimal.Decimal `gorm:"type:decimal(6,2)" json:"percentile"`
	Gender      string          `gorm:"type:varchar(20)" json:"gender"`
	Level       string          `gorm:"type:varchar(100)" json:"level"`
	Year        int             `json:"year,omitempty"`
	Stage       string          `gorm:"type:varchar(50)" json:"stage,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`

	College College `gorm:"foreignKey:CollegeID" json:"-"`
}

func (c *Cutoff) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CollegeID == uuid.Nil {
		return errors.New("cutoff requires a college")
	}
	return nil
}

func (c *Cutoff) TableName() string {
	return "cutoffs"
}

// SuggestionStatistics summarizes the match set for a student profile.
type SuggestionStatistics struct {
	TotalMatches   int      `json:"total_matches"`
	UniqueColleges int      `json:"unique_colleges"`
	UniqueBranches int      `json:"unique_branches"`
	Levels         []string `json:"levels"`
	Categories     []string `json:"categories"`
	MinRank        int      `json:"min_rank"`
	MaxRank        int      `json:"max_rank"`
}
