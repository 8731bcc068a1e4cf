package repository

import (
	"time"

	"github.com/zakerai/zaker-web/app/models"
	"gorm.io/gorm"
)

// SignupEventRepository defines the interface for funnel event storage
type SignupEventRepository interface {
	Create(event *models.SignupEvent) error
	CountByEvent(since time.Time) ([]EventCount, error)
	CountDistinctWizards(since time.Time) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// EventCount is one row of the funnel summary
type EventCount struct {
	Event string `json:"event"`
	Step  int    `json:"step"`
	Total int64  `json:"total"`
}

// Repositories holds all repository instances
type Repositories struct {
	SignupEvent SignupEventRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		SignupEvent: NewSignupEventRepository(db),
	}
}
