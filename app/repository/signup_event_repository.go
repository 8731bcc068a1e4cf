package repository

import (
	"time"

	"github.com/zakerai/zaker-web/app/models"
	"gorm.io/gorm"
)

type signupEventRepository struct {
	db *gorm.DB
}

func NewSignupEventRepository(db *gorm.DB) SignupEventRepository {
	return &signupEventRepository{db: db}
}

func (r *signupEventRepository) Create(event *models.SignupEvent) error {
	return r.db.Create(event).Error
}

// CountByEvent groups events recorded since the given time by event and step
func (r *signupEventRepository) CountByEvent(since time.Time) ([]EventCount, error) {
	var rows []EventCount
	err := r.db.Model(&models.SignupEvent{}).
		Select("event, step, COUNT(*) AS total").
		Where("created_at >= ?", since).
		Group("event, step").
		Order("step ASC, event ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *signupEventRepository) CountDistinctWizards(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.SignupEvent{}).
		Where("created_at >= ?", since).
		Distinct("wizard_id").
		Count(&count).Error
	return count, err
}

// DeleteOlderThan prunes funnel rows; returns the number of deleted rows
func (r *signupEventRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&models.SignupEvent{})
	return res.RowsAffected, res.Error
}
