package models

import (
	"time"
)

const (
	EVENT_STARTED          = "started"
	EVENT_STEP_COMPLETED   = "step_completed"
	EVENT_STEP_REJECTED    = "step_rejected"
	EVENT_RETREATED        = "retreated"
	EVENT_SUBMIT_SUCCEEDED = "submit_succeeded"
	EVENT_SUBMIT_FAILED    = "submit_failed"
)

// SignupEvent is an anonymous funnel record. It never stores organization,
// contact or credential data.
type SignupEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WizardID     string    `gorm:"type:varchar(36);index" json:"wizard_id"`
	Event        string    `gorm:"type:varchar(32);index" json:"event"`
	Step         int       `gorm:"type:tinyint" json:"step"`
	PlanID       *int64    `gorm:"default:null" json:"plan_id,omitempty"`
	TierID       *int64    `gorm:"default:null" json:"tier_id,omitempty"`
	BillingCycle string    `gorm:"type:varchar(10);default:null" json:"billing_cycle,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (SignupEvent) TableName() string {
	return "signup_events"
}
