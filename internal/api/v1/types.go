package apiv1

import (
	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/pricing"
)

// Pong defines model for Pong.
type Pong struct {
	Ping string `json:"ping"`
}

// Error defines model for Error.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Pricing defines model for Pricing.
type Pricing struct {
	Cycle models.BillingCycle `json:"cycle"`
	Plans []pricing.PlanCard  `json:"plans"`
}

// TierList defines model for TierList.
type TierList struct {
	PlanID int64         `json:"plan_id"`
	Tiers  []models.Tier `json:"tiers"`
}
