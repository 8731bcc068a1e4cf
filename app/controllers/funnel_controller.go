package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/zakerai/zaker-web/internal/pkg/funnel"
)

const (
	DEFAULT_FUNNEL_DAYS = 7
	MAX_FUNNEL_DAYS     = 90
)

// FunnelController serves the signup funnel report to operators
type FunnelController struct {
	recorder *funnel.Recorder
	now      func() time.Time
}

func NewFunnelController(recorder *funnel.Recorder) *FunnelController {
	return &FunnelController{recorder: recorder, now: time.Now}
}

// HandleReport returns event counts for the last ?days= days (default 7, max 90)
func (fc *FunnelController) HandleReport(c *fiber.Ctx) error {
	days := c.QueryInt("days", DEFAULT_FUNNEL_DAYS)
	if days <= 0 || days > MAX_FUNNEL_DAYS {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "days must be between 1 and 90",
		})
	}

	summary, err := fc.recorder.Summary(fc.now().AddDate(0, 0, -days))
	if err != nil {
		log.Errorf("funnel report failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_error",
			"message": "funnel report unavailable",
		})
	}
	return c.JSON(summary)
}

var funnelController *FunnelController

func InitializeFunnelController(recorder *funnel.Recorder) {
	funnelController = NewFunnelController(recorder)
}

func GetFunnelController() *FunnelController {
	return funnelController
}

// HandleFunnelReport - Adapter for GET /metrics/funnel
func HandleFunnelReport(c *fiber.Ctx) error {
	return GetFunnelController().HandleReport(c)
}
