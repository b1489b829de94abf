package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/maestroya/backend/internal/pkg/cache"
	"github.com/maestroya/backend/internal/pkg/closure"
	"github.com/maestroya/backend/internal/pkg/database"
)

// HandleHealth reports process and database liveness.
func HandleHealth(c *fiber.Ctx) error {
	db := database.GetDB()
	if db != nil {
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleClosureStatus returns the summary of the last closure tick.
func HandleClosureStatus(c *fiber.Ctx) error {
	raw, err := cache.Get(closure.LastRunCacheKey)
	if err != nil {
		if cache.IsMiss(err) {
			return c.JSON(fiber.Map{
				"running":  closure.GetManager().IsRunning(),
				"last_run": nil,
			})
		}
		log.Warnf("[Ops] closure status cache read failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "status cache unavailable",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(`{"running":` + boolJSON(closure.GetManager().IsRunning()) + `,"last_run":` + raw + `}`)
}

// HandleClosureRun triggers one closure tick outside the schedule.
func HandleClosureRun(c *fiber.Ctx) error {
	summary := closure.GetManager().RunOnce()
	return c.JSON(summary)
}

func boolJSON(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
