package controllers

import (
	"context"

	"Backend-ZAB-Portal/src/models"
	"Backend-ZAB-Portal/src/services/roster"
	"Backend-ZAB-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

type RosterDirectory interface {
	ListActive(ctx context.Context) ([]models.Controller, error)
	ListStaff(ctx context.Context) (map[string]*roster.StaffBucket, error)
}

type RosterController struct {
	dir RosterDirectory
}

func NewRosterController(dir RosterDirectory) *RosterController {
	return &RosterController{dir: dir}
}

// GetFeedbackControllers godoc
// @Summary      Controllers selectable on the feedback form
// @Tags         feedback
// @Produce      json
// @Success      200  {array}   models.Controller
// @Failure      500  {object}  models.ErrorResponse
// @Router       /feedback/controllers [get]
func (rc *RosterController) GetFeedbackControllers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	controllers, err := rc.dir.ListActive(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(controllers)
}

// GetStaff godoc
// @Summary      Facility staff grouped by role
// @Tags         controllers
// @Produce      json
// @Success      200  {object}  map[string]roster.StaffBucket
// @Failure      500  {object}  models.ErrorResponse
// @Router       /controllers/staff [get]
func (rc *RosterController) GetStaff(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	staff, err := rc.dir.ListStaff(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(staff)
}
