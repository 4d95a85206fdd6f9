package routes

import (
	"Backend-ZAB-Portal/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// RosterRoutes read-only roster endpoints used by the public site
func RosterRoutes(router fiber.Router, rc *controllers.RosterController) {
	roster := router.Group("/controllers")
	roster.Get("/staff", rc.GetStaff)
}
