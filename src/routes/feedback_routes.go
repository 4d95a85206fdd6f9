package routes

import (
	"Backend-ZAB-Portal/src/controllers"
	"Backend-ZAB-Portal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// FeedbackRoutes กำหนดเส้นทางสำหรับ Feedback API
// static paths must be registered before /:id
func FeedbackRoutes(router fiber.Router, fc *controllers.FeedbackController, rc *controllers.RosterController) {
	feedback := router.Group("/feedback")

	feedback.Post("/", fc.SubmitFeedback)                   // public intake
	feedback.Get("/controllers", rc.GetFeedbackControllers) // รายชื่อ controller ในฟอร์ม

	feedback.Get("/", middleware.AuthJWT, middleware.RequireManagement, fc.GetFeedback)
	feedback.Get("/unapproved", middleware.AuthJWT, middleware.RequireManagement, fc.GetUnapprovedFeedback)
	feedback.Put("/approve/:id", middleware.AuthJWT, middleware.RequireManagement, fc.ApproveFeedback)
	feedback.Put("/reject/:id", middleware.AuthJWT, middleware.RequireManagement, fc.RejectFeedback)

	feedback.Get("/:id", middleware.AuthJWT, middleware.RequireSelfOrManagement("id"), fc.GetControllerFeedback)
}
