package controllers

import (
	"context"
	"time"

	"Backend-ZAB-Portal/src/models"
	"Backend-ZAB-Portal/src/services/feedback"
	"Backend-ZAB-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 5 * time.Second

// FeedbackService is implemented by *feedback.Service.
type FeedbackService interface {
	Submit(ctx context.Context, in models.FeedbackInput) (*models.Feedback, error)
	Approve(ctx context.Context, id string) (*feedback.ApproveResult, error)
	Reject(ctx context.Context, id, reason string) (*feedback.RejectResult, error)
	ListForModeration(ctx context.Context, p models.PaginationParams, includeRejected bool) (*feedback.ModerationPage, error)
	ListForSubject(ctx context.Context, controllerID string, p models.PaginationParams) (*feedback.SubjectPage, error)
	ListPending(ctx context.Context) ([]models.Feedback, error)
}

type FeedbackController struct {
	svc FeedbackService
}

func NewFeedbackController(svc FeedbackService) *FeedbackController {
	return &FeedbackController{svc: svc}
}

// SubmitFeedback godoc
// @Summary      Submit feedback
// @Description  Submit feedback about a controller. The record waits for moderation.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body body models.FeedbackInput true "Feedback"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /feedback [post]
func (fc *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	var in models.FeedbackInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	fb, err := fc.svc.Submit(ctx, in)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Feedback submitted successfully",
		"id":      fb.ID.Hex(),
	})
}

// GetFeedback godoc
// @Summary      List decided feedback
// @Description  Moderator view of approved feedback, newest first. includeRejected=true adds retained rejected records.
// @Tags         feedback
// @Produce      json
// @Param        page             query  int   true   "Page (1-indexed)"
// @Param        limit            query  int   true   "Items per page"
// @Param        includeRejected  query  bool  false  "Include rejected records"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /feedback [get]
func (fc *FeedbackController) GetFeedback(c *fiber.Ctx) error {
	params, err := models.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	page, err := fc.svc.ListForModeration(ctx, params, c.QueryBool("includeRejected", false))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(models.NewPaginatedResponse(page.Items, page.Total, params))
}

// GetUnapprovedFeedback godoc
// @Summary      List pending feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {array}   models.Feedback
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /feedback/unapproved [get]
func (fc *FeedbackController) GetUnapprovedFeedback(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	pending, err := fc.svc.ListPending(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(pending)
}

// ApproveFeedback godoc
// @Summary      Approve feedback
// @Description  Approves a pending record and notifies the controller. deliveryFailed reports a notification failure; the approval stands.
// @Tags         feedback
// @Produce      json
// @Param        id   path      string  true  "Feedback ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /feedback/approve/{id} [put]
func (fc *FeedbackController) ApproveFeedback(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := fc.svc.Approve(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Feedback approved",
		"notification":   res.Notification,
		"deliveryFailed": res.DeliveryErr != nil,
	})
}

// RejectFeedback godoc
// @Summary      Reject feedback
// @Description  Rejects a pending record. The submitter is emailed the reason when email is configured.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id    path  string              true   "Feedback ID"
// @Param        body  body  models.RejectInput  false  "Reason"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /feedback/reject/{id} [put]
func (fc *FeedbackController) RejectFeedback(c *fiber.Ctx) error {
	var in models.RejectInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := fc.svc.Reject(ctx, c.Params("id"), in.Reason)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Feedback rejected",
		"deliveryFailed": res.DeliveryErr != nil,
	})
}

// GetControllerFeedback godoc
// @Summary      List feedback about a controller
// @Description  Approved feedback about the controller, with anonymous submitters redacted.
// @Tags         feedback
// @Produce      json
// @Param        id     path   string  true  "Controller ID"
// @Param        page   query  int     true  "Page (1-indexed)"
// @Param        limit  query  int     true  "Items per page"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /feedback/{id} [get]
func (fc *FeedbackController) GetControllerFeedback(c *fiber.Ctx) error {
	params, err := models.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	page, err := fc.svc.ListForSubject(ctx, c.Params("id"), params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(models.NewPaginatedResponse(page.Items, page.Total, params))
}
