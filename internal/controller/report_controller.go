package controller

import (
	"errors"

	"careeriq-be/internal/dto"
	"careeriq-be/internal/pkg/serverutils"
	"careeriq-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	Upgrade(ctx *fiber.Ctx) error
	GetProgress(ctx *fiber.Ctx) error
	GetReport(ctx *fiber.Ctx) error
	SendReport(ctx *fiber.Ctx) error
}

type analyzeRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}

type reportController struct {
	analysisService service.IAnalysisService
	reportService   service.IReportService
}

func NewReportController(analysisService service.IAnalysisService, reportService service.IReportService) IReportController {
	return &reportController{
		analysisService: analysisService,
		reportService:   reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze", c.Analyze)
	r.Post("/upgrade", c.Upgrade)
	r.Get("/report/:id/progress", c.GetProgress)
	r.Get("/report/:id", c.GetReport)
	r.Post("/report/send", c.SendReport)
}

func (c *reportController) Analyze(ctx *fiber.Ctx) error {
	var req analyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.analysisService.StartAnalysis(ctx.Context(), req.SessionId); err != nil {
		return mapAnalysisError(ctx, err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Analysis started", fiber.Map{
		"session_id": req.SessionId,
	}))
}

func (c *reportController) Upgrade(ctx *fiber.Ctx) error {
	var req analyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.analysisService.StartUpgrade(ctx.Context(), req.SessionId); err != nil {
		return mapAnalysisError(ctx, err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Upgrade started", fiber.Map{
		"session_id": req.SessionId,
	}))
}

func (c *reportController) GetProgress(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	res, err := c.reportService.GetProgress(ctx.Context(), sessionId)
	if err != nil {
		return mapAnalysisError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Progress", res))
}

func (c *reportController) GetReport(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	res, err := c.reportService.GetReport(ctx.Context(), sessionId)
	if err != nil {
		return mapAnalysisError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Report", res))
}

func (c *reportController) SendReport(ctx *fiber.Ctx) error {
	var req dto.SendReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.reportService.SendReport(ctx.Context(), &req)
	if err != nil {
		return mapAnalysisError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Report sent", res))
}

func mapAnalysisError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "session not found"))
	case errors.Is(err, service.ErrReportNotReady):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "report is not ready"))
	case errors.Is(err, service.ErrAnalysisInProgress):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "analysis already in progress"))
	case errors.Is(err, service.ErrAlreadyCompleted):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "analysis already completed"))
	case errors.Is(err, service.ErrNotPaid), errors.Is(err, service.ErrNoPendingUpgrade):
		return ctx.Status(fiber.StatusPaymentRequired).JSON(serverutils.ErrorResponse(402, err.Error()))
	default:
		return err
	}
}
