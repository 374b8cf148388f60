package controller

import (
	"errors"

	"careeriq-be/internal/dto"
	"careeriq-be/internal/pkg/serverutils"
	"careeriq-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreateOrder(ctx *fiber.Ctx) error
	CreateUpgradeOrder(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	h.Post("/create-order", c.CreateOrder)
	h.Post("/upgrade-order", c.CreateUpgradeOrder)
	h.Post("/midtrans/notification", c.Webhook)
}

func (c *paymentController) CreateOrder(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.CreateOrder(ctx.Context(), &req)
	if err != nil {
		return mapPaymentError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Order created", res))
}

func (c *paymentController) CreateUpgradeOrder(ctx *fiber.Ctx) error {
	var req dto.CreateUpgradeOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.CreateUpgradeOrder(ctx.Context(), &req)
	if err != nil {
		return mapPaymentError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Upgrade order created", res))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.PaymentNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid notification body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.HandleNotification(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "invalid signature"))
		}
		return mapPaymentError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Notification processed", res))
}

func mapPaymentError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrOrderNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrUnknownTier), errors.Is(err, service.ErrTierAlreadyPaid), errors.Is(err, service.ErrTierNotUpgradeable):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	default:
		return err
	}
}
