package controller

import (
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"

	"careeriq-be/internal/dto"
	"careeriq-be/internal/pkg/serverutils"
	"careeriq-be/internal/service"
	"careeriq-be/pkg/docparse"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.IUploadService
}

func NewSessionController(service service.IUploadService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
	r.Get("/session/:id", c.GetSession)
}

func (c *sessionController) Upload(ctx *fiber.Ctx) error {
	req := &dto.UploadRequest{
		Email:        ctx.FormValue("email"),
		MobileNumber: ctx.FormValue("mobile_number"),
		TargetRole:   ctx.FormValue("target_role"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	resume, err := readUpload(ctx, "resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "resume file is required"))
	}

	linkedin, err := readUpload(ctx, "linkedin")
	if err != nil {
		linkedin = nil // optional upload
	}

	res, err := c.service.Upload(ctx.Context(), req, resume, linkedin)
	if err != nil {
		if errors.Is(err, docparse.ErrUnsupportedFormat) || errors.Is(err, docparse.ErrEmptyDocument) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *sessionController) GetSession(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	res, err := c.service.GetSession(ctx.Context(), sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "session not found"))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session", res))
}

func readUpload(ctx *fiber.Ctx, field string) (*service.UploadedFile, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, err
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, err
	}
	return &service.UploadedFile{
		Data:   data,
		Format: filepath.Ext(fileHeader.Filename),
	}, nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
