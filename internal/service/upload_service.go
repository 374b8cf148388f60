package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careeriq-be/internal/constant"
	"careeriq-be/internal/dto"
	"careeriq-be/internal/entity"
	"careeriq-be/internal/pkg/logger"
	"careeriq-be/internal/repository/specification"
	"careeriq-be/internal/repository/unitofwork"
	"careeriq-be/pkg/docparse"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// UploadedFile is one multipart upload already read into memory.
type UploadedFile struct {
	Data   []byte
	Format string
}

type IUploadService interface {
	Upload(ctx context.Context, req *dto.UploadRequest, resume *UploadedFile, linkedin *UploadedFile) (*dto.UploadResponse, error)
	GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.SessionResponse, error)
}

type uploadService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUploadService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUploadService {
	return &uploadService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *uploadService) Upload(ctx context.Context, req *dto.UploadRequest, resume *UploadedFile, linkedin *UploadedFile) (*dto.UploadResponse, error) {
	if resume == nil {
		return nil, fmt.Errorf("%w: resume file is required", docparse.ErrEmptyDocument)
	}

	resumeText, err := docparse.ExtractText(resume.Data, resume.Format)
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}

	linkedinText := ""
	if linkedin != nil {
		linkedinText, err = docparse.ExtractText(linkedin.Data, linkedin.Format)
		if err != nil {
			return nil, fmt.Errorf("linkedin extraction failed: %w", err)
		}
	}

	session := &entity.AnalysisSession{
		Id:           uuid.New(),
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		TargetRole:   req.TargetRole,
		ResumeText:   resumeText,
		LinkedinText: linkedinText,
		Status:       constant.SessionStatusCreated,
		CurrentStep:  0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("upload", "session created", map[string]interface{}{
		"session_id":        session.Id.String(),
		"target_role":       session.TargetRole,
		"linkedin_provided": session.LinkedinProvided(),
	})

	return &dto.UploadResponse{
		SessionId:        session.Id,
		LinkedinProvided: session.LinkedinProvided(),
	}, nil
}

func (s *uploadService) GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	return &dto.SessionResponse{
		SessionId:          session.Id,
		Status:             session.Status,
		Tier:               session.Tier,
		PendingUpgradeTier: session.PendingUpgradeTier,
		CurrentStep:        session.CurrentStep,
		AssemblyState:      session.AssemblyState,
		FailureReason:      session.FailureReason,
		TargetRole:         session.TargetRole,
		FullName:           session.FullName,
		CurrentRole:        session.CurrentRole,
		LinkedinProvided:   session.LinkedinProvided(),
		CreatedAt:          session.CreatedAt,
		UpdatedAt:          session.UpdatedAt,
	}, nil
}
