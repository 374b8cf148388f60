package service

import (
	"context"
	"errors"
	"time"

	"careeriq-be/internal/constant"
	"careeriq-be/internal/dto"
	"careeriq-be/internal/entity"
	"careeriq-be/internal/pkg/logger"
	"careeriq-be/internal/pkg/mailer"
	"careeriq-be/internal/repository/specification"
	"careeriq-be/internal/repository/unitofwork"
	"careeriq-be/pkg/events"
	pktNats "careeriq-be/pkg/nats"
	"careeriq-be/pkg/pdfrender"

	"github.com/google/uuid"
)

var ErrReportNotReady = errors.New("report is not ready")

// PDFRenderer prints report HTML to PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type IReportService interface {
	GetProgress(ctx context.Context, sessionId uuid.UUID) (*dto.ProgressResponse, error)
	GetReport(ctx context.Context, sessionId uuid.UUID) (*dto.ReportResponse, error)
	SendReport(ctx context.Context, req *dto.SendReportRequest) (*dto.SendReportResponse, error)
}

type reportService struct {
	uowFactory     unitofwork.RepositoryFactory
	renderer       PDFRenderer
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	renderer PDFRenderer,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IReportService {
	return &reportService{
		uowFactory:     uowFactory,
		renderer:       renderer,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *reportService) GetProgress(ctx context.Context, sessionId uuid.UUID) (*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	return &dto.ProgressResponse{
		SessionId:     session.Id,
		Status:        session.Status,
		CurrentStep:   session.CurrentStep,
		Percent:       ProgressPercent(session),
		AssemblyState: session.AssemblyState,
		FailureReason: session.FailureReason,
	}, nil
}

// ProgressPercent maps pipeline position to a percentage. Steps 1 through 4
// report the work already banked, the final step holds at 80 until the
// assembled report is ready for the UI.
func ProgressPercent(session *entity.AnalysisSession) int {
	if session.Status == constant.SessionStatusCompleted && session.AssemblyState == constant.AssemblyReadyForUI {
		return 100
	}
	switch step := session.CurrentStep; {
	case step <= 0:
		return 0
	case step <= 4:
		return (step - 1) * 20
	default:
		return 80
	}
}

func (s *reportService) GetReport(ctx context.Context, sessionId uuid.UUID) (*dto.ReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Status != constant.SessionStatusCompleted || session.Report == nil {
		return nil, ErrReportNotReady
	}

	return &dto.ReportResponse{
		SessionId:        session.Id,
		Tier:             session.Tier,
		TargetRole:       session.TargetRole,
		FullName:         session.FullName,
		CurrentRole:      session.CurrentRole,
		LinkedinProvided: session.LinkedinProvided(),
		Sections:         session.Report,
		PromptVersions:   versionsFor(session.Report, constant.PromptVersions),
		SchemaVersions:   versionsFor(session.Report, constant.SchemaVersions),
		Disclaimer:       constant.ReportDisclaimer,
	}, nil
}

func (s *reportService) SendReport(ctx context.Context, req *dto.SendReportRequest) (*dto.SendReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Status != constant.SessionStatusCompleted || session.Report == nil {
		return nil, ErrReportNotReady
	}

	toEmail := req.Email
	if toEmail == "" {
		toEmail = session.Email
	}

	doc := pdfrender.ReportDoc{
		FullName:    session.FullName,
		CurrentRole: session.CurrentRole,
		TargetRole:  session.TargetRole,
		Tier:        session.Tier,
		GeneratedAt: session.UpdatedAt,
		Disclaimer:  constant.ReportDisclaimer,
	}
	html, err := pdfrender.BuildReportHTML(doc, session.Report, constant.TierSections[session.Tier])
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, err
	}

	if err := s.emailService.SendReport(toEmail, session.TargetRole, pdf); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeReportEmailed,
			Data: map[string]interface{}{
				"session_id":  session.Id.String(),
				"sent_to":     toEmail,
				"occurred_at": time.Now(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("report", "failed to publish email event", map[string]interface{}{
				"session_id": session.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	s.logger.Info("report", "report emailed", map[string]interface{}{
		"session_id": session.Id.String(),
		"sent_to":    toEmail,
	})

	return &dto.SendReportResponse{
		SessionId: session.Id,
		SentTo:    toEmail,
	}, nil
}
