package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"careeriq-be/internal/constant"
	"careeriq-be/internal/dto"
	"careeriq-be/internal/entity"
	"careeriq-be/internal/pkg/logger"
	"careeriq-be/internal/repository/specification"
	"careeriq-be/internal/repository/unitofwork"
	"careeriq-be/pkg/events"
	"careeriq-be/pkg/intel"
	pktNats "careeriq-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrNotPaid            = errors.New("session has no settled payment")
	ErrAlreadyCompleted   = errors.New("analysis already completed")
	ErrNoPendingUpgrade   = errors.New("session has no pending upgrade")
)

// Resumes under this length fail validation locally, before any model call.
const minResumeChars = 300

const defaultPipelineTimeout = 20 * time.Minute

// sectionStep maps a report section to the pipeline step that produces it.
// Decision and guardrails share the final step.
var sectionStep = map[string]int{
	constant.StepDiagnosis:  3,
	constant.StepRisk:       4,
	constant.StepDecision:   5,
	constant.StepGuardrails: 5,
}

type IAnalysisService interface {
	StartAnalysis(ctx context.Context, sessionId uuid.UUID) error
	StartUpgrade(ctx context.Context, sessionId uuid.UUID) error
	RunPipeline(ctx context.Context, sessionId uuid.UUID) error
	RunUpgrade(ctx context.Context, sessionId uuid.UUID) error
}

type analysisService struct {
	uowFactory      unitofwork.RepositoryFactory
	gateway         *intel.Gateway
	generator       *intel.Generator
	publisher       IPublisherService
	eventPublisher  *pktNats.Publisher
	claims          *cache.Cache
	logger          logger.ILogger
	pipelineTimeout time.Duration
}

func NewAnalysisService(
	uowFactory unitofwork.RepositoryFactory,
	gateway *intel.Gateway,
	generator *intel.Generator,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	pipelineTimeout time.Duration,
) IAnalysisService {
	if pipelineTimeout <= 0 {
		pipelineTimeout = defaultPipelineTimeout
	}
	return &analysisService{
		uowFactory:      uowFactory,
		gateway:         gateway,
		generator:       generator,
		publisher:       publisher,
		eventPublisher:  eventPublisher,
		claims:          cache.New(pipelineTimeout, 10*time.Minute),
		logger:          log,
		pipelineTimeout: pipelineTimeout,
	}
}

func (s *analysisService) StartAnalysis(ctx context.Context, sessionId uuid.UUID) error {
	if _, running := s.claims.Get(sessionId.String()); running {
		return ErrAnalysisInProgress
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	switch session.Status {
	case constant.SessionStatusCompleted:
		return ErrAlreadyCompleted
	case constant.SessionStatusProcessing:
		return ErrAnalysisInProgress
	case constant.SessionStatusPaid, constant.SessionStatusFailed:
		// failed sessions may be re-run, the tier is already paid for
	default:
		return ErrNotPaid
	}

	return s.publisher.PublishAnalysisJob(ctx, &dto.AnalysisJobMessage{
		SessionId: sessionId,
		Kind:      dto.JobKindInitial,
	})
}

func (s *analysisService) StartUpgrade(ctx context.Context, sessionId uuid.UUID) error {
	if _, running := s.claims.Get(sessionId.String()); running {
		return ErrAnalysisInProgress
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.PendingUpgradeTier == "" {
		return ErrNoPendingUpgrade
	}

	return s.publisher.PublishAnalysisJob(ctx, &dto.AnalysisJobMessage{
		SessionId: sessionId,
		Kind:      dto.JobKindUpgrade,
	})
}

// RunPipeline executes the five pipeline steps for a paid session. The
// claim cache guarantees one run per session at a time even when the job
// message is redelivered.
func (s *analysisService) RunPipeline(ctx context.Context, sessionId uuid.UUID) error {
	key := sessionId.String()
	if err := s.claims.Add(key, true, s.pipelineTimeout); err != nil {
		s.logger.Warn("analysis", "pipeline run skipped, session already claimed", map[string]interface{}{
			"session_id": key,
		})
		return nil
	}
	defer s.claims.Delete(key)

	ctx, cancel := context.WithTimeout(ctx, s.pipelineTimeout)
	defer cancel()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.Status == constant.SessionStatusCompleted {
		return nil
	}
	if session.Tier == "" {
		return ErrNotPaid
	}

	s.emit(ctx, events.TypeAnalysisStarted, map[string]interface{}{
		"session_id": key,
		"tier":       session.Tier,
	})

	// Step 1: validation
	if err := s.advance(ctx, uow, session, 1, constant.SessionStatusProcessing); err != nil {
		return err
	}
	if len(session.ResumeText) < minResumeChars {
		return s.fail(ctx, uow, session, "resume below minimum extractable length")
	}
	validation, err := s.gateway.Invoke(ctx, intel.Call{
		Name:          constant.StepValidation,
		SessionID:     key,
		SystemPrompt:  constant.InputValidationPrompt,
		UserContent:   profileContent(session),
		PromptVersion: constant.PromptVersions[constant.StepValidation],
	})
	if err != nil {
		return s.fail(ctx, uow, session, fmt.Sprintf("validation call failed: %v", err))
	}
	if valid, _ := validation["is_valid"].(bool); !valid {
		reason, _ := validation["reason"].(string)
		if reason == "" {
			reason = "input rejected by validation"
		}
		return s.fail(ctx, uow, session, reason)
	}

	// Step 2: extraction
	if err := s.advance(ctx, uow, session, 2, constant.SessionStatusProcessing); err != nil {
		return err
	}
	extraction, err := s.gateway.Invoke(ctx, intel.Call{
		Name:          constant.StepExtraction,
		SessionID:     key,
		SystemPrompt:  constant.SignalExtractionPrompt,
		UserContent:   profileContent(session),
		PromptVersion: constant.PromptVersions[constant.StepExtraction],
	})
	if err != nil {
		return s.fail(ctx, uow, session, fmt.Sprintf("extraction call failed: %v", err))
	}
	session.Extraction = extraction
	if identity, ok := extraction["identity_block"].(map[string]interface{}); ok {
		session.FullName, _ = identity["name"].(string)
		session.CurrentRole, _ = identity["current_role"].(string)
	}
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	// Steps 3-5: tier-gated section generation
	sections := map[string]interface{}{}
	if err := s.generateSections(ctx, uow, session, sections, constant.TierSections[session.Tier]); err != nil {
		return err
	}

	return s.assemble(ctx, uow, session, sections, events.TypeReportCompleted)
}

// RunUpgrade regenerates nothing the buyer already has. Only sections the
// new tier adds are produced, on top of the stored extraction.
func (s *analysisService) RunUpgrade(ctx context.Context, sessionId uuid.UUID) error {
	key := sessionId.String()
	if err := s.claims.Add(key, true, s.pipelineTimeout); err != nil {
		s.logger.Warn("analysis", "upgrade run skipped, session already claimed", map[string]interface{}{
			"session_id": key,
		})
		return nil
	}
	defer s.claims.Delete(key)

	ctx, cancel := context.WithTimeout(ctx, s.pipelineTimeout)
	defer cancel()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.PendingUpgradeTier == "" {
		// Upgrade already applied. Redelivered jobs land here.
		return nil
	}
	if session.Extraction == nil {
		return s.fail(ctx, uow, session, "upgrade requires a completed extraction")
	}

	target := session.PendingUpgradeTier
	sections := map[string]interface{}{}
	for name, content := range session.Report {
		sections[name] = content
	}

	var missing []string
	for _, name := range constant.TierSections[target] {
		if _, have := sections[name]; !have {
			missing = append(missing, name)
		}
	}

	if err := s.generateSections(ctx, uow, session, sections, missing); err != nil {
		return err
	}

	session.Tier = target
	session.PendingUpgradeTier = ""
	if err := s.assemble(ctx, uow, session, sections, events.TypeReportUpgraded); err != nil {
		return err
	}
	return nil
}

func (s *analysisService) generateSections(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.AnalysisSession, sections map[string]interface{}, wanted []string) error {
	key := session.Id.String()
	for _, name := range wanted {
		if err := s.advance(ctx, uow, session, sectionStep[name], constant.SessionStatusProcessing); err != nil {
			return err
		}

		result, err := s.generator.Generate(ctx, name, intel.Call{
			Name:          name,
			SessionID:     key,
			SystemPrompt:  sectionPrompt(name),
			UserContent:   sectionContent(name, session, sections),
			PromptVersion: constant.PromptVersions[name],
		}, session.Extraction)
		if err != nil {
			return s.fail(ctx, uow, session, fmt.Sprintf("%s generation failed: %v", name, err))
		}
		if !result.Approved() {
			s.logger.Warn("analysis", "section served after audit retries exhausted", map[string]interface{}{
				"session_id": key,
				"section":    name,
				"attempts":   result.Attempts,
				"reasons":    result.Verdict.RejectionReasons,
			})
		}
		sections[name] = result.Section
	}
	return nil
}

func (s *analysisService) assemble(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.AnalysisSession, sections map[string]interface{}, eventType string) error {
	session.Report = sections
	session.CurrentStep = 5
	session.Status = constant.SessionStatusCompleted
	session.AssemblyState = constant.AssemblyReadyForUI
	session.FailureReason = ""
	session.UpdatedAt = time.Now()
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	snapshot := &entity.Report{
		Id:             uuid.New(),
		SessionId:      session.Id,
		Tier:           session.Tier,
		Sections:       sections,
		PromptVersions: versionsFor(sections, constant.PromptVersions),
		SchemaVersions: versionsFor(sections, constant.SchemaVersions),
		CreatedAt:      time.Now(),
	}
	if err := uow.ReportRepository().Create(ctx, snapshot); err != nil {
		return err
	}

	s.emit(ctx, eventType, map[string]interface{}{
		"session_id": session.Id.String(),
		"tier":       session.Tier,
		"report_id":  snapshot.Id.String(),
	})

	s.logger.Info("analysis", "report assembled", map[string]interface{}{
		"session_id": session.Id.String(),
		"tier":       session.Tier,
		"sections":   len(sections),
	})
	return nil
}

func (s *analysisService) advance(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.AnalysisSession, step int, status string) error {
	session.CurrentStep = step
	session.Status = status
	session.UpdatedAt = time.Now()
	return uow.SessionRepository().Update(ctx, session)
}

func (s *analysisService) fail(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.AnalysisSession, reason string) error {
	session.Status = constant.SessionStatusFailed
	session.FailureReason = reason
	session.UpdatedAt = time.Now()
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	s.emit(ctx, events.TypeReportFailed, map[string]interface{}{
		"session_id": session.Id.String(),
		"step":       session.CurrentStep,
		"reason":     reason,
	})

	s.logger.Error("analysis", "pipeline failed", map[string]interface{}{
		"session_id": session.Id.String(),
		"step":       session.CurrentStep,
		"reason":     reason,
	})
	return nil
}

func (s *analysisService) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("analysis", "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func profileContent(session *entity.AnalysisSession) string {
	linkedin := session.LinkedinText
	if linkedin == "" {
		linkedin = "NOT PROVIDED"
	}
	return fmt.Sprintf("TARGET ROLE: %s\n\nRESUME:\n%s\n\nLINKEDIN PROFILE:\n%s", session.TargetRole, session.ResumeText, linkedin)
}

func sectionPrompt(name string) string {
	switch name {
	case constant.StepDiagnosis:
		return constant.DiagnosisPrompt
	case constant.StepRisk:
		return constant.RiskPrompt
	case constant.StepDecision:
		return constant.DecisionIntelligencePrompt
	case constant.StepGuardrails:
		return constant.ExecutionGuardrailsPrompt
	}
	return ""
}

// sectionContent builds the user payload for one section. Each section
// sees the extraction plus every upstream section its prompt reads:
// risk reads the diagnosis, guardrails read diagnosis and risk, and the
// decision section reads all three.
func sectionContent(name string, session *entity.AnalysisSession, sections map[string]interface{}) string {
	extractionJSON, _ := json.Marshal(session.Extraction)
	content := fmt.Sprintf("CANDIDATE NAME: %s\nCURRENT ROLE: %s\nTARGET ROLE: %s\n\nEXTRACTION JSON:\n%s",
		session.FullName, session.CurrentRole, session.TargetRole, extractionJSON)

	appendSection := func(label, key string) {
		if section, ok := sections[key]; ok {
			sectionJSON, _ := json.Marshal(section)
			content += fmt.Sprintf("\n\n%s:\n%s", label, sectionJSON)
		}
	}

	switch name {
	case constant.StepRisk:
		appendSection("DIAGNOSIS JSON", constant.StepDiagnosis)
	case constant.StepGuardrails:
		appendSection("DIAGNOSIS JSON", constant.StepDiagnosis)
		appendSection("RISK ANALYSIS JSON", constant.StepRisk)
	case constant.StepDecision:
		appendSection("DIAGNOSIS JSON", constant.StepDiagnosis)
		appendSection("RISK ANALYSIS JSON", constant.StepRisk)
		appendSection("EXECUTION GUARDRAILS JSON", constant.StepGuardrails)
	}
	return content
}

func versionsFor(sections map[string]interface{}, versions map[string]string) map[string]string {
	out := make(map[string]string, len(sections))
	for name := range sections {
		if v, ok := versions[name]; ok {
			out[name] = v
		}
	}
	return out
}
