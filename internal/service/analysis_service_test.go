package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"careeriq-be/internal/constant"
	"careeriq-be/internal/entity"
	"careeriq-be/pkg/intel"
	"careeriq-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// scriptedProvider replays canned model responses in call order.
type scriptedProvider struct {
	responses []string
	calls     int
}

func (p *scriptedProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	idx := p.calls
	p.calls++
	if idx >= len(p.responses) {
		return "{}", nil
	}
	return p.responses[idx], nil
}

func (p *scriptedProvider) Model() string { return "test-model" }

type approveAllAuditor struct{}

func (approveAllAuditor) Audit(_ context.Context, _, _ string, _, _ map[string]interface{}) (*intel.Verdict, error) {
	return &intel.Verdict{Approved: true}, nil
}

func newTestAnalysisService(uow *fakeUow, provider *scriptedProvider) IAnalysisService {
	gateway := intel.NewGateway(provider, intel.NopCallLog{}, 0)
	generator := intel.NewGenerator(gateway, approveAllAuditor{}, intel.DefaultMaxRetries)
	return NewAnalysisService(uow, gateway, generator, &capturingPublisher{}, nil, nopLogger{}, time.Minute)
}

func paidSession(tier string) *entity.AnalysisSession {
	return &entity.AnalysisSession{
		Id:         uuid.New(),
		Email:      "candidate@example.com",
		TargetRole: "VP Product",
		ResumeText: strings.Repeat("Led product teams across three companies. ", 20),
		Status:     constant.SessionStatusPaid,
		Tier:       tier,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestRunPipelineShortResumeFailsAtStepOne(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierDiagnosis)
	session.ResumeText = "too short to analyze"
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{}
	svc := newTestAnalysisService(uow, provider)

	err := svc.RunPipeline(context.Background(), session.Id)
	assert.NoError(t, err)

	stored := uow.sessions[session.Id]
	assert.Equal(t, constant.SessionStatusFailed, stored.Status)
	assert.Equal(t, 1, stored.CurrentStep)
	assert.NotEmpty(t, stored.FailureReason)
	assert.Equal(t, 0, provider.calls)
}

func TestRunPipelineValidationRejection(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierDiagnosis)
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{responses: []string{
		`{"is_valid": false, "reason": "placeholder text, not a resume"}`,
	}}
	svc := newTestAnalysisService(uow, provider)

	err := svc.RunPipeline(context.Background(), session.Id)
	assert.NoError(t, err)

	stored := uow.sessions[session.Id]
	assert.Equal(t, constant.SessionStatusFailed, stored.Status)
	assert.Equal(t, 1, stored.CurrentStep)
	assert.Equal(t, "placeholder text, not a resume", stored.FailureReason)
	assert.Equal(t, 1, provider.calls)
}

func TestRunPipelineDiagnosisTier(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierDiagnosis)
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{responses: []string{
		`{"is_valid": true, "linkedin_provided": false}`,
		`{"identity_block": {"name": "A. Candidate"}}`,
		`{"career_verdict": "The market reads this profile as execution-led."}`,
	}}
	svc := newTestAnalysisService(uow, provider)

	err := svc.RunPipeline(context.Background(), session.Id)
	assert.NoError(t, err)
	assert.Equal(t, 3, provider.calls)

	stored := uow.sessions[session.Id]
	assert.Equal(t, constant.SessionStatusCompleted, stored.Status)
	assert.Equal(t, constant.AssemblyReadyForUI, stored.AssemblyState)
	assert.Equal(t, 5, stored.CurrentStep)
	assert.NotNil(t, stored.Extraction)
	assert.Equal(t, "A. Candidate", stored.FullName)

	assert.Len(t, stored.Report, 1)
	assert.Contains(t, stored.Report, constant.StepDiagnosis)

	assert.Len(t, uow.reports, 1)
	assert.Equal(t, constant.TierDiagnosis, uow.reports[0].Tier)
	assert.Equal(t, "v3.1", uow.reports[0].PromptVersions[constant.StepDiagnosis])
}

func TestRunPipelineFullStackGeneratesAllSections(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierFullStack)
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{responses: []string{
		`{"is_valid": true}`,
		`{"identity_block": {}}`,
		`{"career_verdict": "v"}`,
		`{"independent_risks": []}`,
		`{"identity_guardrails": []}`,
		`{"commitments": []}`,
	}}
	svc := newTestAnalysisService(uow, provider)

	err := svc.RunPipeline(context.Background(), session.Id)
	assert.NoError(t, err)
	assert.Equal(t, 6, provider.calls)

	stored := uow.sessions[session.Id]
	assert.Len(t, stored.Report, 4)
	for _, name := range constant.TierSections[constant.TierFullStack] {
		assert.Contains(t, stored.Report, name)
	}
}

func TestRunPipelineRiskTierNeverGetsTopSections(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierRisk)
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{responses: []string{
		`{"is_valid": true}`,
		`{"identity_block": {}}`,
		`{"career_verdict": "v"}`,
		`{"independent_risks": []}`,
	}}
	svc := newTestAnalysisService(uow, provider)

	err := svc.RunPipeline(context.Background(), session.Id)
	assert.NoError(t, err)
	assert.Equal(t, 4, provider.calls)

	stored := uow.sessions[session.Id]
	assert.Len(t, stored.Report, 2)
	assert.NotContains(t, stored.Report, constant.StepGuardrails)
	assert.NotContains(t, stored.Report, constant.StepDecision)
}

func TestRunPipelineCompletedSessionIsNoop(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierDiagnosis)
	session.Status = constant.SessionStatusCompleted
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{}
	svc := newTestAnalysisService(uow, provider)

	assert.NoError(t, svc.RunPipeline(context.Background(), session.Id))
	assert.Equal(t, 0, provider.calls)
}

func TestStartAnalysisGating(t *testing.T) {
	uow := newFakeUow()
	provider := &scriptedProvider{}

	created := paidSession(constant.TierDiagnosis)
	created.Status = constant.SessionStatusCreated
	created.Tier = ""
	uow.sessions[created.Id] = created

	completed := paidSession(constant.TierDiagnosis)
	completed.Status = constant.SessionStatusCompleted
	uow.sessions[completed.Id] = completed

	svc := newTestAnalysisService(uow, provider)

	assert.ErrorIs(t, svc.StartAnalysis(context.Background(), created.Id), ErrNotPaid)
	assert.ErrorIs(t, svc.StartAnalysis(context.Background(), completed.Id), ErrAlreadyCompleted)
	assert.ErrorIs(t, svc.StartAnalysis(context.Background(), uuid.New()), ErrSessionNotFound)

	paid := paidSession(constant.TierDiagnosis)
	uow.sessions[paid.Id] = paid
	assert.NoError(t, svc.StartAnalysis(context.Background(), paid.Id))
}

func TestRunUpgradeGeneratesOnlyMissingSections(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierDiagnosis)
	session.Status = constant.SessionStatusCompleted
	session.AssemblyState = constant.AssemblyReadyForUI
	session.CurrentStep = 5
	session.PendingUpgradeTier = constant.TierFullStack
	session.Extraction = map[string]interface{}{"identity_block": map[string]interface{}{}}
	session.Report = map[string]interface{}{
		constant.StepDiagnosis: map[string]interface{}{"career_verdict": "kept as-is"},
	}
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{responses: []string{
		`{"independent_risks": []}`,
		`{"identity_guardrails": []}`,
		`{"commitments": []}`,
	}}
	svc := newTestAnalysisService(uow, provider)

	err := svc.RunUpgrade(context.Background(), session.Id)
	assert.NoError(t, err)
	assert.Equal(t, 3, provider.calls)

	stored := uow.sessions[session.Id]
	assert.Equal(t, constant.TierFullStack, stored.Tier)
	assert.Empty(t, stored.PendingUpgradeTier)
	assert.Len(t, stored.Report, 4)

	// the paid-for diagnosis was not regenerated
	diagnosis := stored.Report[constant.StepDiagnosis].(map[string]interface{})
	assert.Equal(t, "kept as-is", diagnosis["career_verdict"])

	assert.Len(t, uow.reports, 1)
	assert.Equal(t, constant.TierFullStack, uow.reports[0].Tier)
}

func TestRunUpgradeWithoutPendingTierIsNoop(t *testing.T) {
	uow := newFakeUow()
	session := paidSession(constant.TierDiagnosis)
	session.Status = constant.SessionStatusCompleted
	uow.sessions[session.Id] = session

	provider := &scriptedProvider{}
	svc := newTestAnalysisService(uow, provider)

	assert.NoError(t, svc.RunUpgrade(context.Background(), session.Id))
	assert.Equal(t, 0, provider.calls)
	assert.Empty(t, uow.reports)
}
