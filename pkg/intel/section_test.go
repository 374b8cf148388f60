package intel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedAuditor returns one verdict per attempt.
type scriptedAuditor struct {
	verdicts    []*Verdict
	calls       int
	extractions []map[string]interface{}
}

func (a *scriptedAuditor) Audit(_ context.Context, _, _ string, _, extraction map[string]interface{}) (*Verdict, error) {
	idx := a.calls
	a.calls++
	a.extractions = append(a.extractions, extraction)
	if idx >= len(a.verdicts) {
		idx = len(a.verdicts) - 1
	}
	return a.verdicts[idx], nil
}

func rejection(reason string) *Verdict {
	return &Verdict{
		Approved:            false,
		RejectionReasons:    []string{reason},
		RewriteInstructions: "tighten the evidence",
	}
}

func TestGenerateApprovedFirstAttempt(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"career_verdict":"x"}`}}
	auditor := &scriptedAuditor{verdicts: []*Verdict{{Approved: true}}}
	g := NewGenerator(NewGateway(provider, nil, 0), auditor, 2)

	result, err := g.Generate(context.Background(), "diagnosis", Call{Name: "diagnosis"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Approved())
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateApprovedOnSecondAttempt(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"v":1}`, `{"v":2}`}}
	auditor := &scriptedAuditor{verdicts: []*Verdict{rejection("generic content"), {Approved: true}}}
	g := NewGenerator(NewGateway(provider, nil, 0), auditor, 2)

	result, err := g.Generate(context.Background(), "diagnosis", Call{Name: "diagnosis", UserContent: "EXTRACTION"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Approved())
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, 2, provider.calls)
	assert.Equal(t, float64(2), result.Section["v"])

	// second attempt carries the rejection feedback
	assert.Contains(t, provider.history[1], "generic content")
	assert.Contains(t, provider.history[1], "tighten the evidence")
}

func TestGenerateRetriesExhaustedReturnsLastCandidate(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"v":1}`, `{"v":2}`, `{"v":3}`}}
	auditor := &scriptedAuditor{verdicts: []*Verdict{rejection("first"), rejection("second"), rejection("third")}}
	g := NewGenerator(NewGateway(provider, nil, 0), auditor, 2)

	result, err := g.Generate(context.Background(), "risk", Call{Name: "risk"}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Approved())
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, 3, provider.calls)
	assert.Equal(t, float64(3), result.Section["v"])

	// final attempt saw every earlier rejection
	assert.Contains(t, provider.history[2], "first")
	assert.Contains(t, provider.history[2], "second")
}

func TestGeneratePassesExtractionToAuditor(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"v":1}`, `{"v":2}`}}
	auditor := &scriptedAuditor{verdicts: []*Verdict{rejection("generic"), {Approved: true}}}
	g := NewGenerator(NewGateway(provider, nil, 0), auditor, 2)

	extraction := map[string]interface{}{"identity_block": map[string]interface{}{"name": "A. Candidate"}}
	_, err := g.Generate(context.Background(), "diagnosis", Call{Name: "diagnosis"}, extraction)
	assert.NoError(t, err)

	// every audit, retries included, sees the same evidence base
	assert.Len(t, auditor.extractions, 2)
	for _, got := range auditor.extractions {
		assert.Equal(t, extraction, got)
	}
}

func TestGenerateGatewayErrorAbortsImmediately(t *testing.T) {
	provider := &scriptedProvider{errs: []error{errors.New("timeout")}}
	auditor := &scriptedAuditor{verdicts: []*Verdict{{Approved: true}}}
	g := NewGenerator(NewGateway(provider, nil, 0), auditor, 2)

	_, err := g.Generate(context.Background(), "decision", Call{Name: "decision"}, nil)
	var callErr *CallError
	assert.True(t, errors.As(err, &callErr))
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 0, auditor.calls)
}
