package intel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRiskSection() map[string]interface{} {
	return map[string]interface{}{
		"independent_risks": []interface{}{
			risk("title_misalignment"), risk("ownership_signal"),
			risk("seniority_compression"), risk("market_fit"),
		},
		"signal_conflicts": []interface{}{conflict(), conflict()},
	}
}

func TestAuditStructuralRejectionSkipsModel(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"approved": true}`}}
	a := NewQualityAuditor(NewGateway(provider, nil, 0), "audit prompt", "v3.1")

	verdict, err := a.Audit(context.Background(), "s1", "risk", map[string]interface{}{
		"independent_risks": []interface{}{risk("market_fit")},
	}, nil)
	assert.NoError(t, err)
	assert.False(t, verdict.Approved)
	assert.NotEmpty(t, verdict.SpecificViolations)
	assert.Equal(t, 0, provider.calls)
}

func TestAuditEscalatesToModelWhenStructurePasses(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`{"approved": false, "rejection_reasons": ["generic content"], "specific_violations": ["applies to anyone"], "rewrite_instructions": "anchor in profile evidence"}`,
	}}
	a := NewQualityAuditor(NewGateway(provider, nil, 0), "audit prompt", "v3.1")

	verdict, err := a.Audit(context.Background(), "s1", "risk", validRiskSection(), nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.False(t, verdict.Approved)
	assert.Equal(t, []string{"generic content"}, verdict.RejectionReasons)
	assert.Equal(t, "anchor in profile evidence", verdict.RewriteInstructions)
}

func TestAuditApproval(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"approved": true, "rejection_reasons": null}`}}
	a := NewQualityAuditor(NewGateway(provider, nil, 0), "audit prompt", "v3.1")

	verdict, err := a.Audit(context.Background(), "s1", "diagnosis", map[string]interface{}{
		"career_verdict": "The market reads this as execution-led.",
	}, nil)
	assert.NoError(t, err)
	assert.True(t, verdict.Approved)
	assert.Empty(t, verdict.RejectionReasons)
}

func TestAuditFeedsExtractionToModel(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"approved": true}`}}
	a := NewQualityAuditor(NewGateway(provider, nil, 0), "audit prompt", "v3.1")

	extraction := map[string]interface{}{
		"identity_block": map[string]interface{}{"name": "A. Candidate"},
	}
	_, err := a.Audit(context.Background(), "s1", "diagnosis", map[string]interface{}{
		"career_verdict": "Anchored in the profile evidence.",
	}, extraction)
	assert.NoError(t, err)

	assert.Contains(t, provider.history[0], "EXTRACTION DATA AVAILABLE")
	assert.Contains(t, provider.history[0], "A. Candidate")
}
