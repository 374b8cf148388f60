package intel

import (
	"context"
	"encoding/json"
	"fmt"
)

// Verdict is the auditor's ruling on one generated section. A rejected
// verdict carries everything the generator needs to build retry feedback.
type Verdict struct {
	Approved            bool
	RejectionReasons    []string
	SpecificViolations  []string
	RewriteInstructions string
}

// Feedback flattens the verdict into a rewrite instruction block appended
// to the next generation attempt.
func (v *Verdict) Feedback() string {
	out := "PREVIOUS ATTEMPT REJECTED.\n"
	for _, r := range v.RejectionReasons {
		out += "- " + r + "\n"
	}
	for _, s := range v.SpecificViolations {
		out += "- violation: " + s + "\n"
	}
	if v.RewriteInstructions != "" {
		out += "Rewrite instructions: " + v.RewriteInstructions + "\n"
	}
	return out
}

// Auditor rules on generated sections. The extraction gives the model
// auditor the evidence base to judge fabricated or generic content against;
// it may be nil when no extraction exists yet.
type Auditor interface {
	Audit(ctx context.Context, sessionID, sectionName string, section, extraction map[string]interface{}) (*Verdict, error)
}

// StructuralCheck is a deterministic precheck run before the model auditor.
type StructuralCheck func(section map[string]interface{}) []string

// QualityAuditor runs deterministic structural checks first and only
// escalates to the model auditor when those pass. Structural rejections
// cost no model call and cannot be argued with.
type QualityAuditor struct {
	gateway       *Gateway
	auditorPrompt string
	promptVersion string
	checks        map[string][]StructuralCheck
}

func NewQualityAuditor(gateway *Gateway, auditorPrompt, promptVersion string) *QualityAuditor {
	banned := func(section map[string]interface{}) []string {
		return ScanBannedPhrases(section)
	}
	return &QualityAuditor{
		gateway:       gateway,
		auditorPrompt: auditorPrompt,
		promptVersion: promptVersion,
		checks: map[string][]StructuralCheck{
			"diagnosis":  {banned},
			"risk":       {ValidateRiskSection, banned},
			"decision":   {ValidateDecisionSection, banned},
			"guardrails": {banned},
		},
	}
}

func (a *QualityAuditor) Audit(ctx context.Context, sessionID, sectionName string, section, extraction map[string]interface{}) (*Verdict, error) {
	var violations []string
	for _, check := range a.checks[sectionName] {
		violations = append(violations, check(section)...)
	}
	if len(violations) > 0 {
		return &Verdict{
			Approved:            false,
			RejectionReasons:    []string{"structural validation failed"},
			SpecificViolations:  violations,
			RewriteInstructions: "Fix every listed structural violation while keeping all profile-specific evidence.",
		}, nil
	}

	sectionJSON, err := json.Marshal(section)
	if err != nil {
		return nil, fmt.Errorf("marshal section for audit: %w", err)
	}

	content := fmt.Sprintf("SECTION NAME: %s\n\nSECTION CONTENT:\n%s", sectionName, sectionJSON)
	if extraction != nil {
		extractionJSON, err := json.Marshal(extraction)
		if err != nil {
			return nil, fmt.Errorf("marshal extraction for audit: %w", err)
		}
		content += fmt.Sprintf("\n\nEXTRACTION DATA AVAILABLE:\n%s", extractionJSON)
	}

	payload, err := a.gateway.Invoke(ctx, Call{
		Name:          "quality_audit_" + sectionName,
		SessionID:     sessionID,
		SystemPrompt:  a.auditorPrompt,
		UserContent:   content,
		PromptVersion: a.promptVersion,
	})
	if err != nil {
		return nil, err
	}

	verdict := &Verdict{}
	verdict.Approved, _ = payload["approved"].(bool)
	verdict.RejectionReasons = stringSlice(payload["rejection_reasons"])
	verdict.SpecificViolations = stringSlice(payload["specific_violations"])
	verdict.RewriteInstructions, _ = payload["rewrite_instructions"].(string)
	return verdict, nil
}

func stringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
