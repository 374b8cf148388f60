package intel

import (
	"context"
)

const DefaultMaxRetries = 2

// Result is the outcome of a quality-gated generation. Approved reports
// whether the final candidate passed audit; on retry exhaustion the last
// candidate is returned anyway with Approved false so the pipeline can
// degrade instead of dying.
type Result struct {
	Section  map[string]interface{}
	Verdict  *Verdict
	Attempts int
}

func (r *Result) Approved() bool {
	return r.Verdict == nil || r.Verdict.Approved
}

// Generator produces a section and re-prompts with accumulated auditor
// feedback until the section passes or retries run out.
type Generator struct {
	gateway    *Gateway
	auditor    Auditor
	maxRetries int
}

func NewGenerator(gateway *Gateway, auditor Auditor, maxRetries int) *Generator {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Generator{gateway: gateway, auditor: auditor, maxRetries: maxRetries}
}

// Generate runs up to maxRetries+1 attempts. Audit rejections consume an
// attempt and append their feedback to the next prompt; gateway errors
// abort immediately since retrying a dead transport wastes the budget.
// The extraction travels along so the auditor can weigh each candidate
// against the evidence it was generated from.
func (g *Generator) Generate(ctx context.Context, sectionName string, call Call, extraction map[string]interface{}) (*Result, error) {
	feedback := ""
	var last *Result

	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		attemptCall := call
		if feedback != "" {
			attemptCall.UserContent = call.UserContent + "\n\n" + feedback
		}

		section, err := g.gateway.Invoke(ctx, attemptCall)
		if err != nil {
			return nil, err
		}

		verdict, err := g.auditor.Audit(ctx, call.SessionID, sectionName, section, extraction)
		if err != nil {
			return nil, err
		}

		last = &Result{Section: section, Verdict: verdict, Attempts: attempt + 1}
		if verdict.Approved {
			return last, nil
		}
		feedback += verdict.Feedback()
	}

	return last, nil
}
