package pdfrender

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildReportHTML(t *testing.T) {
	doc := ReportDoc{
		TargetRole:  "VP Product",
		Tier:        "full_stack",
		GeneratedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Disclaimer:  "Perception mechanics only.",
	}
	sections := map[string]interface{}{
		"diagnosis": map[string]interface{}{
			"career_verdict": "Read as execution-led.",
		},
		"risk": map[string]interface{}{
			"independent_risks": []interface{}{
				map[string]interface{}{"risk_name": "Title drift"},
			},
		},
	}

	html, err := BuildReportHTML(doc, sections, []string{"diagnosis", "risk"})
	assert.NoError(t, err)

	assert.Contains(t, html, "VP Product")
	assert.Contains(t, html, "Perception mechanics only.")
	assert.Contains(t, html, "Read as execution-led.")
	assert.Contains(t, html, "Title drift")

	// section order follows the requested order
	assert.Less(t, strings.Index(html, "Diagnosis"), strings.Index(html, "Risk"))
	// field keys are presented titleized
	assert.Contains(t, html, "Career Verdict")
}

func TestBuildReportHTMLSkipsMissingSections(t *testing.T) {
	html, err := BuildReportHTML(ReportDoc{TargetRole: "CTO", Tier: "diagnosis", GeneratedAt: time.Now()}, map[string]interface{}{
		"diagnosis": map[string]interface{}{"career_verdict": "v"},
	}, []string{"diagnosis", "risk", "decision"})
	assert.NoError(t, err)
	assert.Contains(t, html, "Diagnosis")
	assert.NotContains(t, html, "<h2>Risk</h2>")
}

func TestRenderValueEscapesHTML(t *testing.T) {
	out := renderValue(map[string]interface{}{
		"note": "<script>alert(1)</script>",
	})
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
