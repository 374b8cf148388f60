package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func risk(category string) map[string]interface{} {
	return map[string]interface{}{
		"risk_category": category,
		"risk_name":     "some risk",
	}
}

func conflict() map[string]interface{} {
	return map[string]interface{}{"conflict_id": 1}
}

func TestValidateRiskSection(t *testing.T) {
	tests := []struct {
		name       string
		section    map[string]interface{}
		violations int
	}{
		{
			name: "valid section",
			section: map[string]interface{}{
				"independent_risks": []interface{}{
					risk("title_misalignment"), risk("ownership_signal"),
					risk("seniority_compression"), risk("market_fit"),
				},
				"signal_conflicts": []interface{}{conflict(), conflict()},
			},
			violations: 0,
		},
		{
			name: "too few risks",
			section: map[string]interface{}{
				"independent_risks": []interface{}{risk("title_misalignment"), risk("market_fit")},
				"signal_conflicts":  []interface{}{conflict(), conflict()},
			},
			violations: 1,
		},
		{
			name: "risks collapse onto two categories",
			section: map[string]interface{}{
				"independent_risks": []interface{}{
					risk("title_misalignment"), risk("title_misalignment"),
					risk("ownership_signal"), risk("ownership_signal"),
				},
				"signal_conflicts": []interface{}{conflict(), conflict()},
			},
			violations: 1,
		},
		{
			name: "missing conflicts",
			section: map[string]interface{}{
				"independent_risks": []interface{}{
					risk("title_misalignment"), risk("ownership_signal"),
					risk("seniority_compression"), risk("market_fit"),
				},
				"signal_conflicts": []interface{}{conflict()},
			},
			violations: 1,
		},
		{
			name:       "empty section",
			section:    map[string]interface{}{},
			violations: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidateRiskSection(tt.section), tt.violations)
		})
	}
}

func commitment() map[string]interface{} {
	return map[string]interface{}{
		"commitment_title": "Pick a lane",
		"option_a":         map[string]interface{}{"choice": "A"},
		"option_b":         map[string]interface{}{"choice": "B"},
		"market_default":   map[string]interface{}{"description": "drift"},
	}
}

func TestValidateDecisionSection(t *testing.T) {
	valid := map[string]interface{}{
		"commitments": []interface{}{commitment(), commitment(), commitment()},
	}
	assert.Empty(t, ValidateDecisionSection(valid))

	twoOnly := map[string]interface{}{
		"commitments": []interface{}{commitment(), commitment()},
	}
	assert.Len(t, ValidateDecisionSection(twoOnly), 1)

	four := map[string]interface{}{
		"commitments": []interface{}{commitment(), commitment(), commitment(), commitment()},
	}
	assert.Len(t, ValidateDecisionSection(four), 1)

	missingDefault := commitment()
	delete(missingDefault, "market_default")
	incomplete := map[string]interface{}{
		"commitments": []interface{}{commitment(), commitment(), missingDefault},
	}
	violations := ValidateDecisionSection(incomplete)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "market_default")
}

func TestScanBannedPhrases(t *testing.T) {
	clean := map[string]interface{}{
		"verdict": "The market reads this profile as execution-led.",
		"nested":  map[string]interface{}{"note": "Shoulders the delivery burden."},
	}
	assert.Empty(t, ScanBannedPhrases(clean))

	dirty := map[string]interface{}{
		"verdict": "You should try to reframe the headline.",
		"items":   []interface{}{"We recommend a stronger title."},
	}
	hits := ScanBannedPhrases(dirty)
	assert.NotEmpty(t, hits)
	joined := ""
	for _, h := range hits {
		joined += h + ";"
	}
	assert.Contains(t, joined, "should")
	assert.Contains(t, joined, "try to")
	assert.Contains(t, joined, "recommend")
}
