package intel

import (
	"fmt"
	"regexp"
	"strings"
)

// Advice vocabulary the product bans outright. Matched on word boundaries
// so "shoulder" or "tryout" do not trip the scan.
var bannedPhrases = []string{
	"should",
	"consider",
	"try to",
	"might want",
	"could",
	"recommend",
}

var bannedPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(bannedPhrases))
	for _, p := range bannedPhrases {
		out = append(out, regexp.MustCompile(`(?i)\b`+strings.ReplaceAll(regexp.QuoteMeta(p), ` `, `\s+`)+`\b`))
	}
	return out
}()

// ScanBannedPhrases walks every string value in the section and reports
// each banned phrase found, once per phrase.
func ScanBannedPhrases(section map[string]interface{}) []string {
	var text strings.Builder
	collectStrings(section, &text)
	body := text.String()

	var hits []string
	for i, pat := range bannedPatterns {
		if pat.MatchString(body) {
			hits = append(hits, fmt.Sprintf("contains banned phrase %q", bannedPhrases[i]))
		}
	}
	return hits
}

func collectStrings(v interface{}, sb *strings.Builder) {
	switch val := v.(type) {
	case string:
		sb.WriteString(val)
		sb.WriteString("\n")
	case map[string]interface{}:
		for _, child := range val {
			collectStrings(child, sb)
		}
	case []interface{}:
		for _, child := range val {
			collectStrings(child, sb)
		}
	}
}

// ValidateRiskSection enforces the floor the risk layer must clear before
// the model auditor even sees it: at least four independent risks drawn
// from at least three distinct categories, plus at least two signal
// conflicts.
func ValidateRiskSection(section map[string]interface{}) []string {
	var violations []string

	risks, _ := section["independent_risks"].([]interface{})
	if len(risks) < 4 {
		violations = append(violations, fmt.Sprintf("only %d independent risks, minimum is 4", len(risks)))
	}

	categories := map[string]struct{}{}
	for _, r := range risks {
		risk, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		if cat, ok := risk["risk_category"].(string); ok && cat != "" {
			categories[cat] = struct{}{}
		}
	}
	if len(risks) >= 4 && len(categories) < 3 {
		violations = append(violations, fmt.Sprintf("risks span only %d categories, minimum is 3", len(categories)))
	}

	conflicts, _ := section["signal_conflicts"].([]interface{})
	if len(conflicts) < 2 {
		violations = append(violations, fmt.Sprintf("only %d signal conflicts, minimum is 2", len(conflicts)))
	}

	return violations
}

// ValidateDecisionSection checks the commitment architecture: exactly three
// commitments, each carrying both options and a market default.
func ValidateDecisionSection(section map[string]interface{}) []string {
	var violations []string

	commitments, _ := section["commitments"].([]interface{})
	if len(commitments) != 3 {
		violations = append(violations, fmt.Sprintf("%d commitments, exactly 3 required", len(commitments)))
	}

	for i, c := range commitments {
		commitment, ok := c.(map[string]interface{})
		if !ok {
			violations = append(violations, fmt.Sprintf("commitment %d is not an object", i+1))
			continue
		}
		for _, field := range []string{"option_a", "option_b", "market_default"} {
			if child, ok := commitment[field].(map[string]interface{}); !ok || len(child) == 0 {
				violations = append(violations, fmt.Sprintf("commitment %d is missing %s", i+1, field))
			}
		}
	}

	return violations
}
