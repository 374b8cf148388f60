package constant

// Pipeline step names, recorded on the session row and in the call audit
// trail. The order is fixed.
const (
	StepValidation = "validation"
	StepExtraction = "extraction"
	StepDiagnosis  = "diagnosis"
	StepRisk       = "risk"
	StepDecision   = "decision"
	StepGuardrails = "guardrails"

	CallQualityAudit = "quality_audit"
)

// PromptVersions pins the prompt revision stamped on every report section
// so regenerated reports stay comparable across prompt edits.
var PromptVersions = map[string]string{
	StepValidation: "v3.1",
	StepExtraction: "v3.1",
	StepDiagnosis:  "v3.1",
	StepRisk:       "v3.1",
	StepDecision:   "v3.1",
	StepGuardrails: "v3.1",

	CallQualityAudit: "v3.1",
}

// SchemaVersions pins the JSON shape each section is expected to carry.
var SchemaVersions = map[string]string{
	StepValidation: "v3.1",
	StepExtraction: "v3.1",
	StepDiagnosis:  "v3.1",
	StepRisk:       "v3.1",
	StepDecision:   "v3.1",
	StepGuardrails: "v3.1",
}

// Report tiers and pricing (INR). The upgrade price is always the exact
// difference between the target tier and the tier already paid for.
const (
	TierDiagnosis  = "diagnosis"
	TierRisk       = "risk"
	TierFullStack  = "full_stack"
	PriceDiagnosis = 499
	PriceRisk      = 2999
	PriceFullStack = 4498
)

// TierPrices maps every sellable tier to its price. Membership in this map
// is the only test for a valid tier.
var TierPrices = map[string]int64{
	TierDiagnosis: PriceDiagnosis,
	TierRisk:      PriceRisk,
	TierFullStack: PriceFullStack,
}

// TierSections lists the report sections each tier buys, in generation
// order. Guardrails come before decisions because the decision prompt
// reads the guardrails. Higher tiers are strict supersets, which is what
// makes upgrades a difference-only generation. Only the top tier unlocks
// the two final sections.
var TierSections = map[string][]string{
	TierDiagnosis: {StepDiagnosis},
	TierRisk:      {StepDiagnosis, StepRisk},
	TierFullStack: {StepDiagnosis, StepRisk, StepGuardrails, StepDecision},
}

// TierRank orders tiers for upgrade eligibility checks.
var TierRank = map[string]int{
	TierDiagnosis: 1,
	TierRisk:      2,
	TierFullStack: 3,
}

// Session lifecycle states.
const (
	SessionStatusCreated    = "created"
	SessionStatusPaid       = "paid"
	SessionStatusProcessing = "processing"
	SessionStatusCompleted  = "completed"
	SessionStatusFailed     = "failed"
)

const AssemblyReadyForUI = "ready_for_ui_finalize"

// ReportDisclaimer is appended verbatim to every rendered report.
const ReportDisclaimer = "CareerIQ analyzes how the market interprets a profile. It does not measure capability, potential, or worth. All verdicts describe perception mechanics, not the person."
