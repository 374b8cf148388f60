package events

// Event type codes emitted by the analysis backend. Consumers subscribe on
// events.<type>.
const (
	TypePaymentConfirmed = "PAYMENT_CONFIRMED"
	TypeAnalysisStarted  = "ANALYSIS_STARTED"
	TypeReportCompleted  = "REPORT_COMPLETED"
	TypeReportFailed     = "REPORT_FAILED"
	TypeReportUpgraded   = "REPORT_UPGRADED"
	TypeReportEmailed    = "REPORT_EMAILED"
)
