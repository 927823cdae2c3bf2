package models

// Persona identifies one of the three fixed focus-group evaluators.
type Persona string

const (
	PersonaEngineer     Persona = "engineer"
	PersonaTrendAnalyst Persona = "trend-analyst"
	PersonaBudgetKeeper Persona = "budget-keeper"
)

// The status enumerations are a fixed machine vocabulary. The output language
// only affects the free-text fields, never these values.
type (
	EngineerStatus string
	TrendStatus    string
	BudgetStatus   string
)

const (
	StatusPass EngineerStatus = "PASS"
	StatusFail EngineerStatus = "FAIL"

	StatusCop  TrendStatus = "COP"
	StatusDrop TrendStatus = "DROP"

	StatusTrust BudgetStatus = "TRUST"
	// StatusNoTrust is a two-word wire value carried over from the stored history format.
	StatusNoTrust BudgetStatus = "NO TRUST"
)

// EngineerVerdict is the skeptical senior engineer's take.
//
// The JSON field names are the wire format shared with the generation call
// and the persisted case history.
type EngineerVerdict struct {
	Thought string         `json:"thought"`
	Verdict string         `json:"verdict"`
	Status  EngineerStatus `json:"status"`
}

// TrendVerdict is the trend analyst's take.
type TrendVerdict struct {
	Vibe    string      `json:"vibe"`
	Verdict string      `json:"verdict"`
	Status  TrendStatus `json:"status"`
}

// BudgetVerdict is the budget keeper's take.
type BudgetVerdict struct {
	Concerns string       `json:"concerns"`
	Verdict  string       `json:"verdict"`
	Status   BudgetStatus `json:"status"`
}

// AnalysisResult is one structured verdict from the synthetic focus group.
type AnalysisResult struct {
	CaseTitle    string          `json:"case_title"`
	Engineer     EngineerVerdict `json:"cto"`
	TrendAnalyst TrendVerdict    `json:"genZ"`
	BudgetKeeper BudgetVerdict   `json:"mom"`
}
