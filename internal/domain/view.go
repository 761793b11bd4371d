package domain

// RiskIssue is the unified projection of a risk or issue record. It is
// derived on every read and never stored. Optional numeric inputs are
// pointers so an issue (which carries no probability) is distinguishable
// from a risk with probability zero.
type RiskIssue struct {
	ID          string     `json:"id"`
	Type        RecordType `json:"type"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	DueDate     string     `json:"due_date,omitempty"` // ISO 8601, empty when absent
	Month       string     `json:"month,omitempty"`
	ProjectName string     `json:"project_name"`
	ProjectCode string     `json:"project_code,omitempty"`
	Owner       string     `json:"owner,omitempty"`

	Probability  *float64 `json:"probability,omitempty"`
	ImpactRating *float64 `json:"impact_rating,omitempty"`
	ImpactValue  *float64 `json:"impact_value,omitempty"`

	// Risk-only fields, retained verbatim.
	Description       string   `json:"description,omitempty"`
	MitigationPlan    string   `json:"mitigation_plan,omitempty"`
	ContingencyPlan   string   `json:"contingency_plan,omitempty"`
	BudgetContingency *float64 `json:"budget_contingency,omitempty"`

	// Issue-only fields, retained verbatim.
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"sub_category,omitempty"`
	Discussion  string `json:"discussion,omitempty"`
	Resolution  string `json:"resolution,omitempty"`
	Response    string `json:"response,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Priority    string `json:"priority,omitempty"`

	// Derived by the scorer; zero-valued for issues.
	RiskScore      float64    `json:"risk_score"`
	RiskLevel      RiskLevel  `json:"risk_level,omitempty"`
	EMV            float64    `json:"emv"`
	DeficitSurplus float64    `json:"deficit_surplus"`
	RiskNature     RiskNature `json:"risk_nature,omitempty"`
}

// Fields serializes the view back to a plain field map using the source
// collection's key spellings, which is both the interchange shape for the
// UI/export boundary and the reason normalization is idempotent: feeding
// the result back through the normalizer reproduces the same view.
func (v RiskIssue) Fields() map[string]any {
	m := map[string]any{
		"type":  string(v.Type),
		"title": v.Title,
	}
	put := func(k, s string) {
		if s != "" {
			m[k] = s
		}
	}
	put("month", v.Month)
	put("owner", v.Owner)
	if v.Type == TypeRisk {
		m["risk_status"] = v.Status
		put("project_code", v.ProjectCode)
		put("due_date", v.DueDate)
		put("description", v.Description)
		put("mitigation_plan", v.MitigationPlan)
		put("contingency_plan", v.ContingencyPlan)
		if v.Probability != nil {
			m["probability"] = *v.Probability
		}
		if v.ImpactRating != nil {
			m["impact_rating"] = *v.ImpactRating
		}
		if v.BudgetContingency != nil {
			m["budget_contingency"] = *v.BudgetContingency
		}
	} else {
		m["status"] = v.Status
		put("project_name", v.ProjectName)
		put("dueDate", v.DueDate)
		put("category", v.Category)
		put("sub_category", v.SubCategory)
		put("discussion", v.Discussion)
		put("resolution", v.Resolution)
		put("response", v.Response)
		put("impact", v.Impact)
		put("priority", v.Priority)
	}
	if v.ImpactValue != nil {
		m["impact_value"] = *v.ImpactValue
	}
	return m
}
