package domain

// Core domain models. Raw documents live in the store as loose field maps;
// RiskRecord and IssueRecord are the strict shapes writes are validated
// against. The two collections have divergent field names and status
// vocabularies; that asymmetry is part of the stored data and is preserved
// here rather than papered over.

// RecordType discriminates the two record variants.
type RecordType string

const (
	TypeRisk  RecordType = "risk"
	TypeIssue RecordType = "issue"
)

// Collection names in the document store.
const (
	CollectionRisks    = "risks"
	CollectionIssues   = "issues"
	CollectionProducts = "products"
)

// CollectionFor returns the store collection holding records of the given type.
func CollectionFor(t RecordType) string {
	if t == TypeIssue {
		return CollectionIssues
	}
	return CollectionRisks
}

// Document is one stored record: a key plus arbitrary fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// RiskStatus is the risk-side status vocabulary.
type RiskStatus string

const (
	RiskOpen        RiskStatus = "Open"
	RiskClosed      RiskStatus = "Closed"
	RiskMitigated   RiskStatus = "Mitigated"
	RiskTransferred RiskStatus = "Transferred"
)

// RiskStatuses lists the valid risk statuses in display order.
func RiskStatuses() []string {
	return []string{string(RiskOpen), string(RiskClosed), string(RiskMitigated), string(RiskTransferred)}
}

// IssueStatus is the issue-side status vocabulary. It is a different enum
// from RiskStatus and the two must not be conflated when building filters.
type IssueStatus string

const (
	IssueOpen      IssueStatus = "Open"
	IssueResolved  IssueStatus = "Resolved"
	IssueEscalated IssueStatus = "Escalated"
	IssueClosed    IssueStatus = "Closed"
)

// IssueStatuses lists the valid issue statuses in display order.
func IssueStatuses() []string {
	return []string{string(IssueOpen), string(IssueResolved), string(IssueEscalated), string(IssueClosed)}
}

type IssueCategory string

const (
	CategoryTechnical   IssueCategory = "Technical"
	CategoryContractual IssueCategory = "Contractual"
	CategoryResource    IssueCategory = "Resource"
	CategorySchedule    IssueCategory = "Schedule"
)

type RiskLevel string

const (
	LevelLow      RiskLevel = "Low"
	LevelMedium   RiskLevel = "Medium"
	LevelHigh     RiskLevel = "High"
	LevelCritical RiskLevel = "Critical"
)

type RiskNature string

const (
	NatureFinancial    RiskNature = "Financial"
	NatureNonFinancial RiskNature = "Non-Financial"
)

// Product is read-mostly reference data joined against both collections.
// Code is the join key from the risk side, Name from the issue side.
type Product struct {
	ID            string  `json:"id"`
	Code          string  `json:"code" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	PANumber      string  `json:"pa_number,omitempty"`
	Value         float64 `json:"value" validate:"gte=0"`
	CurrentStatus string  `json:"current_status,omitempty"`
}

// RiskRecord is the strict write shape for the risks collection.
type RiskRecord struct {
	Month             string  `json:"month" validate:"required"`
	ProjectCode       string  `json:"project_code" validate:"required"`
	RiskStatus        string  `json:"risk_status" validate:"required,oneof=Open Closed Mitigated Transferred"`
	Description       string  `json:"description" validate:"required"`
	Probability       float64 `json:"probability" validate:"gte=0,lte=1"`
	ImpactRating      float64 `json:"impact_rating" validate:"gte=0.05,lte=0.8"`
	MitigationPlan    string  `json:"mitigation_plan,omitempty"`
	ContingencyPlan   string  `json:"contingency_plan,omitempty"`
	ImpactValue       float64 `json:"impact_value" validate:"gte=0"`
	BudgetContingency float64 `json:"budget_contingency" validate:"gte=0"`
	Owner             string  `json:"owner,omitempty"`
	DueDate           string  `json:"due_date,omitempty"`
	Title             string  `json:"title,omitempty"`
}

// IssueRecord is the strict write shape for the issues collection. Note the
// due date key spelling differs from the risk side; the stored data has
// always been this way.
type IssueRecord struct {
	Month       string  `json:"month" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=Technical Contractual Resource Schedule"`
	SubCategory string  `json:"sub_category,omitempty"`
	Title       string  `json:"title" validate:"required"`
	Discussion  string  `json:"discussion" validate:"required"`
	Resolution  string  `json:"resolution,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	Response    string  `json:"response,omitempty" validate:"omitempty,oneof='Under Review' 'In Progress' Closed"`
	Impact      string  `json:"impact,omitempty" validate:"omitempty,oneof=Low Medium High"`
	ImpactValue float64 `json:"impact_value,omitempty" validate:"gte=0"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High Critical"`
	ProjectName string  `json:"project_name" validate:"required"`
	Status      string  `json:"status" validate:"required,oneof=Open Resolved Escalated Closed"`
}
