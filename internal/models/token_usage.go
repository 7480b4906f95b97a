package models

import "time"

// Request types recorded in the usage ledger.
const (
	RequestTypeGenerate     = "generate"
	RequestTypeUpdate       = "update"
	RequestTypeMealUpdate   = "meal_update"
	RequestTypeShoppingList = "shopping_list"
)

// TokenUsage is an append-only ledger entry for one AI call.
type TokenUsage struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	InputTokens  int       `json:"input_tokens" db:"input_tokens"`
	OutputTokens int       `json:"output_tokens" db:"output_tokens"`
	Model        string    `json:"model" db:"model"`
	RequestType  string    `json:"request_type" db:"request_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UsageByType aggregates ledger entries of one request type.
type UsageByType struct {
	RequestType  string `json:"request_type" db:"request_type"`
	Requests     int    `json:"requests" db:"requests"`
	InputTokens  int    `json:"input_tokens" db:"input_tokens"`
	OutputTokens int    `json:"output_tokens" db:"output_tokens"`
}

// UsageSummary is today's usage of one user.
type UsageSummary struct {
	Date        string        `json:"date"`
	TotalTokens int           `json:"total_tokens"`
	DailyLimit  int           `json:"daily_limit"`
	Remaining   int           `json:"remaining"`
	ByType      []UsageByType `json:"by_type"`
}

// LimitStatus is the outcome of a daily limit check.
type LimitStatus struct {
	Allowed   bool `json:"allowed"`
	Used      int  `json:"used"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
}
