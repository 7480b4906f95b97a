package models

// UsageEvent is published to Kafka after every recorded AI call.
type UsageEvent struct {
	EventID      string `json:"event_id"`      // Unique identifier of the event
	Timestamp    int64  `json:"timestamp"`     // Unix seconds
	UserID       string `json:"user_id"`       // Internal user id
	InputTokens  int    `json:"input_tokens"`  // Prompt tokens
	OutputTokens int    `json:"output_tokens"` // Completion tokens
	Model        string `json:"model"`
	RequestType  string `json:"request_type"` // generate, update, meal_update or shopping_list
}
