package models

// Tool result statuses. Every assistant operation resolves to exactly one of these:
// partial means the dialogue needs more input for the same flow, error is always
// recoverable within the conversation.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusError   = "error"
)

// ToolResult is the uniform envelope returned by every assistant operation.
type ToolResult struct {
	Status  string      `json:"status"`
	Step    string      `json:"step"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(step, message string, data interface{}) ToolResult {
	return ToolResult{Status: StatusSuccess, Step: step, Message: message, Data: data}
}

func Partial(step, message string) ToolResult {
	return ToolResult{Status: StatusPartial, Step: step, Message: message}
}

func Error(step, message string) ToolResult {
	return ToolResult{Status: StatusError, Step: step, Message: message}
}
