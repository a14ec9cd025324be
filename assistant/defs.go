package assistant

// Wire types for the OpenAI Assistants v2 API. Only the fields this service
// reads are modeled; everything else the API returns is ignored on decode.

// Thread is a remote-service-managed ordered message history.
type Thread struct {
	ID        string            `json:"id"`
	Object    string            `json:"object"`
	CreatedAt int64             `json:"created_at"`
	Metadata  map[string]string `json:"metadata"`
}

// RunStatus is the fixed status vocabulary of a run.
type RunStatus string

const (
	StatusQueued         RunStatus = "queued"
	StatusInProgress     RunStatus = "in_progress"
	StatusRequiresAction RunStatus = "requires_action"
	StatusCompleted      RunStatus = "completed"
	StatusFailed         RunStatus = "failed"
	StatusCancelled      RunStatus = "cancelled"
	StatusExpired        RunStatus = "expired"
	StatusIncomplete     RunStatus = "incomplete"
)

// Pending reports whether the run is still being processed remotely.
func (s RunStatus) Pending() bool {
	return s == StatusQueued || s == StatusInProgress
}

// Failure reports whether the run ended without producing a response.
func (s RunStatus) Failure() bool {
	switch s {
	case StatusFailed, StatusCancelled, StatusExpired, StatusIncomplete:
		return true
	}
	return false
}

// Run is one asynchronous processing job over a thread.
type Run struct {
	ID             string          `json:"id"`
	Object         string          `json:"object"`
	CreatedAt      int64           `json:"created_at"`
	AssistantID    string          `json:"assistant_id"`
	ThreadID       string          `json:"thread_id"`
	Status         RunStatus       `json:"status"`
	RequiredAction *RequiredAction `json:"required_action,omitempty"`
	LastError      *LastError      `json:"last_error,omitempty"`
	ExpiresAt      *int64          `json:"expires_at,omitempty"`
	FailedAt       *int64          `json:"failed_at,omitempty"`
	CompletedAt    *int64          `json:"completed_at,omitempty"`
	Model          string          `json:"model"`
}

// LastError carries the remote failure reason of a failed run.
type LastError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RequiredAction is present while a run is blocked in requires_action.
type RequiredAction struct {
	Type              string                   `json:"type"` // "submit_tool_outputs"
	SubmitToolOutputs *SubmitToolOutputsAction `json:"submit_tool_outputs,omitempty"`
}

type SubmitToolOutputsAction struct {
	ToolCalls []ToolCall `json:"tool_calls"`
}

// ToolCall is one requested tool invocation: id, function name and a
// JSON-encoded argument object.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"` // "function"
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolOutput echoes a ToolCall id with the JSON-serialized result.
type ToolOutput struct {
	ToolCallID string `json:"tool_call_id"`
	Output     string `json:"output"`
}

// Message is user or assistant content appended to a thread.
type Message struct {
	ID          string    `json:"id"`
	Object      string    `json:"object"`
	CreatedAt   int64     `json:"created_at"`
	AssistantID *string   `json:"assistant_id"`
	ThreadID    string    `json:"thread_id"`
	RunID       *string   `json:"run_id"`
	Role        string    `json:"role"`
	Content     []Content `json:"content"`
}

type Content struct {
	Type      string     `json:"type"` // "text", "image_file", "image_url"
	Text      *Text      `json:"text,omitempty"`
	ImageFile *ImageFile `json:"image_file,omitempty"`
}

type Text struct {
	Value       string        `json:"value"`
	Annotations []interface{} `json:"annotations"`
}

type ImageFile struct {
	FileID string `json:"file_id"`
}

type MessageList struct {
	Object  string    `json:"object"`
	Data    []Message `json:"data"`
	FirstID string    `json:"first_id"`
	LastID  string    `json:"last_id"`
	HasMore bool      `json:"has_more"`
}

// Request bodies.

type messageCreateRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type runCreateRequest struct {
	AssistantID  string `json:"assistant_id"`
	Instructions string `json:"instructions,omitempty"`
}

type submitToolOutputsRequest struct {
	ToolOutputs []ToolOutput `json:"tool_outputs"`
}

type apiErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}
