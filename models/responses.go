package models

// Chat_Response is the success body of POST /chat and of websocket reply
// frames. ThreadID is always populated so the client can persist it for the
// next turn.
type Chat_Response struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId"`
}

// Error codes returned alongside generic error messages so clients can
// branch (e.g. offer a retry affordance on timeout) without parsing text.
const (
	CodeBadRequest    = "bad_request"
	CodeConfig        = "config"
	CodeTimeout       = "timeout"
	CodeRemoteFailure = "remote_failure"
)

// Error_Response is the error body for every surface. Message stays generic;
// remote failure detail is logged server-side only.
type Error_Response struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
