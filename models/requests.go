package models

// Chat_Request is the body of POST /chat. ThreadID is optional: absent on
// the first turn of a conversation, echoed back by the client afterwards.
type Chat_Request struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId,omitempty"`
}

// WS_Chat_Frame is one inbound frame on the websocket chat surface. It
// carries the same fields as Chat_Request.
type WS_Chat_Frame struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId,omitempty"`
}
