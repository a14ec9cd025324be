package models

import "context"

// ToolExecutor runs one tool invocation with already-parsed arguments. The
// returned value is always serializable; failures are encoded in-band so the
// assistant run can continue.
type ToolExecutor func(ctx context.Context, args map[string]interface{}) interface{}

type FunctionDeclaration struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  Parameters  `json:"parameters"`
	Callable    interface{} `json:"-"`
}

// Parameters defines the JSON Schema for function parameters
type Parameters struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Required   []string               `json:"required"`
}
