package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Haliukaaa/chatbot-beautysecrets/assistant"
	"github.com/Haliukaaa/chatbot-beautysecrets/models"
)

// ToolDispatcher executes one requires_action batch: it maps each requested
// invocation by name to an executor, fans the batch out concurrently, and
// submits all outputs back to the run in a single call. Each output echoes
// the invocation id it answers.
type ToolDispatcher struct {
	Client AssistantClient
	Tools  map[string]models.ToolExecutor
	Logger *log.Logger
}

// Dispatch runs the batch and submits the results. A malformed argument
// payload fails the whole batch; an unknown function name does not — it
// becomes an error payload in that call's output so the other invocations
// still complete.
func (d *ToolDispatcher) Dispatch(ctx context.Context, threadID, runID string, toolCalls []assistant.ToolCall) error {
	d.logf("Tool calls received: %d", len(toolCalls))

	// Parse every argument payload before any execution starts.
	parsed := make([]map[string]interface{}, len(toolCalls))
	for i, call := range toolCalls {
		args := map[string]interface{}{}
		if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				return fmt.Errorf("failed to parse arguments for tool %s: %w", call.Function.Name, err)
			}
		}
		parsed[i] = args
	}

	outputs := make([]assistant.ToolOutput, len(toolCalls))
	var wg sync.WaitGroup
	for i, call := range toolCalls {
		wg.Add(1)
		go func(i int, call assistant.ToolCall) {
			defer wg.Done()
			outputs[i] = assistant.ToolOutput{
				ToolCallID: call.ID,
				Output:     d.execute(ctx, call.Function.Name, parsed[i]),
			}
		}(i, call)
	}
	wg.Wait()

	d.logf("Submitting %d tool outputs back to the run", len(outputs))
	if _, err := d.Client.SubmitToolOutputs(ctx, threadID, runID, outputs); err != nil {
		return fmt.Errorf("failed to submit tool outputs: %w", err)
	}
	return nil
}

// execute resolves and runs one invocation, returning the JSON-serialized
// output. Executor failures are already encoded in-band by the adapters.
func (d *ToolDispatcher) execute(ctx context.Context, name string, args map[string]interface{}) string {
	var result interface{}
	if executor, ok := d.Tools[name]; ok {
		d.logf("Executing function: %s with args: %v", name, args)
		result = executor(ctx, args)
	} else {
		result = map[string]string{"error": fmt.Sprintf("Unknown function: %s", name)}
	}

	payload, err := json.Marshal(result)
	if err != nil {
		d.logf("Failed to serialize output of %s: %v", name, err)
		fallback, _ := json.Marshal(map[string]string{
			"error": fmt.Sprintf("Failed to serialize output of %s", name),
		})
		return string(fallback)
	}
	return string(payload)
}

func (d *ToolDispatcher) logf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}
