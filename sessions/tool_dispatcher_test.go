package sessions

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/Haliukaaa/chatbot-beautysecrets/assistant"
	"github.com/Haliukaaa/chatbot-beautysecrets/models"
)

func toolCall(id, name, args string) assistant.ToolCall {
	return assistant.ToolCall{
		ID:       id,
		Type:     "function",
		Function: assistant.FunctionCall{Name: name, Arguments: args},
	}
}

func TestDispatchProducesOneOutputPerRequest(t *testing.T) {
	f := &fakeAssistant{}
	dispatcher := &ToolDispatcher{
		Client: f,
		Tools: map[string]models.ToolExecutor{
			"lookup": func(ctx context.Context, args map[string]interface{}) interface{} {
				return map[string]interface{}{"result": args["q"]}
			},
		},
	}

	calls := []assistant.ToolCall{
		toolCall("call_a", "lookup", `{"q":"one"}`),
		toolCall("call_b", "missing_tool", `{}`),
		toolCall("call_c", "lookup", `{"q":"three"}`),
	}
	if err := dispatcher.Dispatch(context.Background(), "t", "r", calls); err != nil {
		t.Fatal(err)
	}

	if len(f.submitted) != 1 {
		t.Fatalf("expected a single submission, got %d", len(f.submitted))
	}
	outputs := f.submitted[0]
	if len(outputs) != 3 {
		t.Fatalf("expected 3 outputs, got %d", len(outputs))
	}

	// Each output answers exactly one request id.
	seen := map[string]int{}
	for _, out := range outputs {
		seen[out.ToolCallID]++
		if !json.Valid([]byte(out.Output)) {
			t.Errorf("output for %s is not valid JSON: %q", out.ToolCallID, out.Output)
		}
	}
	for _, id := range []string{"call_a", "call_b", "call_c"} {
		if seen[id] != 1 {
			t.Errorf("expected exactly one output for %s, got %d", id, seen[id])
		}
	}
}

func TestDispatchUnknownToolProducesErrorOutput(t *testing.T) {
	f := &fakeAssistant{}
	dispatcher := &ToolDispatcher{Client: f, Tools: map[string]models.ToolExecutor{}}

	calls := []assistant.ToolCall{toolCall("call_1", "teleport", `{}`)}
	if err := dispatcher.Dispatch(context.Background(), "t", "r", calls); err != nil {
		t.Fatal(err)
	}

	output := f.submitted[0][0].Output
	var payload map[string]string
	if err := json.Unmarshal([]byte(output), &payload); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(payload["error"], "Unknown function: teleport") {
		t.Errorf("expected unknown-function error naming the tool, got %q", payload["error"])
	}
}

func TestDispatchMalformedArgumentsFailsBatch(t *testing.T) {
	f := &fakeAssistant{}
	executed := false
	dispatcher := &ToolDispatcher{
		Client: f,
		Tools: map[string]models.ToolExecutor{
			"lookup": func(ctx context.Context, args map[string]interface{}) interface{} {
				executed = true
				return nil
			},
		},
	}

	calls := []assistant.ToolCall{
		toolCall("call_1", "lookup", `{"q":"fine"}`),
		toolCall("call_2", "lookup", `{not json`),
	}
	err := dispatcher.Dispatch(context.Background(), "t", "r", calls)
	if err == nil {
		t.Fatal("expected parse error to fail the batch")
	}
	if executed {
		t.Error("no executor should run when any argument payload is malformed")
	}
	if len(f.submitted) != 0 {
		t.Error("nothing should be submitted for a failed batch")
	}
}

func TestDispatchEmptyArgumentsBecomeEmptyMap(t *testing.T) {
	f := &fakeAssistant{}
	var got map[string]interface{}
	dispatcher := &ToolDispatcher{
		Client: f,
		Tools: map[string]models.ToolExecutor{
			"noargs": func(ctx context.Context, args map[string]interface{}) interface{} {
				got = args
				return "ok"
			},
		},
	}

	calls := []assistant.ToolCall{toolCall("call_1", "noargs", "")}
	if err := dispatcher.Dispatch(context.Background(), "t", "r", calls); err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty argument map, got %v", got)
	}
}

func TestDispatchFansOutConcurrently(t *testing.T) {
	f := &fakeAssistant{}

	// Both executors block on the barrier; the dispatch only finishes if
	// they run at the same time.
	var barrier sync.WaitGroup
	barrier.Add(2)
	executor := func(ctx context.Context, args map[string]interface{}) interface{} {
		barrier.Done()
		barrier.Wait()
		return "ok"
	}
	dispatcher := &ToolDispatcher{
		Client: f,
		Tools:  map[string]models.ToolExecutor{"blocker": executor},
	}

	calls := []assistant.ToolCall{
		toolCall("call_1", "blocker", `{}`),
		toolCall("call_2", "blocker", `{}`),
	}
	if err := dispatcher.Dispatch(context.Background(), "t", "r", calls); err != nil {
		t.Fatal(err)
	}
	if len(f.submitted[0]) != 2 {
		t.Errorf("expected both outputs, got %d", len(f.submitted[0]))
	}
}
