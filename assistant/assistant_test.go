package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-key", "asst_123")
	client.BaseURL = server.URL
	client.Logger = nil
	return client, server
}

func TestCreateThreadSendsBetaHeader(t *testing.T) {
	var gotAuth, gotBeta string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBeta = r.Header.Get("OpenAI-Beta")
		if r.Method != http.MethodPost || r.URL.Path != "/threads" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Thread{ID: "thread_abc", Object: "thread"})
	})
	defer server.Close()

	thread, err := client.CreateThread(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if thread.ID != "thread_abc" {
		t.Errorf("expected thread_abc, got %q", thread.ID)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotBeta != "assistants=v2" {
		t.Errorf("expected assistants=v2 beta header, got %q", gotBeta)
	}
}

func TestCreateRunUsesConfiguredAssistant(t *testing.T) {
	var body runCreateRequest
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/threads/thread_1/runs" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(Run{ID: "run_1", Status: StatusQueued})
	})
	defer server.Close()

	run, err := client.CreateRun(context.Background(), "thread_1", "be helpful")
	if err != nil {
		t.Fatal(err)
	}
	if run.ID != "run_1" || run.Status != StatusQueued {
		t.Errorf("unexpected run: %+v", run)
	}
	if body.AssistantID != "asst_123" {
		t.Errorf("expected assistant id asst_123, got %q", body.AssistantID)
	}
	if body.Instructions != "be helpful" {
		t.Errorf("expected instructions to pass through, got %q", body.Instructions)
	}
}

func TestSubmitToolOutputsBody(t *testing.T) {
	var body submitToolOutputsRequest
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/threads/t/runs/r/submit_tool_outputs" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(Run{ID: "r", Status: StatusQueued})
	})
	defer server.Close()

	outputs := []ToolOutput{{ToolCallID: "call_1", Output: `{"ok":true}`}}
	if _, err := client.SubmitToolOutputs(context.Background(), "t", "r", outputs); err != nil {
		t.Fatal(err)
	}
	if len(body.ToolOutputs) != 1 || body.ToolOutputs[0].ToolCallID != "call_1" {
		t.Errorf("unexpected submitted outputs: %+v", body.ToolOutputs)
	}
}

func TestListMessagesQueryParams(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "1" || q.Get("order") != "desc" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(MessageList{Data: []Message{{ID: "msg_1", Role: "assistant"}}})
	})
	defer server.Close()

	list, err := client.ListMessages(context.Background(), "thread_1", 1, "desc")
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Data) != 1 || list.Data[0].ID != "msg_1" {
		t.Errorf("unexpected message list: %+v", list)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No thread found"}}`))
	})
	defer server.Close()

	_, err := client.RetrieveThread(context.Background(), "thread_missing")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "No thread found" {
		t.Errorf("expected remote message, got %q", apiErr.Message)
	}
}

func TestRunStatusPredicates(t *testing.T) {
	if !StatusQueued.Pending() || !StatusInProgress.Pending() {
		t.Error("queued and in_progress should be pending")
	}
	if StatusRequiresAction.Pending() || StatusCompleted.Pending() {
		t.Error("requires_action and completed are not pending")
	}
	for _, s := range []RunStatus{StatusFailed, StatusCancelled, StatusExpired, StatusIncomplete} {
		if !s.Failure() {
			t.Errorf("%s should be a failure status", s)
		}
	}
	if StatusCompleted.Failure() {
		t.Error("completed is not a failure status")
	}
}
