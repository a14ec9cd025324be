package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultTimeout = 30 * time.Second
)

// APIError is a non-2xx response from the assistant service.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("assistant API error (status %d, %s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("assistant API error (status %d)", e.StatusCode)
}

// Client talks to the OpenAI Assistants v2 API. A single configured instance
// is injected into every component; nothing reads credentials ambiently.
type Client struct {
	APIKey      string
	AssistantID string
	BaseURL     string
	HTTPClient  *http.Client
	Logger      *log.Logger
}

// NewClient creates a client with the default base URL and timeout.
func NewClient(apiKey, assistantID string) *Client {
	return &Client{
		APIKey:      apiKey,
		AssistantID: assistantID,
		BaseURL:     DefaultBaseURL,
		HTTPClient:  &http.Client{Timeout: DefaultTimeout},
		Logger:      log.New(os.Stdout, "[assistant] ", log.LstdFlags),
	}
}

// do issues one API call. Every request carries the assistants=v2 beta
// header; non-2xx responses decode into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("OpenAI-Beta", "assistants=v2")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request to assistant API: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope apiErrorEnvelope
		if json.Unmarshal(responseBody, &envelope) == nil {
			apiErr.Type = envelope.Error.Type
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(responseBody, out); err != nil {
			return fmt.Errorf("error unmarshalling assistant API response: %w", err)
		}
	}
	return nil
}

// CreateThread creates a new empty thread.
func (c *Client) CreateThread(ctx context.Context) (Thread, error) {
	var thread Thread
	err := c.do(ctx, http.MethodPost, "/threads", struct{}{}, &thread)
	return thread, err
}

// RetrieveThread fetches an existing thread by id.
func (c *Client) RetrieveThread(ctx context.Context, threadID string) (Thread, error) {
	var thread Thread
	err := c.do(ctx, http.MethodGet, "/threads/"+threadID, nil, &thread)
	return thread, err
}

// CreateMessage appends a message to a thread.
func (c *Client) CreateMessage(ctx context.Context, threadID, role, content string) (Message, error) {
	var msg Message
	err := c.do(ctx, http.MethodPost, "/threads/"+threadID+"/messages",
		messageCreateRequest{Role: role, Content: content}, &msg)
	return msg, err
}

// CreateRun starts a run of the configured assistant over a thread.
func (c *Client) CreateRun(ctx context.Context, threadID, instructions string) (Run, error) {
	var run Run
	err := c.do(ctx, http.MethodPost, "/threads/"+threadID+"/runs",
		runCreateRequest{AssistantID: c.AssistantID, Instructions: instructions}, &run)
	return run, err
}

// RetrieveRun fetches the current run snapshot.
func (c *Client) RetrieveRun(ctx context.Context, threadID, runID string) (Run, error) {
	var run Run
	err := c.do(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+runID, nil, &run)
	return run, err
}

// SubmitToolOutputs submits one batch of tool results back to a blocked run.
func (c *Client) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) (Run, error) {
	var run Run
	err := c.do(ctx, http.MethodPost, "/threads/"+threadID+"/runs/"+runID+"/submit_tool_outputs",
		submitToolOutputsRequest{ToolOutputs: outputs}, &run)
	return run, err
}

// ListMessages lists thread messages; order is "asc" or "desc".
func (c *Client) ListMessages(ctx context.Context, threadID string, limit int, order string) (MessageList, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if order != "" {
		q.Set("order", order)
	}
	path := "/threads/" + threadID + "/messages"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list MessageList
	err := c.do(ctx, http.MethodGet, path, nil, &list)
	return list, err
}
