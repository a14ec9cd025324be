package sessions

import (
	"context"
	"errors"
	"sync"

	"github.com/Haliukaaa/chatbot-beautysecrets/assistant"
)

// fakeAssistant scripts the remote service: RetrieveRun walks the runs slice
// (repeating the last entry), and a tool-output submission optionally swaps
// in a follow-up script.
type fakeAssistant struct {
	mu sync.Mutex

	runs            []assistant.Run
	runsAfterSubmit []assistant.Run
	retrieveCalls   int

	retrieveThreadErr error
	createdThreads    int
	createdMessages   []string
	createdRuns       int
	submitted         [][]assistant.ToolOutput
	messages          assistant.MessageList
	listErr           error
}

func (f *fakeAssistant) CreateThread(ctx context.Context) (assistant.Thread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdThreads++
	return assistant.Thread{ID: "thread_new"}, nil
}

func (f *fakeAssistant) RetrieveThread(ctx context.Context, threadID string) (assistant.Thread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.retrieveThreadErr != nil {
		return assistant.Thread{}, f.retrieveThreadErr
	}
	return assistant.Thread{ID: threadID}, nil
}

func (f *fakeAssistant) CreateMessage(ctx context.Context, threadID, role, content string) (assistant.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdMessages = append(f.createdMessages, content)
	return assistant.Message{ID: "msg_user", ThreadID: threadID, Role: role}, nil
}

func (f *fakeAssistant) CreateRun(ctx context.Context, threadID, instructions string) (assistant.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdRuns++
	return assistant.Run{ID: "run_1", ThreadID: threadID, Status: assistant.StatusQueued}, nil
}

func (f *fakeAssistant) RetrieveRun(ctx context.Context, threadID, runID string) (assistant.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.runs) == 0 {
		return assistant.Run{}, errors.New("no scripted runs")
	}
	idx := f.retrieveCalls
	if idx >= len(f.runs) {
		idx = len(f.runs) - 1
	}
	f.retrieveCalls++
	return f.runs[idx], nil
}

func (f *fakeAssistant) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []assistant.ToolOutput) (assistant.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, outputs)
	if f.runsAfterSubmit != nil {
		f.runs = f.runsAfterSubmit
		f.runsAfterSubmit = nil
		f.retrieveCalls = 0
	}
	return assistant.Run{ID: runID, Status: assistant.StatusQueued}, nil
}

func (f *fakeAssistant) ListMessages(ctx context.Context, threadID string, limit int, order string) (assistant.MessageList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return assistant.MessageList{}, f.listErr
	}
	return f.messages, nil
}

// assistantTextList builds a message list holding one assistant text reply.
func assistantTextList(text string) assistant.MessageList {
	return assistant.MessageList{
		Data: []assistant.Message{{
			ID:   "msg_reply",
			Role: "assistant",
			Content: []assistant.Content{{
				Type: "text",
				Text: &assistant.Text{Value: text},
			}},
		}},
	}
}
