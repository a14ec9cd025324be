package sessions

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Haliukaaa/chatbot-beautysecrets/assistant"
	"github.com/Haliukaaa/chatbot-beautysecrets/models"
	"github.com/Haliukaaa/chatbot-beautysecrets/stores"
)

// AssistantClient is the subset of the remote assistant service this package
// depends on. *assistant.Client satisfies it; tests substitute fakes.
type AssistantClient interface {
	CreateThread(ctx context.Context) (assistant.Thread, error)
	RetrieveThread(ctx context.Context, threadID string) (assistant.Thread, error)
	CreateMessage(ctx context.Context, threadID, role, content string) (assistant.Message, error)
	CreateRun(ctx context.Context, threadID, instructions string) (assistant.Run, error)
	RetrieveRun(ctx context.Context, threadID, runID string) (assistant.Run, error)
	SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []assistant.ToolOutput) (assistant.Run, error)
	ListMessages(ctx context.Context, threadID string, limit int, order string) (assistant.MessageList, error)
}

// ErrRunTimeout reports that a run stayed non-terminal past the poll bound.
// It is distinct from a remote job failure so clients can offer a retry.
var ErrRunTimeout = errors.New("run timed out")

// RunFailedError reports a run that ended in a failure status.
type RunFailedError struct {
	Status assistant.RunStatus
	Reason string
}

func (e *RunFailedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("run ended with status %s: %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("run ended with status: %s", e.Status)
}

// ErrorCode maps an interaction error to the client-facing error code. The
// message shown to clients stays generic; the underlying error is only ever
// logged server-side.
func ErrorCode(err error) string {
	if errors.Is(err, ErrRunTimeout) {
		return models.CodeTimeout
	}
	return models.CodeRemoteFailure
}

// ChatSession drives one conversation turn end to end: thread resolution,
// message append, run creation, polling and final message extraction.
// Sessions are safe for concurrent use across requests; per-thread ordering
// is enforced by Locks.
type ChatSession struct {
	Client       AssistantClient
	Poller       *Poller
	Store        stores.ConversationStore
	Locks        *ThreadLocks
	Instructions string
	Logger       *log.Logger
}
