package sessions

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Haliukaaa/chatbot-beautysecrets/assistant"
)

const (
	DefaultPollInterval = 1500 * time.Millisecond
	DefaultMaxAttempts  = 40
)

// Poller observes a run until it reaches a terminal state, bounded by an
// attempt count and by the context deadline. Sleep is injectable so tests
// can run the loop against a fake clock.
type Poller struct {
	Client      AssistantClient
	Dispatcher  *ToolDispatcher
	Interval    time.Duration
	MaxAttempts int
	Sleep       func(ctx context.Context, d time.Duration) error
	Logger      *log.Logger
}

// WaitForRunCompletion polls run status until completed, failure, or the
// bound is exhausted. On requires_action it dispatches the requested tool
// calls and re-fetches immediately, since the submission advances the run
// remotely. Returns the final run snapshot; the caller fetches the resulting
// message separately.
func (p *Poller) WaitForRunCompletion(ctx context.Context, threadID, runID string) (assistant.Run, error) {
	run, err := p.Client.RetrieveRun(ctx, threadID, runID)
	if err != nil {
		return run, p.remoteErr(ctx, err)
	}

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for attempts > 0 {
		p.logf("Run status: %s", run.Status)

		switch {
		case run.Status == assistant.StatusRequiresAction:
			if run.RequiredAction == nil || run.RequiredAction.Type != "submit_tool_outputs" ||
				run.RequiredAction.SubmitToolOutputs == nil {
				return run, fmt.Errorf("run %s requires unsupported action: %+v", runID, run.RequiredAction)
			}
			if err := p.Dispatcher.Dispatch(ctx, threadID, runID, run.RequiredAction.SubmitToolOutputs.ToolCalls); err != nil {
				return run, err
			}
			run, err = p.Client.RetrieveRun(ctx, threadID, runID)
			if err != nil {
				return run, p.remoteErr(ctx, err)
			}

		case run.Status == assistant.StatusCompleted:
			p.logf("Run completed successfully")
			return run, nil

		case run.Status.Failure():
			reason := ""
			if run.LastError != nil {
				reason = run.LastError.Message
			}
			return run, &RunFailedError{Status: run.Status, Reason: reason}

		case run.Status.Pending():
			if err := p.sleep(ctx); err != nil {
				return run, fmt.Errorf("%w: %v", ErrRunTimeout, err)
			}
			run, err = p.Client.RetrieveRun(ctx, threadID, runID)
			if err != nil {
				return run, p.remoteErr(ctx, err)
			}
			attempts--

		default:
			return run, fmt.Errorf("unexpected run status: %s", run.Status)
		}
	}

	p.logf("Run timed out after %d attempts", p.MaxAttempts)
	return run, ErrRunTimeout
}

func (p *Poller) sleep(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if p.Sleep != nil {
		return p.Sleep(ctx, interval)
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// remoteErr classifies a status-fetch error: a blown deadline counts as the
// poll timeout, anything else is a remote failure.
func (p *Poller) remoteErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrRunTimeout, ctx.Err())
	}
	return fmt.Errorf("failed to retrieve run: %w", err)
}

func (p *Poller) logf(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
	}
}
