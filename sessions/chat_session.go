package sessions

import (
	"context"
	"fmt"
)

// DefaultInstructions is passed with every run unless overridden by config.
const DefaultInstructions = "Follow the assistant's profile settings strictly. " +
	"Always provide structured, well-formatted answers based on provided files and reliable sources. " +
	"If no information is found, return the default response."

// RunChatInteraction handles one complete conversation turn and returns the
// assistant's reply together with the thread id the caller should persist.
func (s *ChatSession) RunChatInteraction(ctx context.Context, message, threadID string) (string, string, error) {
	if threadID != "" && s.Locks != nil {
		s.Locks.Lock(threadID)
		defer s.Locks.Unlock(threadID)
	}

	resolvedID, err := s.resolveThread(ctx, threadID)
	if err != nil {
		return "", "", err
	}

	if _, err := s.Client.CreateMessage(ctx, resolvedID, "user", message); err != nil {
		return "", resolvedID, fmt.Errorf("failed to append user message: %w", err)
	}
	s.recordTurn(resolvedID, "user", message)

	run, err := s.Client.CreateRun(ctx, resolvedID, s.instructions())
	if err != nil {
		return "", resolvedID, fmt.Errorf("failed to start run: %w", err)
	}

	if _, err := s.Poller.WaitForRunCompletion(ctx, resolvedID, run.ID); err != nil {
		return "", resolvedID, err
	}

	reply, err := s.latestAssistantText(ctx, resolvedID)
	if err != nil {
		return "", resolvedID, err
	}
	s.recordTurn(resolvedID, "assistant", reply)

	return reply, resolvedID, nil
}

// resolveThread reuses the supplied thread when the remote service still
// knows it, and otherwise creates a fresh one. A stale client-held id must
// never fail the request.
func (s *ChatSession) resolveThread(ctx context.Context, threadID string) (string, error) {
	if threadID != "" {
		if _, err := s.Client.RetrieveThread(ctx, threadID); err == nil {
			return threadID, nil
		} else {
			s.logf("Failed to retrieve thread %s, creating a new one: %v", threadID, err)
		}
	}

	thread, err := s.Client.CreateThread(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create thread: %w", err)
	}
	return thread.ID, nil
}

// latestAssistantText fetches the most recent thread message and extracts
// its primary text block. Non-text blocks are described rather than failing
// the turn.
func (s *ChatSession) latestAssistantText(ctx context.Context, threadID string) (string, error) {
	list, err := s.Client.ListMessages(ctx, threadID, 1, "desc")
	if err != nil {
		return "", fmt.Errorf("failed to list messages: %w", err)
	}
	if len(list.Data) == 0 || len(list.Data[0].Content) == 0 {
		return "", fmt.Errorf("no response received from assistant")
	}

	for _, content := range list.Data[0].Content {
		if content.Type == "text" && content.Text != nil {
			return content.Text.Value, nil
		}
	}

	switch list.Data[0].Content[0].Type {
	case "image_file", "image_url":
		return "[image attachment]", nil
	default:
		return "[unsupported content]", nil
	}
}

func (s *ChatSession) instructions() string {
	if s.Instructions != "" {
		return s.Instructions
	}
	return DefaultInstructions
}

// recordTurn appends to the transcript store when one is configured. Store
// failures are logged, never surfaced: the remote thread stays canonical.
func (s *ChatSession) recordTurn(threadID, role, text string) {
	if s.Store == nil {
		return
	}
	if err := s.Store.SaveTurn(threadID, role, text); err != nil {
		s.logf("Error saving %s turn for thread %s: %v", role, threadID, err)
	}
}

func (s *ChatSession) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
