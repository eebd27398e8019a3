package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"devflow/internal/chat"
	"devflow/internal/model"
)

var (
	flagSession  string
	flagAnalysis bool
)

var chatCmd = &cobra.Command{
	Use:   "chat [message...]",
	Short: "Run one chat turn, or an interactive session without a message",
	Long: `Send a message to the assistant. Without a message, read one message per
line from stdin until EOF or "exit"; the conversation is kept across lines.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&flagSession, "session", "", "resume or create this session id")
	chatCmd.Flags().BoolVar(&flagAnalysis, "analysis", false, "attach the daily summary and workload analysis")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	s := &chatSession{uc: app.Chat, sessionID: flagSession, analysis: flagAnalysis}
	if len(args) > 0 {
		return s.turn(ctx, cmd.OutOrStdout(), strings.Join(args, " "))
	}
	return s.repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

// chatSession keeps the conversation in memory between REPL lines.
type chatSession struct {
	uc        chat.UseCase
	sessionID string
	analysis  bool
	state     *model.Conversation
}

func (s *chatSession) turn(ctx context.Context, w io.Writer, message string) error {
	include := s.analysis
	out, err := s.uc.Chat(ctx, chat.ChatInput{
		Message:         message,
		SessionID:       s.sessionID,
		State:           s.state,
		IncludeAnalysis: &include,
	})
	if out.State != nil {
		s.state = out.State
		s.sessionID = out.SessionID
	}
	if out.Response != "" {
		fmt.Fprintf(w, "[%s] %s\n", out.Classification, out.Response)
	}
	if out.DailySummary != nil {
		fmt.Fprintf(w, "\n%s\n", out.DailySummary.Summary)
	}
	return err
}

func (s *chatSession) repl(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	fmt.Fprint(w, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "exit" || line == "quit":
			return nil
		case line != "":
			if err := s.turn(ctx, w, line); err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				fmt.Fprintln(w, "Error:", err)
			}
		}
		fmt.Fprint(w, "> ")
	}
	return scanner.Err()
}
