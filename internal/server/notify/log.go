package notify

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/logging"
)

// LogSink writes every message to the log instead of sending it. It is the
// default when no SMTP server is configured.
type LogSink struct {
	logger logging.Logger
}

func NewLogSink(logger logging.Logger) *LogSink {
	return &LogSink{logger: logger.With("module", "notify")}
}

func (s *LogSink) emit(ctx context.Context, m message) error {
	s.logger.Info(ctx, "notification", "to", m.To, "subject", m.Subject, "body", m.Body)
	return nil
}

func (s *LogSink) SendInvitation(ctx context.Context, msg Invitation) error {
	return s.emit(ctx, renderInvitation(msg))
}

func (s *LogSink) SendApprovalRequested(ctx context.Context, msg ApprovalRequest) error {
	return s.emit(ctx, renderApprovalRequested(msg))
}

func (s *LogSink) SendAssignmentChanged(ctx context.Context, msg AssignmentChange) error {
	return s.emit(ctx, renderAssignmentChanged(msg))
}
