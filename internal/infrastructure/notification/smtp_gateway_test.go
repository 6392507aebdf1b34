package notification

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agency_ops/internal/domain/entities"

	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func newTestGateway(s sender) *SMTPGateway {
	return &SMTPGateway{
		cfg:    SMTPConfig{FromName: "BizTech Team", FromEmail: "noreply@biztech.test"},
		sender: s,
	}
}

func writePDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proposal-prop-1.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.3"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestSMTPGateway_SendProposalNotification(t *testing.T) {
	notification := entities.ProposalNotification{
		ProposalID: "prop-1", ClientEmail: "ana@acme.test", ClientName: "Ana",
		AgentEmail: "agent7@biztech.test", AgentName: "Seven", TotalAmount: 2000,
	}

	t.Run("sends with attachment and reply-to", func(t *testing.T) {
		fs := &fakeSender{}
		n := notification
		n.DocumentRef = writePDF(t)

		if err := newTestGateway(fs).SendProposalNotification(context.Background(), n); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(fs.sent) != 1 {
			t.Fatalf("expected one message, got %d", len(fs.sent))
		}
		m := fs.sent[0]
		rcpts, _ := m.GetRecipients()
		if len(rcpts) != 1 || rcpts[0] != "ana@acme.test" {
			t.Fatalf("unexpected recipients %v", rcpts)
		}
		if got := m.GetGenHeader(mail.HeaderReplyTo); len(got) != 1 || !strings.Contains(got[0], "agent7@biztech.test") {
			t.Fatalf("unexpected reply-to %v", got)
		}
		atts := m.GetAttachments()
		if len(atts) != 1 || atts[0].Name != "Proposal-prop-1.pdf" {
			t.Fatalf("unexpected attachments %+v", atts)
		}
	})

	t.Run("missing document fails", func(t *testing.T) {
		fs := &fakeSender{}
		n := notification
		n.DocumentRef = filepath.Join(t.TempDir(), "gone.pdf")

		err := newTestGateway(fs).SendProposalNotification(context.Background(), n)
		if !errors.Is(err, ErrDeliveryFailed) {
			t.Fatalf("expected ErrDeliveryFailed, got %v", err)
		}
		if len(fs.sent) != 0 {
			t.Fatalf("nothing must be sent")
		}
	})

	t.Run("transport error is wrapped", func(t *testing.T) {
		boom := errors.New("connection refused")
		n := notification
		n.DocumentRef = writePDF(t)

		err := newTestGateway(&fakeSender{err: boom}).SendProposalNotification(context.Background(), n)
		if !errors.Is(err, ErrDeliveryFailed) || !errors.Is(err, boom) {
			t.Fatalf("expected wrapped transport error, got %v", err)
		}
	})
}

func TestSMTPGateway_SendAccountApprovalNotification(t *testing.T) {
	fs := &fakeSender{}
	if err := newTestGateway(fs).SendAccountApprovalNotification(context.Background(), "new@agency.test", "New Agent"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fs.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(fs.sent))
	}
	if got := fs.sent[0].GetGenHeader(mail.HeaderSubject); len(got) != 1 || got[0] != "Your BizTech Account is Approved!" {
		t.Fatalf("unexpected subject %v", got)
	}

	t.Run("invalid recipient", func(t *testing.T) {
		err := newTestGateway(&fakeSender{}).SendAccountApprovalNotification(context.Background(), "not-an-address", "X")
		if !errors.Is(err, ErrDeliveryFailed) {
			t.Fatalf("expected ErrDeliveryFailed, got %v", err)
		}
	})
}

func TestNewSMTPGateway_MockMode(t *testing.T) {
	g, err := NewSMTPGateway(SMTPConfig{Mock: true, FromEmail: "noreply@biztech.test"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := g.SendAccountApprovalNotification(context.Background(), "a@b.test", "A"); err != nil {
		t.Fatalf("mock mode must succeed, got %v", err)
	}
}
