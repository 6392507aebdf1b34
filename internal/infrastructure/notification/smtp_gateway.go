package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// ErrDeliveryFailed wraps every failure to hand a message to the transport.
var ErrDeliveryFailed = errors.New("email delivery failed")

// SMTPConfig holds the SMTP transport settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Secure    bool
	FromName  string
	FromEmail string
	// Mock logs messages instead of sending them.
	Mock bool
}

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPGateway delivers proposal and account emails.
type SMTPGateway struct {
	cfg    SMTPConfig
	sender sender
}

var _ interfaces.INotificationGateway = (*SMTPGateway)(nil)

func NewSMTPGateway(cfg SMTPConfig) (*SMTPGateway, error) {
	if cfg.FromName == "" {
		cfg.FromName = "BizTech Team"
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.Username
	}
	if cfg.Mock {
		return &SMTPGateway{cfg: cfg}, nil
	}

	opts := []mail.Option{mail.WithPort(cfg.Port), mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPGateway{cfg: cfg, sender: client}, nil
}

var proposalTemplate = template.Must(template.New("proposal").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Your Project Proposal is Ready</h2>
  <p>Hello {{.ClientName}},</p>
  <p>Please find attached your project proposal <strong>#{{.ProposalID}}</strong> prepared by <strong>{{.AgentName}}</strong>.</p>
  {{if .TotalAmount}}<p><strong>Total Amount:</strong> ${{printf "%.2f" .TotalAmount}}</p>{{end}}
  <p>Review the proposal and feel free to reply to this email if you have any questions.</p>
  <br>
  <p>Best regards,<br><strong>{{.AgentName}}</strong><br>BizTech Team</p>
</div>`))

var approvalTemplate = template.Must(template.New("approval").Parse(`
<h3>Hello {{.}},</h3>
<p>Great news! Your account has been approved by our administrators.</p>
<p>You can now login to your dashboard to view services and submit requests.</p>
<br>
<p>Regards,<br>BizTech Team</p>`))

// SendProposalNotification emails the proposal PDF to the client with the agent
// as reply-to. A missing document file is a delivery failure.
func (g *SMTPGateway) SendProposalNotification(ctx context.Context, n entities.ProposalNotification) error {
	path, err := filepath.Abs(n.DocumentRef)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	if _, err := os.Stat(path); err != nil {
		zap.L().Error("[notification][smtp] proposal pdf missing", zap.String("proposal_id", n.ProposalID), zap.String("path", path))
		return fmt.Errorf("%w: proposal document not found: %w", ErrDeliveryFailed, err)
	}

	var body bytes.Buffer
	if err := proposalTemplate.Execute(&body, n); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	m, err := g.newMessage(n.ClientEmail, fmt.Sprintf("Your BizTech Proposal #%s", n.ProposalID), body.String())
	if err != nil {
		return err
	}
	if n.AgentEmail != "" {
		if err := m.ReplyTo(n.AgentEmail); err != nil {
			return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
		}
	}
	m.AttachFile(path,
		mail.WithFileName(fmt.Sprintf("Proposal-%s.pdf", n.ProposalID)),
		mail.WithFileContentType(mail.ContentType("application/pdf")),
	)
	return g.send(ctx, m, "proposal", n.ClientEmail)
}

func (g *SMTPGateway) SendAccountApprovalNotification(ctx context.Context, email, name string) error {
	var body bytes.Buffer
	if err := approvalTemplate.Execute(&body, name); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	m, err := g.newMessage(email, "Your BizTech Account is Approved!", body.String())
	if err != nil {
		return err
	}
	return g.send(ctx, m, "account_approval", email)
}

func (g *SMTPGateway) newMessage(to, subject, html string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(g.cfg.FromName, g.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrDeliveryFailed, err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrDeliveryFailed, err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, html)
	return m, nil
}

func (g *SMTPGateway) send(ctx context.Context, m *mail.Msg, kind, to string) error {
	if g.cfg.Mock {
		zap.L().Info("[notification][smtp] mock delivery", zap.String("kind", kind), zap.String("to", to))
		return nil
	}
	if err := g.sender.DialAndSendWithContext(ctx, m); err != nil {
		zap.L().Error("[notification][smtp] send failed", zap.String("kind", kind), zap.String("to", to), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	zap.L().Info("[notification][smtp] sent", zap.String("kind", kind), zap.String("to", to))
	return nil
}
