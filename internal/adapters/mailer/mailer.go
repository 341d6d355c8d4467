// Package mailer sends quote request notifications to the studio over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

// Defaults match the Gmail submission endpoint the studio uses.
const (
	DefaultHost          = "smtp.gmail.com"
	DefaultPort          = 587
	DefaultSubjectPrefix = "Design Quote Request from"
	DefaultTimeout       = 10 * time.Second
)

const transport = "smtp"

var _ ports.QuoteNotifier = (*Mailer)(nil)

// Config holds SMTP settings. Credentials are not validated up front: a
// missing password surfaces as a send failure, which callers tolerate.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	// From defaults to Username.
	From string

	// To is the studio inbox that receives every notification.
	To string

	SubjectPrefix string
	Timeout       time.Duration
}

func (c Config) withDefaults() Config {
	if c.Host == "" {
		c.Host = DefaultHost
	}

	if c.Port == 0 {
		c.Port = DefaultPort
	}

	if c.From == "" {
		c.From = c.Username
	}

	if c.SubjectPrefix == "" {
		c.SubjectPrefix = DefaultSubjectPrefix
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	return c
}

// sender is the part of *mail.Client the mailer needs.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer implements ports.QuoteNotifier.
type Mailer struct {
	cfg    Config
	client sender
	logger *slog.Logger
}

// New builds a mailer that authenticates with PLAIN over mandatory STARTTLS.
func New(cfg Config, logger *slog.Logger) (*Mailer, error) {
	cfg = cfg.withDefaults()

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return newWithSender(cfg, client, logger), nil
}

func newWithSender(cfg Config, client sender, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}

	cfg = cfg.withDefaults()

	return &Mailer{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// SendQuoteEmail composes one plain-text message for in and sends it.
// The submitter is set as Reply-To so the studio can answer directly.
func (m *Mailer) SendQuoteEmail(ctx context.Context, in domain.QuoteRequestInput) error {
	msg, err := m.Compose(in)
	if err != nil {
		return domain.NewNotificationError(transport, err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	if err := m.client.DialAndSendWithContext(sendCtx, msg); err != nil {
		return domain.NewNotificationError(transport, err)
	}

	m.logger.DebugContext(ctx, "quote notification sent",
		slog.String("to", m.cfg.To),
		slog.String("name", in.Name),
	)

	return nil
}

// Compose builds the notification message without sending it.
func (m *Mailer) Compose(in domain.QuoteRequestInput) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}

	if err := msg.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}

	if err := msg.ReplyTo(in.Email); err != nil {
		return nil, fmt.Errorf("reply-to address: %w", err)
	}

	msg.Subject(m.cfg.SubjectPrefix + " " + in.Name)
	msg.SetBodyString(mail.TypeTextPlain, Body(in))

	return msg, nil
}

// Body renders the plain-text notification body.
func Body(in domain.QuoteRequestInput) string {
	designs := "None"
	if in.SelectedDesigns != nil && *in.SelectedDesigns != "" {
		designs = *in.SelectedDesigns
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", in.Name)
	fmt.Fprintf(&b, "Email: %s\n", in.Email)
	fmt.Fprintf(&b, "Project Type: %s\n", in.ProjectType)
	fmt.Fprintf(&b, "Selected Designs: %s\n", designs)
	b.WriteString("\nMessage:\n")
	b.WriteString(in.Message)
	b.WriteString("\n")

	return b.String()
}
