package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/portfolio-api/config"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/models"
	"github.com/wneessen/go-mail"
)

// Notifier tells the site owner about new contact messages
type Notifier interface {
	NotifyContact(ctx context.Context, contact *models.Contact) error
}

// NoopNotifier is used when no email account is configured
type NoopNotifier struct{}

func (NoopNotifier) NotifyContact(context.Context, *models.Contact) error {
	return nil
}

var smtpHosts = map[string]string{
	"gmail":   "smtp.gmail.com",
	"outlook": "smtp.office365.com",
	"hotmail": "smtp.office365.com",
	"yahoo":   "smtp.mail.yahoo.com",
	"zoho":    "smtp.zoho.com",
}

// MailNotifier sends notifications over SMTP
type MailNotifier struct {
	cfg    config.EmailConfig
	host   string
	sender func(ctx context.Context, msg *mail.Msg) error
}

// NewNotifier returns a MailNotifier when credentials are configured, otherwise a NoopNotifier
func NewNotifier(cfg config.EmailConfig) (Notifier, error) {
	if !cfg.Enabled() {
		logger.Info("Email notifications disabled: EMAIL_USERNAME or EMAIL_PASSWORD not set")
		return NoopNotifier{}, nil
	}
	host := cfg.Host
	if host == "" {
		host = smtpHosts[strings.ToLower(cfg.Service)]
	}
	if host == "" {
		return nil, fmt.Errorf("unknown EMAIL_SERVICE %q and no EMAIL_HOST set", cfg.Service)
	}
	n := &MailNotifier{cfg: cfg, host: host}
	n.sender = n.dialAndSend
	return n, nil
}

// NotifyContact emails the contact details to the configured recipient
func (n *MailNotifier) NotifyContact(ctx context.Context, contact *models.Contact) error {
	msg, err := n.buildMessage(contact)
	if err != nil {
		return err
	}
	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := n.sender(sendCtx, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	logger.FromContext(ctx).Info("Email notification sent", "contact", contact.ID)
	return nil
}

func (n *MailNotifier) buildMessage(contact *models.Contact) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat("Portfolio Contact", n.cfg.Username); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(n.cfg.Recipient()); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject("New Contact from " + contact.Name)
	msg.SetBodyString(mail.TypeTextPlain, plainBody(contact))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(contact))
	return msg, nil
}

func (n *MailNotifier) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if n.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}
	client, err := mail.NewClient(n.host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func plainBody(c *models.Contact) string {
	return fmt.Sprintf("You have received a new message from your portfolio contact form:\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n",
		c.Name, c.Email, c.Message)
}

func htmlBody(c *models.Contact) string {
	message := strings.ReplaceAll(html.EscapeString(c.Message), "\n", "<br>")
	return "<h3>New Portfolio Contact</h3>" +
		"<p>You have received a new message from your portfolio contact form:</p>" +
		"<p><strong>Name:</strong> " + html.EscapeString(c.Name) + "</p>" +
		"<p><strong>Email:</strong> " + html.EscapeString(c.Email) + "</p>" +
		"<p><strong>Message:</strong></p>" +
		"<p>" + message + "</p>"
}
