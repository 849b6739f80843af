package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/openair/aqimon/internal/pkg/logger"
)

// EmailDispatcher sends alerts through an SMTP relay with STARTTLS.
type EmailDispatcher struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func NewEmailDispatcher(host string, port int, sender, password string) *EmailDispatcher {
	return &EmailDispatcher{Host: host, Port: port, Sender: sender, Password: password}
}

func (d *EmailDispatcher) Send(ctx context.Context, destination, subject, body string) Delivery {
	if d.Sender == "" || d.Password == "" {
		return Delivery{Channel: ChannelEmail, OK: false, Detail: "email credentials not configured"}
	}

	msg := buildMessage(d.Sender, destination, subject, body)
	addr := fmt.Sprintf("%s:%d", d.Host, d.Port)
	auth := smtp.PlainAuth("", d.Sender, d.Password, d.Host)

	if err := smtp.SendMail(addr, auth, d.Sender, []string{destination}, msg); err != nil {
		logger.Errorf(ctx, "email send to %s: %s", destination, err.Error())
		return Delivery{Channel: ChannelEmail, OK: false, Detail: err.Error()}
	}

	return Delivery{Channel: ChannelEmail, OK: true, Detail: "email sent successfully"}
}

// buildMessage assembles a minimal RFC 5322 message. Header values with
// line breaks are collapsed to keep the message well-formed.
func buildMessage(from, to, subject, body string) []byte {
	clean := func(s string) string {
		return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", clean(from))
	fmt.Fprintf(&b, "To: %s\r\n", clean(to))
	fmt.Fprintf(&b, "Subject: %s\r\n", clean(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
