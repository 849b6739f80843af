package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDispatcherUnconfigured(t *testing.T) {
	d := NewEmailDispatcher("smtp.gmail.com", 587, "", "")
	got := d.Send(context.Background(), "alice@example.com", "AQI Alert", "body")

	assert.False(t, got.OK)
	assert.Equal(t, ChannelEmail, got.Channel)
	assert.Equal(t, "email credentials not configured", got.Detail)
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("monitor@example.com", "alice@example.com", "AQI Alert: Unhealthy", "Stay\ninside"))

	assert.Contains(t, msg, "From: monitor@example.com\r\n")
	assert.Contains(t, msg, "To: alice@example.com\r\n")
	assert.Contains(t, msg, "Subject: AQI Alert: Unhealthy\r\n")
	assert.Contains(t, msg, "\r\n\r\nStay\ninside")
}

func TestBuildMessageStripsHeaderBreaks(t *testing.T) {
	msg := string(buildMessage("a@b.c", "d@e.f", "evil\r\nBcc: spam@x.y", "body"))

	// The break is collapsed, so the injected text stays inside the
	// subject value instead of starting a header of its own.
	assert.NotContains(t, msg, "\r\nBcc:")
	assert.Contains(t, msg, "Subject: evil  Bcc: spam@x.y\r\n")
}
