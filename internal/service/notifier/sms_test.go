package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSDispatcherSendsForm(t *testing.T) {
	var gotForm map[string]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		gotAuth = r.Header.Get("authorization")
		_, _ = w.Write([]byte(`{"return": true, "message": "ok"}`))
	}))
	defer srv.Close()

	d := NewSMSDispatcher("key-123", srv.URL)
	got := d.Send(context.Background(), "+919876543210", "ignored subject", "AQI Alert: 210.4 - Very Unhealthy")

	assert.True(t, got.OK)
	assert.Equal(t, ChannelSMS, got.Channel)
	assert.Equal(t, "key-123", gotAuth)
	assert.Equal(t, "9876543210", gotForm["numbers"])
	assert.Equal(t, "TXTIND", gotForm["sender_id"])
	assert.Equal(t, "v3", gotForm["route"])
}

func TestSMSDispatcherTruncates(t *testing.T) {
	var gotMessage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotMessage = r.PostForm.Get("message")
		_, _ = w.Write([]byte(`{"return": true}`))
	}))
	defer srv.Close()

	d := NewSMSDispatcher("key", srv.URL)
	d.Send(context.Background(), "9876543210", "", strings.Repeat("x", 400))

	assert.Len(t, gotMessage, 160)
}

func TestSMSDispatcherAPIRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"return": false, "message": "invalid number"}`))
	}))
	defer srv.Close()

	d := NewSMSDispatcher("key", srv.URL)
	got := d.Send(context.Background(), "12", "", "alert")

	assert.False(t, got.OK)
	assert.Equal(t, "invalid number", got.Detail)
}

func TestSMSDispatcherUnconfigured(t *testing.T) {
	d := NewSMSDispatcher("", "")
	got := d.Send(context.Background(), "9876543210", "", "alert")

	assert.False(t, got.OK)
	assert.Equal(t, "sms api key not configured", got.Detail)
}
