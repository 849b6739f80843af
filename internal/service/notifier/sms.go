package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/openair/aqimon/internal/pkg/logger"
)

const (
	defaultSMSAPIURL = "https://www.fast2sms.com/dev/bulkV2"
	smsMaxLength     = 160
)

// SMSDispatcher sends alerts through the Fast2SMS bulk API. The subject is
// ignored; SMS only carries the body, truncated to one message.
type SMSDispatcher struct {
	APIKey string
	APIURL string
	Client *http.Client
}

func NewSMSDispatcher(apiKey, apiURL string) *SMSDispatcher {
	if apiURL == "" {
		apiURL = defaultSMSAPIURL
	}
	return &SMSDispatcher{
		APIKey: apiKey,
		APIURL: apiURL,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type smsResponse struct {
	Return  bool   `json:"return"`
	Message string `json:"message"`
}

func (d *SMSDispatcher) Send(ctx context.Context, destination, _ string, body string) Delivery {
	if d.APIKey == "" {
		return Delivery{Channel: ChannelSMS, OK: false, Detail: "sms api key not configured"}
	}

	phone := strings.TrimSpace(strings.ReplaceAll(destination, "+91", ""))
	if len(body) > smsMaxLength {
		body = body[:smsMaxLength]
	}

	form := url.Values{
		"sender_id": {"TXTIND"},
		"message":   {body},
		"language":  {"english"},
		"route":     {"v3"},
		"numbers":   {phone},
	}

	var raw []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, d.APIURL, strings.NewReader(form.Encode()))
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}
			req.Header.Set("authorization", d.APIKey)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, httpErr := d.Client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Do: %w", httpErr)
			}
			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			var readErr error
			raw, readErr = io.ReadAll(resp.Body)
			if readErr != nil {
				return fmt.Errorf("read body: %w", readErr)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 3),
			ctx,
		),
	)
	if err != nil {
		logger.Errorf(ctx, "sms send to %s: %s", phone, err.Error())
		return Delivery{Channel: ChannelSMS, OK: false, Detail: err.Error()}
	}

	var parsed smsResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		return Delivery{Channel: ChannelSMS, OK: false, Detail: fmt.Sprintf("unexpected response: %s", err)}
	}

	if !parsed.Return {
		detail := parsed.Message
		if detail == "" {
			detail = "unknown error"
		}
		return Delivery{Channel: ChannelSMS, OK: false, Detail: detail}
	}

	return Delivery{Channel: ChannelSMS, OK: true, Detail: "sms sent successfully"}
}
