package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

const maxResponseBytes = 64 << 10

type Endpoints struct {
	ServerChan string
	PushPlus   string
	WxPusher   string
	Bark       string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		ServerChan: "https://sctapi.ftqq.com",
		PushPlus:   "https://www.pushplus.plus/send",
		WxPusher:   "https://wxpusher.zjiecode.com/api/send/message",
		Bark:       "https://api.day.app/push",
	}
}

// Pusher delivers a message to one of the supported push services, selected
// by the channel type.
type Pusher struct {
	Endpoints      Endpoints
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.Notifier = (*Pusher)(nil)

type sender func(ctx context.Context, p *Pusher, message domain.Message, key string) error

var senders = map[string]sender{
	"server":   sendServerChan,
	"pushplus": sendPushPlus,
	"wxpusher": sendWxPusher,
	"bark":     sendBark,
	"webhook":  sendWebhook,
}

func SupportedTypes() []string {
	return []string{"Server", "PushPlus", "WxPusher", "Bark", "Webhook"}
}

func (p *Pusher) Push(ctx context.Context, message domain.Message, channel domain.PushChannel) error {
	send, ok := senders[strings.ToLower(strings.TrimSpace(channel.Type))]
	if !ok {
		return fmt.Errorf("%w: %q (supported: %s)", domain.ErrUnsupportedPushType, channel.Type, strings.Join(SupportedTypes(), ", "))
	}

	requestCtx, cancel := p.requestContext(ctx)
	defer cancel()

	if err := send(requestCtx, p, message, strings.TrimSpace(channel.Key)); err != nil {
		return fmt.Errorf("push via %s: %w", channel.Type, err)
	}

	return nil
}

func sendServerChan(ctx context.Context, p *Pusher, message domain.Message, key string) error {
	endpoint := strings.TrimRight(p.Endpoints.ServerChan, "/") + "/" + url.PathEscape(key) + ".send"
	form := url.Values{}
	form.Set("title", message.Title)
	form.Set("desp", message.Body)

	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := p.post(ctx, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &resp); err != nil {
		return err
	}
	if resp.Code != 0 {
		return fmt.Errorf("serverchan code %d: %s", resp.Code, resp.Message)
	}

	return nil
}

func sendPushPlus(ctx context.Context, p *Pusher, message domain.Message, key string) error {
	var resp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	err := p.postJSON(ctx, p.Endpoints.PushPlus, map[string]string{
		"token":    key,
		"title":    message.Title,
		"content":  message.Body,
		"template": "markdown",
	}, &resp)
	if err != nil {
		return err
	}
	if resp.Code != http.StatusOK {
		return fmt.Errorf("pushplus code %d: %s", resp.Code, resp.Msg)
	}

	return nil
}

// sendWxPusher expects the key as "appToken:uid".
func sendWxPusher(ctx context.Context, p *Pusher, message domain.Message, key string) error {
	appToken, uid, ok := strings.Cut(key, ":")
	if !ok || appToken == "" || uid == "" {
		return errors.New(`wxpusher key must be "appToken:uid"`)
	}

	var resp struct {
		Code    int    `json:"code"`
		Msg     string `json:"msg"`
		Success bool   `json:"success"`
	}
	err := p.postJSON(ctx, p.Endpoints.WxPusher, map[string]any{
		"appToken":    appToken,
		"summary":     message.Title,
		"content":     "## " + message.Title + "\n\n" + message.Body,
		"contentType": 3,
		"uids":        []string{uid},
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("wxpusher code %d: %s", resp.Code, resp.Msg)
	}

	return nil
}

func sendBark(ctx context.Context, p *Pusher, message domain.Message, key string) error {
	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	err := p.postJSON(ctx, p.Endpoints.Bark, map[string]string{
		"device_key": key,
		"title":      message.Title,
		"body":       message.Body,
		"group":      "checkin",
	}, &resp)
	if err != nil {
		return err
	}
	if resp.Code != http.StatusOK {
		return fmt.Errorf("bark code %d: %s", resp.Code, resp.Message)
	}

	return nil
}

// sendWebhook posts the message as JSON to the URL stored in the key.
func sendWebhook(ctx context.Context, p *Pusher, message domain.Message, key string) error {
	parsed, err := url.Parse(key)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errors.New("webhook key must be an http(s) url")
	}

	return p.postJSON(ctx, parsed.String(), map[string]string{
		"title": message.Title,
		"body":  message.Body,
	}, nil)
}

func (p *Pusher) postJSON(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	return p.post(ctx, endpoint, "application/json", bytes.NewReader(payload), out)
}

func (p *Pusher) post(ctx context.Context, endpoint string, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := p.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (p *Pusher) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return http.DefaultClient
}

func (p *Pusher) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := p.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}
