package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
	"github.com/jonboulle/clockwork"
)

const (
	maxResponseBytes  = 1 << 20
	requestTimeLayout = "2006-01-02 15:04:05"
	stateLookback     = 7 * 24 * time.Hour
	defaultDevice     = "Android"
	userAgent         = "internship-checkin"
)

var errUnauthorized = errors.New("session rejected by remote")

type API struct {
	BaseURL    string
	LoginPath  string
	PlanPath   string
	StatePath  string
	SubmitPath string
}

func DefaultAPI(baseURL string) API {
	return API{
		BaseURL:    baseURL,
		LoginPath:  "/session/user/v6/login",
		PlanPath:   "/practice/plan/v3/getPlanByStu",
		StatePath:  "/attendence/clock/v2/listSynchro",
		SubmitPath: "/attendence/clock/v4/save",
	}
}

// Client implements ports.SessionClient over the remote JSON API.
type Client struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// Secrets resolves UserInfo.PasswordRef. Optional.
	Secrets ports.SecretStore
	Clock   clockwork.Clock
	Logger  *slog.Logger
}

var _ ports.SessionClient = (*Client)(nil)

func (c *Client) Login(ctx context.Context, store ports.ConfigStore) (domain.Session, error) {
	info := store.UserInfo()
	if strings.TrimSpace(info.Phone) == "" {
		return domain.Session{}, fmt.Errorf("%w: phone number is not configured", domain.ErrAuthentication)
	}

	password, err := c.password(ctx, info)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}

	var resp loginResponse
	err = c.call(ctx, c.API.LoginPath, "", loginRequest{
		Phone:     info.Phone,
		Password:  password,
		LoginType: "android",
		T:         c.timestamp(),
	}, &resp)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: login: %w", domain.ErrAuthentication, err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return domain.Session{}, fmt.Errorf("%w: login response missing token", domain.ErrAuthentication)
	}

	info.Token = resp.Token
	info.UserID = resp.UserID
	info.RoleKey = resp.RoleKey
	if resp.NikeName != "" {
		info.NikeName = resp.NikeName
	}
	if err := store.SaveUserInfo(ctx, info); err != nil {
		return domain.Session{}, fmt.Errorf("%w: persist session token: %w", domain.ErrAuthentication, err)
	}

	c.logger().Info("logged in", "account", store.ID(), "user", info.DisplayName())

	return domain.Session{Token: resp.Token, UserID: resp.UserID, RoleKey: resp.RoleKey}, nil
}

func (c *Client) FetchPlan(ctx context.Context, store ports.ConfigStore) (domain.PlanInfo, error) {
	var plans []planResponse
	if err := c.authorizedCall(ctx, store, c.API.PlanPath, planRequest{}, &plans); err != nil {
		return domain.PlanInfo{}, fmt.Errorf("%w: %w", domain.ErrPlanResolution, err)
	}

	for _, plan := range plans {
		if strings.TrimSpace(plan.PlanID) == "" {
			continue
		}

		info := domain.PlanInfo{PlanID: plan.PlanID, PlanName: plan.PlanName}
		if err := store.SavePlanInfo(ctx, info); err != nil {
			return domain.PlanInfo{}, fmt.Errorf("%w: persist plan: %w", domain.ErrPlanResolution, err)
		}

		c.logger().Info("resolved internship plan", "account", store.ID(), "plan", info.PlanName)
		return info, nil
	}

	return domain.PlanInfo{}, fmt.Errorf("%w: no internship plan enrolled", domain.ErrPlanResolution)
}

func (c *Client) GetCheckInState(ctx context.Context, store ports.ConfigStore) (domain.CheckInRecord, error) {
	now := c.clock().Now()

	var records []stateResponse
	err := c.authorizedCall(ctx, store, c.API.StatePath, stateRequest{
		PlanID:    store.PlanInfo().PlanID,
		StartTime: now.Add(-stateLookback).Format(requestTimeLayout),
		EndTime:   now.Format(requestTimeLayout),
	}, &records)
	if err != nil {
		return domain.CheckInRecord{}, fmt.Errorf("%w: fetch check-in state: %w", domain.ErrRemote, err)
	}

	if len(records) == 0 {
		return domain.CheckInRecord{}, nil
	}

	latest := records[0]
	return domain.CheckInRecord{
		Type:       domain.CheckInType(latest.Type),
		Address:    latest.Address,
		CreateTime: latest.CreateTime,
	}, nil
}

func (c *Client) Submit(ctx context.Context, store ports.ConfigStore, record domain.CheckInRecord) error {
	settings := store.Config()
	device := settings.Device
	if device == "" {
		device = defaultDevice
	}

	err := c.authorizedCall(ctx, store, c.API.SubmitPath, submitRequest{
		PlanID:    store.PlanInfo().PlanID,
		Type:      string(record.Type),
		Address:   settings.Address,
		Province:  settings.Province,
		City:      settings.City,
		Latitude:  settings.Latitude,
		Longitude: settings.Longitude,
		Device:    device,
		T:         c.timestamp(),
	}, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSubmission, err)
	}

	return nil
}

// authorizedCall refreshes an expired cached token before the request and
// drops the cached token when the remote rejects it, so the next run logs in.
func (c *Client) authorizedCall(ctx context.Context, store ports.ConfigStore, path string, body any, out any) error {
	info := store.UserInfo()
	if !info.HasToken() {
		return fmt.Errorf("%w: no session token", domain.ErrAuthentication)
	}

	if tokenExpired(info.Token, c.clock().Now()) {
		c.logger().Info("cached session token expired, logging in again", "account", store.ID())
		if _, err := c.Login(ctx, store); err != nil {
			return err
		}
		info = store.UserInfo()
	}

	err := c.call(ctx, path, info.Token, body, out, func(req *http.Request) {
		req.Header.Set("userid", info.UserID)
		req.Header.Set("rolekey", info.RoleKey)
	})
	if errors.Is(err, errUnauthorized) {
		info.Token = ""
		if clearErr := store.SaveUserInfo(ctx, info); clearErr != nil {
			return errors.Join(fmt.Errorf("%w: %w", domain.ErrAuthentication, err), clearErr)
		}
		return fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}

	return err
}

func (c *Client) call(ctx context.Context, path string, token string, body any, out any, decorate ...func(*http.Request)) error {
	endpoint, err := buildAPIURL(c.API.BaseURL, path)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("User-Agent", userAgent)
	if token != "" {
		req.Header.Set("authorization", token)
	}
	for _, fn := range decorate {
		fn(req)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: status %d", errUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", errUnauthorized, env.Msg)
	}
	if env.Code != successCode {
		return remoteMessage(env)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}

	return nil
}

func (c *Client) password(ctx context.Context, info domain.UserInfo) (string, error) {
	ref := strings.TrimSpace(info.PasswordRef)
	if ref == "" {
		if info.Password == "" {
			return "", errors.New("password is not configured")
		}
		return info.Password, nil
	}

	if c.Secrets == nil {
		return "", fmt.Errorf("password reference %q set but no secret store configured", ref)
	}

	password, err := c.Secrets.Get(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("load password: %w", err)
	}

	return password, nil
}

func (c *Client) timestamp() string {
	return strconv.FormatInt(c.clock().Now().UnixMilli(), 10)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) clock() clockwork.Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return clockwork.NewRealClock()
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}

func remoteMessage(env envelope) error {
	msg := strings.TrimSpace(env.Msg)
	if msg == "" {
		return fmt.Errorf("remote code %d", env.Code)
	}
	return errors.New(msg)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + "/" + strings.TrimLeft(path, "/"), nil
}
