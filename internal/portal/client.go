package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ikuuu-checkin/internal/cookie"
	"ikuuu-checkin/internal/model"
)

var (
	// ErrRequest marks transport failures talking to the portal.
	ErrRequest = errors.New("portal request failed")
	// ErrResponseFormat marks portal responses that are not the expected JSON.
	ErrResponseFormat = errors.New("unexpected portal response")
)

// Session is the outcome of a successful login.
type Session struct {
	Message string
	Cookies cookie.Jar
}

type Client struct {
	host    string
	baseURL string
	http    *http.Client
}

func NewClient(host string, timeout time.Duration) *Client {
	return &Client{
		host:    host,
		baseURL: "https://" + host,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) LogIn(ctx context.Context, creds model.Credentials) (Session, error) {
	form := url.Values{}
	form.Set("host", c.host)
	form.Set("email", creds.Email)
	form.Set("passwd", creds.Password)
	form.Set("code", "")
	form.Set("remember_me", "off")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("%w: login: %v", ErrRequest, err)
	}
	defer res.Body.Close()

	rawCookie := strings.Join(res.Header.Values("Set-Cookie"), ", ")
	msg, err := readMessage(res, "login")
	if err != nil {
		return Session{}, err
	}
	return Session{Message: msg, Cookies: cookie.Parse(rawCookie)}, nil
}

func (c *Client) CheckIn(ctx context.Context, jar cookie.Jar) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/checkin", nil)
	if err != nil {
		return "", fmt.Errorf("build checkin request: %w", err)
	}
	req.Header.Set("Cookie", jar.String())
	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: checkin: %v", ErrRequest, err)
	}
	defer res.Body.Close()
	return readMessage(res, "checkin")
}

// readMessage returns the msg field of a portal JSON reply.
func readMessage(res *http.Response, op string) (string, error) {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read %s response: %v", ErrRequest, op, err)
	}
	var payload struct {
		Msg *string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: decode %s status=%d body=%s", ErrResponseFormat, op, res.StatusCode, snippet(body))
	}
	if payload.Msg == nil {
		return "", fmt.Errorf("%w: %s response has no msg status=%d", ErrResponseFormat, op, res.StatusCode)
	}
	return *payload.Msg, nil
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
