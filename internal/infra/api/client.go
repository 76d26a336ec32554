package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"offer-console/internal/pkg/config"
	"offer-console/internal/pkg/errs"
	"offer-console/internal/pkg/session"

	"github.com/google/uuid"
)

// Client is the JSON gateway to the remote admin API. Every request carries
// the bearer token from the credentials provider and a generated request ID
// for log correlation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      session.CredentialsProvider
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, creds session.CredentialsProvider, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		creds:      creds,
		logger:     logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	token, err := c.creds.Token()
	if err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}

	requestID := uuid.New().String()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "Request failed",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		// Transport error messages surface to components unchanged
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	logLevel := slog.LevelInfo
	if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	c.logger.LogAttrs(ctx, logLevel, "Request completed",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status_code", resp.StatusCode),
		slog.Duration("duration", time.Since(startTime)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp, requestID)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response, requestID string) error {
	apiErr := &Error{
		Status:    resp.StatusCode,
		RequestID: requestID,
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
