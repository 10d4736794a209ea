package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openrescue/rescuemap-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "client")
}

var (
	ErrNotFound = fmt.Errorf("help request not found")
	ErrRejected = fmt.Errorf("request rejected by server")
)

// Client talks to the help-request API on behalf of one device. It carries
// no credentials; the device UUID it sends is a diagnostic label, not an
// authorization token.
type Client struct {
	endpoint   string
	deviceID   string
	httpClient *http.Client
}

// HelpRequestInput is the create payload.
type HelpRequestInput struct {
	PlaceName         string  `json:"place_name,omitempty"`
	Phone             string  `json:"phone"`
	BackupPhone       string  `json:"backup_phone,omitempty"`
	NumPeople         string  `json:"num_people"`
	HasElderly        bool    `json:"has_elderly"`
	HasChildren       bool    `json:"has_children"`
	HasSick           bool    `json:"has_sick"`
	HasPets           bool    `json:"has_pets"`
	AdditionalMessage string  `json:"additional_message,omitempty"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
}

func New(endpoint, deviceID string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// List fetches the full set of active help requests, newest first.
func (c *Client) List(ctx context.Context) ([]schema.HelpRequest, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"/help-requests", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list help requests: status %d", resp.StatusCode)
	}

	var requests []schema.HelpRequest
	if err := json.NewDecoder(resp.Body).Decode(&requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// Create files a new help request and returns its server-assigned ID. The
// caller must record that ID in its ledger; losing it means losing the
// mutation controls for the pin. A failed create is never retried here:
// re-posting without the user noticing risks duplicate pins on the map.
func (c *Client) Create(ctx context.Context, input HelpRequestInput) (int64, error) {
	var result struct {
		ID      int64 `json:"id"`
		Success bool  `json:"success"`
	}

	if err := c.do(ctx, "POST", "/help-requests", input, http.StatusCreated, &result); err != nil {
		return 0, err
	}

	return result.ID, nil
}

// Resolve marks a request resolved. Safe to repeat.
func (c *Client) Resolve(ctx context.Context, id int64) error {
	body := map[string]string{"status": schema.STATUS_RESOLVED}
	return c.do(ctx, "PATCH", fmt.Sprintf("/help-requests/%d", id), body, http.StatusOK, nil)
}

// Delete removes a request permanently.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/help-requests/%d", id), nil, http.StatusOK, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.deviceID != "" {
		req.Header.Set("X-Client-Id", c.deviceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == wantStatus:
		if out != nil {
			return json.NewDecoder(resp.Body).Decode(out)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		var serverErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err == nil && serverErr.Message != "" {
			return fmt.Errorf("%w: %s", ErrRejected, serverErr.Message)
		}
		return ErrRejected
	default:
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
}
