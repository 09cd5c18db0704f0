package apiclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jruizdesign/HotelManagement/internal/app"
	"github.com/jruizdesign/HotelManagement/internal/domain"
)

// Client is a typed consumer of the dashboard HTTP API, meant for
// operator tooling and smoke checks. Reads are rate limited and retried
// on transient failures; mutations are sent exactly once.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Reads ----

func (c *Client) Rooms(ctx context.Context) ([]domain.Room, error) {
	var out []domain.Room
	return out, c.get(ctx, c.base+"/v1/rooms", &out)
}

func (c *Client) Bookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	return out, c.get(ctx, c.base+"/v1/bookings", &out)
}

func (c *Client) Guests(ctx context.Context) ([]domain.Guest, error) {
	var out []domain.Guest
	return out, c.get(ctx, c.base+"/v1/guests", &out)
}

func (c *Client) Logs(ctx context.Context) ([]domain.LogEntry, error) {
	var out []domain.LogEntry
	return out, c.get(ctx, c.base+"/v1/logs", &out)
}

func (c *Client) Stats(ctx context.Context) (app.Stats, error) {
	var out app.Stats
	return out, c.get(ctx, c.base+"/v1/stats", &out)
}

// ---- Mutations ----

func (c *Client) SetRoomStatus(ctx context.Context, roomID int64, status string) (domain.Room, error) {
	var out domain.Room
	body := map[string]string{"status": status}
	url := fmt.Sprintf("%s/v1/rooms/%d/status", c.base, roomID)
	return out, c.send(ctx, http.MethodPatch, url, body, &out)
}

func (c *Client) Book(ctx context.Context, guestName string, roomID int64, checkIn, checkOut string) (domain.Booking, error) {
	var out domain.Booking
	body := map[string]any{
		"guestName": guestName,
		"roomId":    roomID,
		"checkIn":   checkIn,
		"checkOut":  checkOut,
	}
	return out, c.send(ctx, http.MethodPost, c.base+"/v1/bookings", body, &out)
}

// ---- Internals ----

var (
	ErrNotFound   = errors.New("apiclient: not found")
	ErrBadRequest = errors.New("apiclient: bad request")
)

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "hotelos/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// send performs a single mutation attempt. Mutations are not retried;
// a booking POST replayed on a flaky link would double-book.
func (c *Client) send(ctx context.Context, method, url string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotelos/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, problemDetail(resp.Body))
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, problemDetail(resp.Body))
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

// problemDetail pulls the human-readable part out of a problem+json body.
func problemDetail(r io.Reader) string {
	var p struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&p); err != nil {
		return "unreadable error body"
	}
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	// seconds form
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	// HTTP-date form
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0                  // 0..1
	j := time.Duration(0.5 * f * float64(base)) // up to +50%
	return base + j
}
