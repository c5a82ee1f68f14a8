package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/probelab/webhook-site-mcp-server/metrics"
)

// Wait engine defaults. Interval and retry ceiling are tunable through
// configuration; page sizes match what a single poll cycle can usefully
// scan.
const (
	DefaultPollInterval   = 2 * time.Second
	DefaultMaxPollRetries = 3
	DefaultWaitTimeout    = 60 * time.Second

	requestPageSize = 5
	emailPageSize   = 10
)

// Clock abstracts time for the wait engine so poll loops can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until the context is done, returning the
	// context error in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Wait outcome tags. Timeout is a first-class result, not an error:
// callers branch on "try again later" vs "something is broken".
const (
	OutcomeFound   = "found"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

// WaitOutcome is the terminal result of one wait invocation. Exactly one
// is produced per call; query failures never escape as errors.
type WaitOutcome struct {
	Outcome string     `json:"outcome"`
	Request *View      `json:"request,omitempty"`
	Email   *EmailView `json:"email,omitempty"`
	Message string     `json:"message"`
}

// Found reports whether the wait observed a new matching record.
func (o *WaitOutcome) Found() bool { return o.Outcome == OutcomeFound }

// cursor is the baseline marker distinguishing records that existed at
// wait-start from genuinely new ones. The two variants scan a
// newest-first page differently, so the scan itself lives behind the
// interface rather than a per-record predicate.
type cursor interface {
	// scan walks a newest-first page and returns the most recent new
	// record matching the variant's filter, or nil when none qualifies.
	scan(records []Request) *Request
}

// requestCursor marks novelty positionally: everything above the baseline
// id in a newest-first page arrived after the snapshot. An empty baseline
// means the endpoint had no records, so every record is new.
type requestCursor struct {
	baselineID string
	typeFilter string
}

func (c *requestCursor) scan(records []Request) *Request {
	for i := range records {
		rec := &records[i]
		if rec.UUID == "" {
			continue // malformed, can never satisfy the novelty test
		}
		if rec.UUID == c.baselineID {
			break // reached records that existed at baseline
		}
		if c.typeFilter != "" && rec.Type != c.typeFilter {
			continue
		}
		return rec
	}
	return nil
}

// emailCursor marks novelty by id-set membership. Email arrival order
// relative to pre-existing unread mail is less reliable than request
// order, so position alone cannot be trusted.
type emailCursor struct {
	baselineIDs map[string]struct{}
}

func (c *emailCursor) scan(records []Request) *Request {
	for i := range records {
		rec := &records[i]
		if rec.Type != TypeEmail {
			continue
		}
		if rec.UUID == "" {
			continue
		}
		if _, seen := c.baselineIDs[rec.UUID]; seen {
			continue
		}
		return rec
	}
	return nil
}

// WaitForRequest blocks until a new record arrives at the endpoint,
// polling the capture service. typeFilter restricts matches to web,
// email, or dns records; empty matches any type. The returned outcome is
// found, timeout, or error; query failures never surface as a Go error.
func (c *Client) WaitForRequest(ctx context.Context, token string, timeout time.Duration, typeFilter string) (outcome *WaitOutcome) {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	start := c.clock.Now()
	defer func() { metrics.RecordWait("request", outcome.Outcome, c.clock.Now().Sub(start)) }()

	// Baseline snapshot: the newest record's id, or empty when the
	// endpoint has no traffic yet.
	page, err := c.List(ctx, token, ListOptions{PerPage: 1, Sorting: SortNewest})
	if err != nil {
		return &WaitOutcome{
			Outcome: OutcomeError,
			Message: fmt.Sprintf("Failed to initialize polling: %v", err),
		}
	}
	cur := &requestCursor{typeFilter: typeFilter}
	if len(page.Data) > 0 {
		cur.baselineID = page.Data[0].UUID
	}

	outcome = c.poll(ctx, token, cur, timeout, pollSpec{
		kind:     "request",
		pageSize: requestPageSize,
	})
	if outcome.Outcome == OutcomeTimeout {
		typeDesc := ""
		if typeFilter != "" {
			typeDesc = fmt.Sprintf(" of type '%s'", typeFilter)
		}
		outcome.Message = fmt.Sprintf("Timeout: No request%s received within %d seconds", typeDesc, int(timeout.Seconds()))
	}
	return outcome
}

// WaitForEmail blocks until a new email arrives at the endpoint's
// {token}@email.webhook.site address. When extractLinks is true the found
// outcome carries every URL in the email body plus the subset that looks
// auth-relevant (magic links, verification links).
//
// The baseline snapshot covers one page of existing emails; with more
// pre-existing emails than fit the page, older untracked ones can be
// misreported as new. Known approximation.
func (c *Client) WaitForEmail(ctx context.Context, token string, timeout time.Duration, extractLinks bool) (outcome *WaitOutcome) {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	start := c.clock.Now()
	defer func() { metrics.RecordWait("email", outcome.Outcome, c.clock.Now().Sub(start)) }()

	page, err := c.List(ctx, token, ListOptions{PerPage: emailPageSize, Sorting: SortNewest})
	if err != nil {
		return &WaitOutcome{
			Outcome: OutcomeError,
			Message: fmt.Sprintf("Failed to initialize email polling: %v", err),
		}
	}
	cur := &emailCursor{baselineIDs: make(map[string]struct{})}
	for _, rec := range page.Data {
		if rec.Type == TypeEmail && rec.UUID != "" {
			cur.baselineIDs[rec.UUID] = struct{}{}
		}
	}

	outcome = c.poll(ctx, token, cur, timeout, pollSpec{
		kind:     "email",
		pageSize: emailPageSize,
	})
	switch outcome.Outcome {
	case OutcomeFound:
		email := NewEmailView(outcome.Request.raw)
		if extractLinks {
			links := ExtractLinks(outcome.Request.raw.Body())
			email.AllLinks = links.All
			email.AuthLinks = links.Auth
		} else {
			email.AllLinks = []string{}
		}
		outcome.Email = email
		outcome.Request = nil
		outcome.Message = "Email received: " + email.Subject
	case OutcomeTimeout:
		outcome.Message = fmt.Sprintf("Timeout: No email received within %d seconds", int(timeout.Seconds()))
	}
	return outcome
}

// pollSpec carries the per-variant parameters of a poll loop.
type pollSpec struct {
	kind     string
	pageSize int
}

// poll runs the shared loop: sleep an interval, fetch a newest-first
// page, let the cursor scan it. Transient query failures back off
// exponentially and escalate after maxPollRetries consecutive misses; the
// backoff sleeps do not count against the wall-clock budget check beyond
// the elapsed-time comparison at the top of the loop.
func (c *Client) poll(ctx context.Context, token string, cur cursor, timeout time.Duration, spec pollSpec) *WaitOutcome {
	start := c.clock.Now()
	retries := 0

	for c.clock.Now().Sub(start) < timeout {
		if err := c.clock.Sleep(ctx, c.pollInterval); err != nil {
			return &WaitOutcome{
				Outcome: OutcomeError,
				Message: fmt.Sprintf("Polling cancelled: %v", err),
			}
		}
		metrics.RecordPollCycle(spec.kind)

		page, err := c.List(ctx, token, ListOptions{PerPage: spec.pageSize, Sorting: SortNewest})
		if err != nil {
			retries++
			if retries >= c.maxPollRetries {
				return &WaitOutcome{
					Outcome: OutcomeError,
					Message: fmt.Sprintf("API error during polling (after %d retries): %v", c.maxPollRetries, err),
				}
			}
			backoff := time.Duration(1<<uint(retries)) * time.Second
			if serr := c.clock.Sleep(ctx, backoff); serr != nil {
				return &WaitOutcome{
					Outcome: OutcomeError,
					Message: fmt.Sprintf("Polling cancelled: %v", serr),
				}
			}
			continue
		}
		retries = 0

		if rec := cur.scan(page.Data); rec != nil {
			view := NewView(rec)
			return &WaitOutcome{
				Outcome: OutcomeFound,
				Request: view,
				Message: fmt.Sprintf("Request received (type: %s)", view.Type),
			}
		}
	}

	return &WaitOutcome{Outcome: OutcomeTimeout}
}
