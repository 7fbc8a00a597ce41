package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"quizboard/logger"
	"quizboard/models"
)

type Outcome int

const (
	OutcomeLoaded Outcome = iota
	OutcomeEmpty
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the tagged outcome of one fetch. Quizzes is zero when Outcome is OutcomeFailed.
type Result struct {
	Outcome Outcome
	Quizzes models.DashboardQuizzes
	Err     error
}

func (r Result) Failed() bool { return r.Outcome == OutcomeFailed }

type Client struct {
	http *resty.Client
	log  *logger.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, log *logger.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c, log: log.With("component", "dashboard-client")}
}

// Fetch requests the dashboard quizzes for userID once. No retries.
func (c *Client) Fetch(ctx context.Context, userID string) Result {
	var data models.DashboardQuizzes

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&data).
		ForceContentType("application/json").
		Get("/api/dashboardquizzes")
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("dashboard.Fetch: %w", err)}
	}
	if resp.IsError() {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("dashboard.Fetch: unexpected status %d", resp.StatusCode())}
	}

	if len(data.ActiveQuizzes) == 0 && len(data.AttemptedQuizzes) == 0 {
		return Result{Outcome: OutcomeEmpty, Quizzes: data}
	}
	return Result{Outcome: OutcomeLoaded, Quizzes: data}
}

// Load fetches and builds the view. A failed fetch is logged and rendered as the
// empty dashboard; the returned Result still says it failed.
func (c *Client) Load(ctx context.Context, userID string) (View, Result) {
	res := c.Fetch(ctx, userID)
	if res.Failed() {
		c.log.Error("Failed to fetch dashboard quizzes", "error", res.Err)
		return BuildView(models.DashboardQuizzes{}), res
	}
	return BuildView(res.Quizzes), res
}
