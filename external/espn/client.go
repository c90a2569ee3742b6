package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gridironlab/playenrich/internal/domain/play"
	"github.com/gridironlab/playenrich/internal/platform/cache"
	"github.com/gridironlab/playenrich/internal/platform/logging"
	"github.com/gridironlab/playenrich/internal/platform/ratelimit"
	"github.com/gridironlab/playenrich/internal/platform/resilience"
	"github.com/gridironlab/playenrich/internal/usecase"
)

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	defaultTimeout     = 30 * time.Second
	defaultMinInterval = 500 * time.Millisecond
	maxResponseBytes   = 8 << 20
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient         *http.Client
	BaseURL            string
	Timeout            time.Duration
	MinRequestInterval time.Duration
	DisableCache       bool
	Logger             *logging.Logger
}

// Client talks to the provider's scoreboard and game-summary endpoints.
// All endpoints share one rate gate; successful responses are memoized by
// exact request URL, and a memo hit bypasses both the network and the gate.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	gate       *ratelimit.Gate
	responses  *cache.Store
	flight     resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	interval := cfg.MinRequestInterval
	if interval <= 0 {
		interval = defaultMinInterval
	}

	var responses *cache.Store
	if !cfg.DisableCache {
		responses = cache.NewStore(0)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		gate:       ratelimit.NewGate(interval),
		responses:  responses,
	}
}

// FetchSchedule lists the provider's games for a YYYYMMDD date. Fetch or
// parse failures come back as an empty list plus the error; individual
// malformed games are skipped.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]usecase.ExternalGame, error) {
	date = strings.TrimSpace(date)
	if len(date) != 8 {
		return nil, fmt.Errorf("invalid schedule date %q, want YYYYMMDD", date)
	}

	payload, err := c.getJSON(ctx, c.baseURL+"/scoreboard?dates="+date)
	if err != nil {
		c.logger.WarnContext(ctx, "schedule fetch failed", "date", date, "error", err)
		return nil, err
	}

	events := getSlice(payload, "events")
	games := make([]usecase.ExternalGame, 0, len(events))
	for _, raw := range events {
		event, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		games = append(games, parseScheduleEvent(event))
	}

	return games, nil
}

// FetchGameSummary returns the raw game summary. Missing or malformed
// fields are the caller's problem to default, not a fetch failure.
func (c *Client) FetchGameSummary(ctx context.Context, externalGameID string) (map[string]any, error) {
	externalGameID = strings.TrimSpace(externalGameID)
	if externalGameID == "" {
		return nil, fmt.Errorf("external game id is required")
	}

	payload, err := c.getJSON(ctx, c.baseURL+"/summary?event="+externalGameID)
	if err != nil {
		c.logger.WarnContext(ctx, "game summary fetch failed", "external_game_id", externalGameID, "error", err)
		return nil, err
	}
	return payload, nil
}

// FetchPlays flattens the game's drives into one chronologically ordered
// play sequence: completed drives first, then the in-progress drive if the
// summary carries one. The ordering is load-bearing for sequence-distance
// scoring downstream.
func (c *Client) FetchPlays(ctx context.Context, externalGameID string) ([]play.ExternalPlay, error) {
	summary, err := c.FetchGameSummary(ctx, externalGameID)
	if err != nil {
		return nil, err
	}

	drivesNode := getMap(summary, "drives")
	drives := getSlice(drivesNode, "previous")
	if current := getMap(drivesNode, "current"); len(current) > 0 {
		drives = append(drives, current)
	}

	out := make([]play.ExternalPlay, 0, 128)
	for _, rawDrive := range drives {
		drive, ok := rawDrive.(map[string]any)
		if !ok {
			continue
		}
		for _, rawPlay := range getSlice(drive, "plays") {
			entry, ok := rawPlay.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, parseDrivePlay(entry))
		}
	}

	return out, nil
}

// FetchGameInfo extracts the game header from the summary.
func (c *Client) FetchGameInfo(ctx context.Context, externalGameID string) (usecase.ExternalGame, bool, error) {
	summary, err := c.FetchGameSummary(ctx, externalGameID)
	if err != nil {
		return usecase.ExternalGame{}, false, err
	}

	competition := firstMap(getSlice(getMap(summary, "header"), "competitions"))
	if len(competition) == 0 {
		return usecase.ExternalGame{}, false, nil
	}

	home := competitorBySide(competition, "home")
	away := competitorBySide(competition, "away")
	venue := getMap(getMap(summary, "gameInfo"), "venue")

	return usecase.ExternalGame{
		ExternalID: externalGameID,
		Date:       getString(competition, "date"),
		HomeTeam:   getString(getMap(home, "team"), "displayName"),
		HomeAbbrev: getString(getMap(home, "team"), "abbreviation"),
		AwayTeam:   getString(getMap(away, "team"), "displayName"),
		AwayAbbrev: getString(getMap(away, "team"), "abbreviation"),
		Stadium:    getString(venue, "fullName"),
		HomeScore:  getInt(home, "score"),
		AwayScore:  getInt(away, "score"),
		Status:     getString(getMap(getMap(competition, "status"), "type"), "name"),
	}, true, nil
}

// ClearCache drops every memoized response.
func (c *Client) ClearCache() {
	if c.responses != nil {
		c.responses.Clear(context.Background())
	}
}

func (c *Client) getJSON(ctx context.Context, fullURL string) (map[string]any, error) {
	if c.responses != nil {
		if cached, ok := c.responses.Get(ctx, fullURL); ok {
			if payload, ok := cached.(map[string]any); ok {
				return payload, nil
			}
		}
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		if err := c.gate.Wait(ctx); err != nil {
			return nil, err
		}

		raw, err := c.executeRequest(ctx, fullURL)
		if err != nil {
			return nil, err
		}

		var payload map[string]any
		if err := sonic.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode provider payload: %w", err)
		}

		if c.responses != nil {
			c.responses.Set(ctx, fullURL, payload)
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}

	payload, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return payload, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errESPNTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errESPNTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: provider status=%d body=%s", errESPNTransient, resp.StatusCode, abbreviateBody(raw))
	}

	return raw, nil
}

func parseScheduleEvent(event map[string]any) usecase.ExternalGame {
	competition := firstMap(getSlice(event, "competitions"))
	home := competitorBySide(competition, "home")
	away := competitorBySide(competition, "away")

	return usecase.ExternalGame{
		ExternalID: getString(event, "id"),
		Date:       getString(event, "date"),
		HomeTeam:   getString(getMap(home, "team"), "displayName"),
		HomeAbbrev: getString(getMap(home, "team"), "abbreviation"),
		AwayTeam:   getString(getMap(away, "team"), "displayName"),
		AwayAbbrev: getString(getMap(away, "team"), "abbreviation"),
		Stadium:    getString(getMap(competition, "venue"), "fullName"),
		HomeScore:  getInt(home, "score"),
		AwayScore:  getInt(away, "score"),
		Status:     getString(getMap(getMap(event, "status"), "type"), "name"),
	}
}

func parseDrivePlay(entry map[string]any) play.ExternalPlay {
	start := getMap(entry, "start")
	return play.ExternalPlay{
		ExternalID: getString(entry, "id"),
		Quarter:    getInt(getMap(entry, "period"), "number"),
		Clock:      getString(getMap(entry, "clock"), "displayValue"),
		Down:       getInt(start, "down"),
		Distance:   getInt(start, "distance"),
		YardLine:   getInt(start, "yardLine"),
		Text:       getString(entry, "text"),
		Type:       getString(getMap(entry, "type"), "text"),
		Scoring:    getBool(entry, "scoringPlay"),
		HomeScore:  getInt(entry, "homeScore"),
		AwayScore:  getInt(entry, "awayScore"),
	}
}

func competitorBySide(competition map[string]any, side string) map[string]any {
	for _, raw := range getSlice(competition, "competitors") {
		competitor, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if strings.EqualFold(getString(competitor, "homeAway"), side) {
			return competitor
		}
	}
	return nil
}
