// Package beaconclient is the typed remote-data client for the backend.
// Reads go through a retrying transport and a tag-keyed cache; mutations
// are issued once and invalidate the cache tags they affect, triggering
// refetches on the next read.
package beaconclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"technobeacon/internal/eventid"
	"technobeacon/internal/techno"
)

// Cache tags, one per backend read operation.
const (
	tagArtists        = "artists"
	tagAllEvents      = "allEvents"
	tagEventsByArtist = "eventsByArtist"
	tagProfile        = "currentUserProfile"
	tagTracked        = "trackedArtists"
	tagTrackedEvents  = "trackedArtistEvents"
	tagRadarEvents    = "radarEvents"
	tagRadarSummary   = "radarSummary"
)

var (
	// ErrUnauthorized signals a missing, expired or rejected login. Never
	// retried automatically; the user must log in again.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEventUnidentified means the event's record ID could not be
	// resolved from its (artist, timestamp) pair. Recoverable: surface
	// "this event could not be identified", do not treat as a bug.
	ErrEventUnidentified = errors.New("event could not be identified")
	// ErrForbidden signals an admin-only call by a non-admin.
	ErrForbidden = errors.New("admin access required")
)

// Client talks to the backend's RPC surface.
type Client struct {
	baseURL string
	reads   *retryablehttp.Client
	mutate  *http.Client
	cache   *Cache
	token   string
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCache replaces the default cache instance.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger attaches a logger for diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient sets the underlying HTTP client used by both the
// retrying read transport and mutations. Mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.reads.HTTPClient = hc
		c.mutate = hc
	}
}

// New builds a client for the backend at baseURL. Reads retry up to three
// times with exponential backoff; mutations are never retried since the
// backend's idempotency is not verified.
func New(baseURL string, opts ...Option) *Client {
	reads := retryablehttp.NewClient()
	reads.RetryMax = 3
	reads.RetryWaitMin = 500 * time.Millisecond
	reads.RetryWaitMax = 5 * time.Second
	reads.Logger = nil

	c := &Client{
		baseURL: baseURL,
		reads:   reads,
		mutate:  &http.Client{Timeout: 30 * time.Second},
		cache:   NewCache(0),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache exposes the client's cache service.
func (c *Client) Cache() *Cache { return c.cache }

// SetToken installs the bearer token used for authenticated calls and
// clears caller-scoped cache tags, since they belong to the previous
// identity.
func (c *Client) SetToken(token string) {
	c.token = token
	for _, tag := range []string{tagProfile, tagTracked, tagTrackedEvents, tagRadarEvents, tagRadarSummary} {
		c.cache.Invalidate(tag)
	}
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.doMutation(ctx, http.MethodPost, "/api/v1/auth/signup", body, nil)
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doMutation(ctx, http.MethodPost, "/api/v1/auth/login", body, &resp); err != nil {
		return err
	}
	c.SetToken(resp.Token)
	return nil
}

// GetArtists returns the artist catalogue.
func (c *Client) GetArtists(ctx context.Context) ([]techno.Artist, error) {
	var resp struct {
		Artists []techno.Artist `json:"artists"`
	}
	if err := c.cachedRead(ctx, tagArtists, "", "/api/v1/artists", &resp); err != nil {
		return nil, err
	}
	return resp.Artists, nil
}

// GetArtist returns one artist, or (nil, nil) when the backend confirms
// absence.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*techno.Artist, error) {
	var artist techno.Artist
	err := c.cachedRead(ctx, tagArtists, artistID, "/api/v1/artists/"+artistID, &artist)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

// GetAllEvents returns every event.
func (c *Client) GetAllEvents(ctx context.Context) ([]techno.Event, error) {
	return c.readEvents(ctx, tagAllEvents, "", "/api/v1/events")
}

// GetEventsByArtist returns the events of one artist.
func (c *Client) GetEventsByArtist(ctx context.Context, artistID string) ([]techno.Event, error) {
	return c.readEvents(ctx, tagEventsByArtist, artistID, "/api/v1/artists/"+artistID+"/events")
}

// GetCallerUserProfile distinguishes three states: (profile, nil) when
// present, (nil, nil) on confirmed absence, and (nil, err) when the call
// failed and absence is unknown.
func (c *Client) GetCallerUserProfile(ctx context.Context) (*techno.UserProfile, error) {
	var profile techno.UserProfile
	err := c.cachedRead(ctx, tagProfile, "", "/api/v1/me/profile", &profile)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// SaveCallerUserProfile stores the caller's profile and invalidates the
// cached copy.
func (c *Client) SaveCallerUserProfile(ctx context.Context, profile techno.UserProfile) error {
	if err := c.doMutation(ctx, http.MethodPut, "/api/v1/me/profile", profile, nil); err != nil {
		return err
	}
	c.cache.Invalidate(tagProfile)
	return nil
}

// GetTrackedArtists returns the IDs of the caller's followed artists.
func (c *Client) GetTrackedArtists(ctx context.Context) ([]string, error) {
	var resp struct {
		ArtistIDs []string `json:"artistIds"`
	}
	if err := c.cachedRead(ctx, tagTracked, "", "/api/v1/me/tracked", &resp); err != nil {
		return nil, err
	}
	return resp.ArtistIDs, nil
}

// ToggleTrackedArtist flips the followed state of an artist and returns
// the new state. Invalidates every read derived from the tracked set.
func (c *Client) ToggleTrackedArtist(ctx context.Context, artistID string) (bool, error) {
	var resp struct {
		Tracked bool `json:"tracked"`
	}
	err := c.doMutation(ctx, http.MethodPost, "/api/v1/me/tracked/"+artistID+"/toggle", nil, &resp)
	if err != nil {
		return false, err
	}
	c.cache.Invalidate(tagTracked)
	c.cache.Invalidate(tagTrackedEvents)
	c.cache.Invalidate(tagRadarSummary)
	return resp.Tracked, nil
}

// GetTrackedArtistEvents returns all events by the caller's followed
// artists.
func (c *Client) GetTrackedArtistEvents(ctx context.Context) ([]techno.Event, error) {
	return c.readEvents(ctx, tagTrackedEvents, "", "/api/v1/me/tracked/events")
}

// GetRadarEvents returns the caller's saved events.
func (c *Client) GetRadarEvents(ctx context.Context) ([]techno.Event, error) {
	return c.readEvents(ctx, tagRadarEvents, "", "/api/v1/me/radar")
}

// GetMyRadarSummary returns the caller's tracked-artist and upcoming
// saved-event counts.
func (c *Client) GetMyRadarSummary(ctx context.Context) (techno.RadarSummary, error) {
	var summary techno.RadarSummary
	if err := c.cachedRead(ctx, tagRadarSummary, "", "/api/v1/me/radar/summary", &summary); err != nil {
		return techno.RadarSummary{}, err
	}
	return summary, nil
}

// AddEventToRadar saves an event by its resolved record ID. The returned
// tag is success-like for alreadyExists; eventNotFound is an expected,
// recoverable outcome when the ID was derived rather than looked up.
func (c *Client) AddEventToRadar(ctx context.Context, eventID string) (techno.Result, error) {
	return c.radarMutation(ctx, http.MethodPost, eventID)
}

// RemoveEventFromRadar removes an event by its resolved record ID.
func (c *Client) RemoveEventFromRadar(ctx context.Context, eventID string) (techno.Result, error) {
	return c.radarMutation(ctx, http.MethodDelete, eventID)
}

// AddEventToRadarByEvent resolves the event's record ID from its
// (artist, timestamp) pair and saves it. Resolution failure is logged
// with full context for operator diagnosis, since it indicates a
// lookup-table gap.
func (c *Client) AddEventToRadarByEvent(ctx context.Context, e techno.Event) (techno.Result, error) {
	id, ok := eventid.Resolve(e.ArtistID, e.DateTime)
	if !ok {
		c.log.Error().
			Str("artist_id", e.ArtistID).
			Int64("date_time", e.DateTime).
			Str("event_title", e.EventTitle).
			Msg("no record ID for event")
		return "", ErrEventUnidentified
	}
	return c.AddEventToRadar(ctx, id)
}

// IsCallerAdmin reports whether the caller holds the admin role.
func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var resp struct {
		Admin bool `json:"admin"`
	}
	if err := c.getJSON(ctx, "/api/v1/me/is-admin", &resp); err != nil {
		return false, err
	}
	return resp.Admin, nil
}

// InitializeSeedData triggers the admin-only seed load and invalidates
// every catalogue read.
func (c *Client) InitializeSeedData(ctx context.Context) error {
	if err := c.doMutation(ctx, http.MethodPost, "/api/v1/admin/seed", nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(tagArtists)
	c.cache.Invalidate(tagAllEvents)
	c.cache.Invalidate(tagEventsByArtist)
	return nil
}

// AssignUserRole sets the named user's role. Admin only.
func (c *Client) AssignUserRole(ctx context.Context, username string, role techno.Role) error {
	body := map[string]string{"username": username, "role": string(role)}
	return c.doMutation(ctx, http.MethodPost, "/api/v1/admin/roles", body, nil)
}

// errNotFound is internal: public APIs convert it to (nil, nil) or a
// Result tag before it reaches callers.
var errNotFound = errors.New("not found")

func (c *Client) readEvents(ctx context.Context, tag, key, path string) ([]techno.Event, error) {
	var resp struct {
		Events []techno.Event `json:"events"`
	}
	if err := c.cachedRead(ctx, tag, key, path, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

// cachedRead fetches through the cache: a fresh entry is decoded from the
// cached raw body, otherwise the path is fetched with the retrying
// transport and stored.
func (c *Client) cachedRead(ctx context.Context, tag, key, path string, out any) error {
	if raw, ok := c.cache.get(tag, key); ok {
		return json.Unmarshal(raw.([]byte), out)
	}

	raw, err := c.getRaw(ctx, path)
	if err != nil {
		return err
	}
	c.cache.put(tag, key, raw)
	return json.Unmarshal(raw, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.getRaw(ctx, path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.reads.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, resp.Body); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func (c *Client) doMutation(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.mutate.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, resp.Body); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// radarMutation issues a radar add/remove and decodes the Result tag.
// The backend reports not-found outcomes with a 404 status but still
// carries a tag in the body; both are mapped to the tag, never an error.
func (c *Client) radarMutation(ctx context.Context, method, eventID string) (techno.Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1/me/radar/"+eventID, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.mutate.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s radar %s: %w", method, eventID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
		var result struct {
			Result techno.Result `json:"result"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return "", fmt.Errorf("decode result: %w", err)
		}
		if result.Result.Success() {
			c.cache.Invalidate(tagRadarEvents)
			c.cache.Invalidate(tagRadarSummary)
		}
		return result.Result, nil
	case http.StatusUnauthorized:
		return techno.ResultUnauthorized, ErrUnauthorized
	default:
		return "", statusError(resp.StatusCode, resp.Body)
	}
}

func statusError(status int, body io.Reader) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return errNotFound
	}

	var er struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&er); err == nil && er.Error != "" {
		return fmt.Errorf("backend returned %d: %s", status, er.Error)
	}
	return fmt.Errorf("backend returned %d", status)
}
