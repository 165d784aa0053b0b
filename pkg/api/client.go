package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"raspictl/pkg/timetable"
)

const defaultBaseURL = "https://rasp-api.mkpt.ru/v1"

// Client talks to the college schedule service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *responseCache
}

// NewClient creates a schedule service client. An empty baseURL selects
// the default service endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		cache:      newResponseCache(),
	}
}

// get fetches the given path, serving from the response cache when a fresh
// entry exists. There is no request deduplication: concurrent misses for
// the same path each issue their own request, which is acceptable for a
// single-user client.
func (c *Client) get(path string) ([]byte, error) {
	if body, ok := c.cache.get(path); ok {
		return body, nil
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "raspictl/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body for %s: %w", url, err)
	}

	c.cache.put(path, body)
	return body, nil
}

// FetchItems retrieves the selectable groups and teachers.
func (c *Client) FetchItems() (*Items, error) {
	body, err := c.get("items")
	if err != nil {
		return nil, err
	}

	var items Items
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items JSON: %w", err)
	}
	return &items, nil
}

// FetchSchedule retrieves and normalizes the two-week base schedule for a
// profile. Every lesson passes through the normalization seam while
// decoding, and the result always has the full fixed shape.
func (c *Client) FetchSchedule(profileID string) (*timetable.Schedule, error) {
	body, err := c.get(fmt.Sprintf("%s/schedule", profileID))
	if err != nil {
		return nil, err
	}

	var schedule timetable.Schedule
	if err := json.Unmarshal(body, &schedule); err != nil {
		return nil, fmt.Errorf("failed to decode schedule JSON: %w", err)
	}
	schedule.Conform()
	return &schedule, nil
}

// FetchOverrides retrieves the substitution list for one calendar date.
func (c *Client) FetchOverrides(profileID string, date time.Time) (*timetable.OverridesBatch, error) {
	path := fmt.Sprintf("%s/overrides?date=%s", profileID, date.Format("2006-01-02"))
	body, err := c.get(path)
	if err != nil {
		return nil, err
	}

	var batch timetable.OverridesBatch
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, fmt.Errorf("failed to decode overrides JSON: %w", err)
	}
	return &batch, nil
}

// FetchEvents retrieves the calendar events for a profile.
func (c *Client) FetchEvents(profileID string) ([]Event, error) {
	body, err := c.get(fmt.Sprintf("%s/events", profileID))
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events JSON: %w", err)
	}
	return events, nil
}

// FetchDay issues the schedule, overrides and events requests for one date
// concurrently and joins them. If any request fails the whole call fails;
// the display layer never works from a partial result.
func (c *Client) FetchDay(profileID string, date time.Time) (*DayData, error) {
	var (
		wg   sync.WaitGroup
		data DayData

		scheduleErr  error
		overridesErr error
		eventsErr    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Schedule, scheduleErr = c.FetchSchedule(profileID)
	}()
	go func() {
		defer wg.Done()
		data.Overrides, overridesErr = c.FetchOverrides(profileID, date)
	}()
	go func() {
		defer wg.Done()
		data.Events, eventsErr = c.FetchEvents(profileID)
	}()
	wg.Wait()

	for _, err := range []error{scheduleErr, overridesErr, eventsErr} {
		if err != nil {
			return nil, fmt.Errorf("failed to load day data: %w", err)
		}
	}
	return &data, nil
}
