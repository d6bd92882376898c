package trends

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const serpEndpoint = "https://serpapi.com/search.json"

// ASX200MID is the Freebase topic ID for the S&P/ASX 200 index.
const ASX200MID = "/m/0bl5c2"

type SerpAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerpAPIClient(apiKey string) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SerpAPIClient) Name() string {
	return "SerpAPI"
}

// FetchRisingQueries pulls rising related queries from Google Trends.
func (c *SerpAPIClient) FetchRisingQueries(topicMID string, geo string, hours int) ([]RisingQuery, error) {
	params := url.Values{}
	params.Set("engine", "google_trends")
	params.Set("q", topicMID)
	params.Set("geo", geo)
	params.Set("data_type", "RELATED_QUERIES")
	params.Set("date", fmt.Sprintf("now %d-H", hours))
	params.Set("tz", "-600")
	params.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Get(serpEndpoint + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("serpapi trends fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw serpTrendsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serpapi trends decode: %w", err)
	}

	rising := make([]RisingQuery, 0, len(raw.RelatedQueries.Rising))
	for _, item := range raw.RelatedQueries.Rising {
		if item.Query == "" {
			continue
		}
		rising = append(rising, RisingQuery{
			Query: item.Query,
			Value: item.ExtractedValue,
		})
	}

	return rising, nil
}

// FetchNews searches Google News and returns de-duplicated, host-balanced
// headlines.
func (c *SerpAPIClient) FetchNews(query string, limit int) ([]Headline, error) {
	if limit < 10 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	params := url.Values{}
	params.Set("engine", "google_news")
	params.Set("q", query)
	params.Set("gl", "au")
	params.Set("hl", "en")
	params.Set("when", "24h")
	params.Set("num", fmt.Sprintf("%d", limit))
	params.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Get(serpEndpoint + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("serpapi news fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw serpNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serpapi news decode: %w", err)
	}

	rows := make([]Headline, 0, len(raw.NewsResults))
	for _, item := range raw.NewsResults {
		rows = append(rows, Headline{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  item.Source.Name,
			Date:    item.Date,
		})
	}

	return balanceHosts(dedupeByTitle(rows), limit), nil
}

var titleJunkRe = regexp.MustCompile(`[^a-z0-9\s:&$%+/\-\.]`)
var spaceRe = regexp.MustCompile(`\s+`)

func normTitle(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	t = titleJunkRe.ReplaceAllString(t, "")
	return spaceRe.ReplaceAllString(t, " ")
}

func dedupeByTitle(rows []Headline) []Headline {
	seen := make(map[string]bool)
	var out []Headline
	for _, r := range rows {
		key := normTitle(r.Title)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// balanceHosts round-robins across publisher hosts so one outlet cannot
// dominate the result set.
func balanceHosts(rows []Headline, limit int) []Headline {
	if len(rows) == 0 {
		return rows
	}

	byHost := make(map[string][]Headline)
	var hosts []string
	for _, r := range rows {
		host := ""
		if u, err := url.Parse(r.Link); err == nil {
			host = strings.ToLower(u.Host)
		}
		if _, ok := byHost[host]; !ok {
			hosts = append(hosts, host)
		}
		byHost[host] = append(byHost[host], r)
	}

	want := limit
	if len(rows) < want {
		want = len(rows)
	}

	var balanced []Headline
	for i := 0; len(balanced) < want; i++ {
		progressed := false
		for _, h := range hosts {
			bucket := byHost[h]
			if i < len(bucket) {
				balanced = append(balanced, bucket[i])
				progressed = true
				if len(balanced) >= want {
					break
				}
			}
		}
		if !progressed {
			break
		}
	}

	if len(balanced) == 0 {
		return rows[:want]
	}
	return balanced
}

type serpTrendsResponse struct {
	RelatedQueries struct {
		Rising []serpRisingItem `json:"rising"`
	} `json:"related_queries"`
}

type serpRisingItem struct {
	Query          string  `json:"query"`
	ExtractedValue float64 `json:"extracted_value"`
}

type serpNewsResponse struct {
	NewsResults []serpNewsItem `json:"news_results"`
}

type serpNewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
	Source  struct {
		Name string `json:"name"`
	} `json:"source"`
}
