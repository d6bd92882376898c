package trends

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubClient surfaces general market news as an additional headline
// source. The query is ignored; Finnhub's general category is market-wide.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) FetchNews(query string, limit int) ([]Headline, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var headlines []Headline
	for _, news := range res {
		if len(headlines) >= limit {
			break
		}

		var h Headline
		if news.Headline != nil {
			h.Title = *news.Headline
		}
		if news.Summary != nil {
			h.Snippet = *news.Summary
		}
		if news.Url != nil {
			h.Link = *news.Url
		}
		if news.Source != nil {
			h.Source = *news.Source
		}
		if news.Datetime != nil {
			h.Date = time.Unix(*news.Datetime, 0).UTC().Format("2006-01-02 15:04")
		}

		headlines = append(headlines, h)
	}

	return dedupeByTitle(headlines), nil
}
