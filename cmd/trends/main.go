package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/MBurgo/super-tool/db"
	"github.com/MBurgo/super-tool/internal/repository"
	"github.com/MBurgo/super-tool/internal/themes"
	"github.com/MBurgo/super-tool/pkg/llm"
	"github.com/MBurgo/super-tool/pkg/trends"
)

const newsPerRun = 40

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var sources []trends.NewsSource
	var serpClient *trends.SerpAPIClient
	if key := os.Getenv("SERPAPI_API_KEY"); key != "" {
		serpClient = trends.NewSerpAPIClient(key)
		sources = append(sources, serpClient)
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		sources = append(sources, trends.NewFinnhubClient(key))
	}

	if len(sources) == 0 {
		slog.Error("no news source API keys configured")
		return
	}

	var rising []trends.RisingQuery
	if serpClient != nil {
		rising, err = serpClient.FetchRisingQueries(trends.ASX200MID, "AU", 4)
		if err != nil {
			slog.Error("error fetching rising queries", "error", err)
		}
	}

	var news []trends.Headline
	for _, source := range sources {
		headlines, err := source.FetchNews("ASX 200", newsPerRun)
		if err != nil {
			slog.Error("error fetching news", "source", source.Name(), "error", err)
			continue
		}
		slog.Info("news fetched", "source", source.Name(), "count", len(headlines))
		news = append(news, headlines...)
	}

	openAIClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	derived, err := themes.Derive(context.Background(), openAIClient, news, rising)
	if err != nil {
		log.Fatalf("error deriving themes: %v", err)
	}

	themeRepository := repository.NewThemeRepository(db.DB)

	if err := themeRepository.SaveThemes(derived); err != nil {
		log.Fatalf("error saving themes: %v", err)
	}

	slog.Info("trend discovery complete", "rising", len(rising), "news", len(news), "themes", len(derived))
}
