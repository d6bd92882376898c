package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MBurgo/super-tool/db"
	"github.com/MBurgo/super-tool/internal/brief"
	"github.com/MBurgo/super-tool/internal/copywriter"
	"github.com/MBurgo/super-tool/internal/handler"
	"github.com/MBurgo/super-tool/internal/model"
	"github.com/MBurgo/super-tool/internal/persona"
	"github.com/MBurgo/super-tool/internal/repository"
	"github.com/MBurgo/super-tool/pkg/llm"
	"github.com/MBurgo/super-tool/pkg/trends"
)

type sprintQueue struct{}

func (sprintQueue) Enqueue(sprintID int64) error {
	return db.PushToQueue(db.SprintQueueKey, strconv.FormatInt(sprintID, 10))
}

type personaGroups struct {
	groups []model.PersonaGroup
}

func (p personaGroups) Groups() []model.PersonaGroup {
	return p.groups
}

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	groups, err := persona.LoadGroups("")
	if err != nil {
		log.Fatalf("error loading personas: %v", err)
	}

	sprintRepo := repository.NewSprintRepository(db.DB)
	sprintHandler := handler.NewSprintHandler(sprintRepo, sprintQueue{})

	openAIClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	serpClient := trends.NewSerpAPIClient(os.Getenv("SERPAPI_API_KEY"))
	briefBuilder := brief.NewBuilder(openAIClient, serpClient, os.Getenv("SERVICE_NAME"))

	briefRepo := repository.NewBriefRepository(db.DB)
	briefHandler := handler.NewBriefHandler(briefRepo, briefBuilder)

	variantHandler := handler.NewVariantHandler(copywriter.NewGenerator(openAIClient))

	themeRepo := repository.NewThemeRepository(db.DB)
	metaHandler := handler.NewMetaHandler(themeRepo, personaGroups{groups: groups}, db.DB.Ping)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/sprints", sprintHandler.CreateSprint)
	r.GET("/sprints", sprintHandler.GetSprints)
	r.GET("/sprints/:id", sprintHandler.GetSprint)
	r.POST("/briefs", briefHandler.CreateBrief)
	r.GET("/briefs", briefHandler.GetBriefs)
	r.GET("/briefs/:id", briefHandler.GetBrief)
	r.POST("/variants", variantHandler.CreateVariants)
	r.GET("/themes", metaHandler.GetThemes)
	r.GET("/personas", metaHandler.GetPersonas)
	r.GET("/health", metaHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
