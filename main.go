package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/carbot-pro/server/internal/agent/graph"
	"github.com/carbot-pro/server/internal/agent/model"
	"github.com/carbot-pro/server/internal/agent/repo"
	"github.com/carbot-pro/server/internal/core"
	"github.com/carbot-pro/server/internal/inventory"
	logx "github.com/carbot-pro/server/pkg/logger"
	pkgredis "github.com/carbot-pro/server/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig defines all configurable parameters for the dealership agent,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	Response     model.ResponseModelConfig
	Prompt       model.ResponsePromptConfig
	Conversation model.ConversationConfig
	Inventory    model.InventoryConfig
}

func main() {
	ctx := context.Background()
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	logx.Info().Msg("Connected to Redis successfully")

	store := inventory.NewStore(envCfg.Inventory.CSVPath)
	if !store.Load() {
		log.Fatalf("Failed to load inventory from %s", envCfg.Inventory.CSVPath)
	}
	logx.Info().Int("vehicles", store.Len()).Msg("Inventory ready")

	// ====================================================
	// Build graph config entirely from env
	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_TTL '%s': %v", envCfg.Conversation.TTL, err)
	}

	cfg := graph.Config{
		APIKey:           envCfg.APIKey,
		BaseURL:          envCfg.BaseURL,
		ResponseModel:    envCfg.Response,
		ResponsePrompt:   envCfg.Prompt,
		Conversation:     envCfg.Conversation,
		ConversationRepo: repo.NewRedisConversationRepository(rdb, ttl),
		Store:            store,
	}

	runner, err := graph.BuildResponseGraph(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}

	testQueries := []struct {
		description string
		query       string
	}{
		{
			description: "Initial greeting and needs discovery",
			query:       "Hola, busco un SUV para mi familia",
		},
		{
			description: "Budget constraint",
			query:       "Mi presupuesto es hasta 30 mil, ¿qué me recomiendas?",
		},
		{
			description: "Brand comparison question",
			query:       "¿Qué marca es mejor, Toyota o Honda?",
		},
		{
			description: "Reservation decision",
			query:       "Me convence el RAV4, quiero reservarlo",
		},
	}

	conversationID := "demo-conversation-001"

	for i, test := range testQueries {
		fmt.Printf("\nTest %d: %s\n", i+1, test.description)
		fmt.Printf("Query: %q\n", test.query)

		response, err := runner.Invoke(ctx, model.QueryInput{
			ConversationID: conversationID,
			Query:          test.query,
		})
		if err != nil {
			log.Fatalf("Failed to invoke graph for test %d: %v", i+1, err)
		}

		fmt.Printf("Response %d: %s\n", i+1, response)
		fmt.Println("────────────────────────────────────────────────")

		// slight delay between tests for readability
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Println("All conversation tests completed")
}
