// FILE: cmd/diagnose/main.go
// PURPOSE: Connectivity check for every backing service the API depends on.
// Run before deploying or when the server misbehaves to find the broken piece.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"rag-assessment-be/internal/config"
	"rag-assessment-be/pkg/database"
	"rag-assessment-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
)

func main() {
	color.Cyan("🚀 RAG Backend Diagnostics\n")

	cfg := config.Load()
	failures := 0

	// 1. PostgreSQL
	color.Yellow("\n[1] PostgreSQL")
	if cfg.Database.Connection == "" {
		color.Red("DB_CONNECTION_STRING not set")
		failures++
	} else if db, err := database.NewGormDBFromDSN(cfg.Database.Connection); err != nil {
		color.Red("Connection failed: %v", err)
		failures++
	} else {
		sqlDB, _ := db.DB()
		if err := sqlDB.Ping(); err != nil {
			color.Red("Ping failed: %v", err)
			failures++
		} else {
			color.Green("OK")
		}
	}

	// 2. Redis
	color.Yellow("\n[2] Redis (%s)", cfg.App.RedisURL)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		color.Red("Ping failed: %v (server falls back to in-memory conversation store)", err)
		failures++
	} else {
		color.Green("OK")
	}
	cancel()

	// 3. Vector backend
	if cfg.Vector.Backend == "pgvector" {
		color.Yellow("\n[3] Vector Backend: pgvector (shares the PostgreSQL connection)")
		color.Green("See check [1]")
	} else {
		color.Yellow("\n[3] Qdrant (%s)", cfg.Vector.QdrantURL)
		url := fmt.Sprintf("%s/collections/%s", cfg.Vector.QdrantURL, cfg.Vector.Collection)
		if status, err := httpGetStatus(url, cfg.Vector.QdrantKey); err != nil {
			color.Red("Request failed: %v", err)
			failures++
		} else if status == http.StatusNotFound {
			color.Yellow("Reachable, but collection %q does not exist yet (created on server startup)", cfg.Vector.Collection)
		} else if status != http.StatusOK {
			color.Red("Unexpected status: %d", status)
			failures++
		} else {
			color.Green("OK (collection %q exists)", cfg.Vector.Collection)
		}
	}

	// 4. Embedding provider
	color.Yellow("\n[4] Embedding Provider: %s", cfg.Ai.EmbeddingProvider)
	if cfg.Ai.EmbeddingProvider == "jina" {
		if cfg.Keys.Jina == "" {
			color.Red("JINA_API_KEY not set")
			failures++
		} else {
			color.Green("API key present (not validated remotely)")
		}
	} else {
		provider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		if vec, err := provider.Generate("diagnostic ping"); err != nil {
			color.Red("Embedding failed: %v", err)
			failures++
		} else if len(vec) != cfg.Vector.Dimension {
			color.Red("Dimension mismatch: model returned %d, EMBEDDING_DIMENSION is %d", len(vec), cfg.Vector.Dimension)
			failures++
		} else {
			color.Green("OK (model %s, dimension %d)", cfg.Ai.OllamaModel, len(vec))
		}
	}

	// 5. LLM provider
	color.Yellow("\n[5] LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	if cfg.Ai.LLMProvider == "groq" {
		if cfg.Keys.Groq == "" {
			color.Red("GROQ_API_KEY not set")
			failures++
		} else {
			color.Green("API key present (not validated remotely)")
		}
	} else {
		if status, err := httpGetStatus(cfg.Ai.OllamaBaseURL, ""); err != nil {
			color.Red("Ollama not reachable: %v", err)
			failures++
		} else {
			color.Green("OK (status %d)", status)
		}
	}

	// 6. NATS
	color.Yellow("\n[6] NATS (%s)", cfg.App.NatsURL)
	if nc, err := nats.Connect(cfg.App.NatsURL, nats.Timeout(5*time.Second)); err != nil {
		color.Red("Connection failed: %v (domain events are best-effort, server still runs)", err)
	} else {
		color.Green("OK")
		nc.Close()
	}

	// 7. SMTP
	color.Yellow("\n[7] SMTP")
	if cfg.SMTP.Host == "" || cfg.SMTP.Email == "" {
		color.Yellow("Not configured (booking confirmation emails are skipped)")
	} else {
		color.Green("Configured: %s:%d as %s", cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email)
	}

	fmt.Println()
	if failures > 0 {
		color.Red("❌ %d check(s) failed", failures)
		os.Exit(1)
	}
	color.Green("✅ All required services are reachable")
}

func httpGetStatus(url, apiKey string) (int, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, err
	}
	if apiKey != "" {
		req.Header.Set("api-key", apiKey)
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
