package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port    string
	SiteDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration

	// AI provider
	AIProvider        string
	OpenAIBaseURL     string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAITemperature float64
	OllamaBaseURL     string
	OllamaModel       string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	siteDir := os.Getenv("SITE_DIR")
	if siteDir == "" {
		siteDir = "../website"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	cookieName := os.Getenv("COOKIE_NAME")
	if cookieName == "" {
		cookieName = "tj_session"
	}

	ttlDays := 30
	if v := os.Getenv("SESSION_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlDays = n
		}
	}

	// AI provider config
	aiProvider := os.Getenv("AI_PROVIDER")
	if aiProvider == "" {
		aiProvider = "openai"
	}

	openAIBaseURL := os.Getenv("OPENAI_BASE_URL")
	if openAIBaseURL == "" {
		openAIBaseURL = "https://api.openai.com/v1"
	}

	openAIModel := os.Getenv("OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-4o-mini"
	}

	temperature := 0.7
	if v := os.Getenv("OPENAI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			temperature = f
		}
	}

	ollamaBaseURL := os.Getenv("OLLAMA_BASE_URL")
	if ollamaBaseURL == "" {
		ollamaBaseURL = "http://localhost:11434"
	}

	ollamaModel := os.Getenv("OLLAMA_MODEL")
	if ollamaModel == "" {
		ollamaModel = "llama3:latest"
	}

	return Config{
		Port:    port,
		SiteDir: siteDir,

		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		CookieName:   cookieName,
		CookieSecure: os.Getenv("APP_ENV") == "production",
		SessionTTL:   time.Duration(ttlDays) * 24 * time.Hour,

		AIProvider:        aiProvider,
		OpenAIBaseURL:     openAIBaseURL,
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       openAIModel,
		OpenAITemperature: temperature,
		OllamaBaseURL:     ollamaBaseURL,
		OllamaModel:       ollamaModel,
	}
}
