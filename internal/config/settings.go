package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Settings struct {
	Port                string
	Env                 string
	LogLevel            string
	DatabaseDriver      string
	DatabaseDSN         string
	PersistExplanations bool
	CORSAllowedOrigins  []string
	Generation          GenerationSettings
	Wikipedia           WikipediaSettings
}

type GenerationSettings struct {
	Provider             string
	OpenAIAPIKey         string
	OpenAIBaseURL        string
	OpenAIModel          string
	GeminiAPIKey         string
	GeminiModel          string
	Timeout              time.Duration
	ExplanationMaxTokens int
}

// APIKey returns the credential of the selected provider, empty when unset.
func (g GenerationSettings) APIKey() string {
	if g.Provider == ProviderGemini {
		return g.GeminiAPIKey
	}
	return g.OpenAIAPIKey
}

type WikipediaSettings struct {
	APIURL         string
	RESTURL        string
	UserAgent      string
	SearchTimeout  time.Duration
	ExtractTimeout time.Duration
}

// Init loads a local .env when present and configures logging from it.
func Init() *Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Logger.WithError(err).Warn("Failed to load .env file")
	}

	s := Load()
	InitLogger(s.LogLevel, s.Env)
	return s
}

func Load() *Settings {
	return &Settings{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("APP_ENV", "production"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DatabaseDriver:      strings.ToLower(getEnv("DATABASE_DRIVER", "postgres")),
		DatabaseDSN:         os.Getenv("DATABASE_DSN"),
		PersistExplanations: getBool("PERSIST_EXPLANATIONS", true),
		CORSAllowedOrigins:  getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:4200"}),
		Generation: GenerationSettings{
			Provider:             strings.ToLower(getEnv("GENERATION_PROVIDER", ProviderOpenAI)),
			OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL:        os.Getenv("OPENAI_BASE_URL"),
			OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
			GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout:              getDuration("GENERATION_TIMEOUT", 60*time.Second),
			ExplanationMaxTokens: getInt("EXPLANATION_MAX_TOKENS", 200),
		},
		Wikipedia: WikipediaSettings{
			APIURL:         getEnv("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php"),
			RESTURL:        getEnv("WIKIPEDIA_REST_URL", "https://en.wikipedia.org/api/rest_v1"),
			UserAgent:      getEnv("WIKIPEDIA_USER_AGENT", "quizgen/1.0 (https://github.com/saulo-duarte/quizgen)"),
			SearchTimeout:  getDuration("WIKIPEDIA_SEARCH_TIMEOUT", 10*time.Second),
			ExtractTimeout: getDuration("WIKIPEDIA_EXTRACT_TIMEOUT", 15*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}

// getDuration accepts Go durations ("15s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
