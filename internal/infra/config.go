package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	DBMaxConns  int
	JWTSecret   string

	GeminiAPIKey     string
	GeminiBaseURL    string
	GeminiTextModel  string
	GeminiImageModel string
	GeminiTimeout    time.Duration

	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	ShutdownTimeout    time.Duration
	RateLimitPerMin    int
	CORSAllowedOrigins []string
	MaxUploadBytes     int64
	AdminUserIDs       []string

	PromptInjectionPolicy string
	SignupCredits         int
	GenerationCostCredits int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DBMaxConns:            getEnvInt("DB_MAX_CONNS", 10),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:         getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiTextModel:       getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		GeminiImageModel:      getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		GeminiTimeout:         time.Second * time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 90)),
		HTTPReadTimeout:       time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout:      time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:       time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		ShutdownTimeout:       time.Second * time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 15)),
		RateLimitPerMin:       getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
		CORSAllowedOrigins:    getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxUploadBytes:        int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		AdminUserIDs:          getEnvList("ADMIN_USER_IDS", nil),
		PromptInjectionPolicy: strings.ToLower(getEnv("PROMPT_INJECTION_POLICY", "warn")),
		SignupCredits:         getEnvInt("SIGNUP_CREDITS", 1),
		GenerationCostCredits: getEnvInt("GENERATION_COST_CREDITS", 1),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	switch cfg.PromptInjectionPolicy {
	case "warn", "block":
	default:
		return nil, fmt.Errorf("PROMPT_INJECTION_POLICY must be warn or block, got %q", cfg.PromptInjectionPolicy)
	}

	if cfg.GenerationCostCredits < 1 {
		return nil, fmt.Errorf("GENERATION_COST_CREDITS must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
