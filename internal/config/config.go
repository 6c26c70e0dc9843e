package config

import (
	"log"
	"os"
	"strings"
)

const (
	// ServiceName and APIVersion identify the service in health responses.
	ServiceName = "Phonestore API"
	APIVersion  = "1.0.0"
)

type Config struct {
	Port        string
	DBDSN       string
	JWTSecret   string
	FrontendURL string
	ExtraURLs   string
	DeployURL   string
	LogFile     string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "phonestore.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
		log.Printf("[warn] JWT_SECRET not set, using insecure dev default")
	}
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./phonestore.log" // default log sink in project root
	}

	cfg := Config{
		Port:        port,
		DBDSN:       dsn,
		JWTSecret:   secret,
		FrontendURL: frontend,
		ExtraURLs:   os.Getenv("EXTRA_FRONTEND_URLS"),
		DeployURL:   os.Getenv("RENDER_EXTERNAL_URL"),
		LogFile:     logFile,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s FRONTEND_URL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.FrontendURL, cfg.LogFile)
	return cfg
}

// CORSOrigins assembles the allowed origin list: the primary frontend,
// the two local dev servers, any extra URLs (comma or space separated)
// and the platform deployment URL. Duplicates are dropped, order kept.
func (c Config) CORSOrigins() []string {
	candidates := []string{c.FrontendURL, "http://localhost:5173", "http://localhost:3000"}
	candidates = append(candidates, splitURLs(c.ExtraURLs)...)
	if c.DeployURL != "" {
		candidates = append(candidates, c.DeployURL)
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, u := range candidates {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func splitURLs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
