package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	API    APIConfig
	Token  TokenConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// APIConfig points the console at the finance REST API.
type APIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// TokenConfig says where the bearer token is persisted between runs.
type TokenConfig struct {
	Path string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level  string
	Format string // "json" or "text"
}
