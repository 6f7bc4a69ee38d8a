package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Logger  LoggerConfig
	Uploads UploadsConfig
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
	ShutdownTimeout int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// UploadsConfig contains settings for uploaded document storage
type UploadsConfig struct {
	// Dir is the directory uploaded documents are written to.
	Dir string
	// PublicPath is the URL prefix the directory is served under.
	PublicPath string
}
