package config

// Config holds all configuration for the MongoDB MCP bridge
type Config struct {
	MongoURI        string   `json:"mongoUri"`
	DefaultDatabase string   `json:"defaultDatabase,omitempty"`
	HTTPAddr        string   `json:"httpAddr,omitempty"`
	AllowedOrigins  []string `json:"allowedOrigins,omitempty"`
	Debug           bool     `json:"debug"`
	LogLevel        string   `json:"logLevel"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return ErrMissingMongoURI
	}
	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
// The local connection string is a development convenience only; production
// deployments must set mongoUri explicitly.
func DefaultConfig() *Config {
	return &Config{
		MongoURI:       "mongodb://localhost:27017",
		HTTPAddr:       "",
		AllowedOrigins: []string{},
		Debug:          false,
		LogLevel:       "info",
	}
}
