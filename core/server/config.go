package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Environment selects the deployment environment (production, staging).
	Environment string `mapstructure:"environment" default:"production"`
}

const (
	EnvironmentProduction = "production"
	EnvironmentStaging    = "staging"
)

// IsValidEnvironment checks if the configured environment is valid.
func (c Config) IsValidEnvironment() bool {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging:
		return true
	default:
		return false
	}
}
