// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/caarlos0/env and github.com/joho/godotenv: LoadEnv
// reads explicit .env files, Load parses the environment into any struct
// using `env` field tags (loading the default .env once per process first),
// and MustLoad panics when required configuration is missing.
package config
