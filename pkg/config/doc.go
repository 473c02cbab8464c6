// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags. Nested structs are
// parsed recursively, so the process config can embed the Config types owned
// by each infrastructure package. A .env file in the working directory is
// read first when present (joho/godotenv); real environment variables take
// precedence over it.
package config
