package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

var (
	ErrSchemaVersionMissing  = errors.New("ENV_SCHEMA_VERSION is not set")
	ErrSchemaVersionMismatch = errors.New("ENV_SCHEMA_VERSION mismatch")
	ErrMissingEnv            = errors.New("missing required environment variables")
)

// RequiredEnvVars must be set for every backend
var RequiredEnvVars = []string{"ENV_SCHEMA_VERSION", "API_KEY"}

// RequiredPostgresEnvVars must also be set when STORAGE_BACKEND=postgres
var RequiredPostgresEnvVars = []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"}

// envWarning flags a variable that is set but still holds a sample or default value
type envWarning struct {
	applies func() bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func() bool { return os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" },
		message: "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32",
	},
	{
		applies: func() bool {
			return os.Getenv("STORAGE_BACKEND") == StoragePostgres && os.Getenv("DB_PASSWORD") == "change_this_secure_password"
		},
		message: "DB_PASSWORD appears to be using the example value - please use a secure password",
	},
	{
		applies: func() bool { return os.Getenv("CHAT_ENDPOINT") == "" },
		message: "CHAT_ENDPOINT not set - using " + DefaultChatEndpoint,
	},
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); {
	case v == "":
		return fmt.Errorf("%w - add it to your .env file (expected: %s)", ErrSchemaVersionMissing, ExpectedEnvSchemaVersion)
	case v != ExpectedEnvSchemaVersion:
		return fmt.Errorf("%w: expected %s, got %s - your .env file may be outdated", ErrSchemaVersionMismatch, ExpectedEnvSchemaVersion, v)
	}

	required := RequiredEnvVars
	if os.Getenv("STORAGE_BACKEND") == StoragePostgres {
		required = append(required[:len(required):len(required)], RequiredPostgresEnvVars...)
	}

	var missing []string
	for _, name := range required {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports non-fatal issues
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}

// splitAndTrim splits a comma list and drops empty entries
func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
