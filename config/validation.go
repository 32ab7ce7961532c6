package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines the values that must be non-empty per environment.
// Names are the secret file names; CI reads the same values from env vars.
type ConfigRequirements struct {
	Required []string
	// Postgres is checked only when DBDriver is postgres.
	Postgres []string
}

var (
	postgresFields = []string{"db_host", "db_port", "db_user", "db_password", "db_name"}

	requirements = map[Environment]ConfigRequirements{
		Development: {Required: []string{"jwt_secret"}, Postgres: postgresFields},
		Test:        {Required: []string{"jwt_secret"}},
		CI:          {Required: []string{"jwt_secret"}, Postgres: postgresFields},
		Production:  {Required: []string{"jwt_secret", "server_port"}, Postgres: postgresFields},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	reqs := requirements[env]

	values := map[string]string{
		"server_port": cfg.ServerPort,
		"db_host":     cfg.DBHost,
		"db_port":     cfg.DBPort,
		"db_user":     cfg.DBUser,
		"db_password": cfg.DBPassword,
		"db_name":     cfg.DBName,
		"jwt_secret":  cfg.JWTSecret,
	}

	var errs []string
	check := func(names []string) {
		for _, name := range names {
			if values[name] == "" {
				errs = append(errs, ValidationError{Field: fieldName(env, name), Message: "is required"}.Error())
			}
		}
	}

	check(reqs.Required)
	switch cfg.DBDriver {
	case "postgres":
		check(reqs.Postgres)
	case "sqlite":
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{Field: fieldName(env, "db_name"), Message: "is required for sqlite"}.Error())
		}
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s environment:\n%s", env, strings.Join(errs, "\n"))
	}

	return nil
}

func fieldName(env Environment, name string) string {
	switch env {
	case CI:
		upper := strings.ToUpper(name)
		if name == "db_password" || name == "jwt_secret" {
			return "TEST_" + upper
		}
		return upper
	case Production:
		return "secret " + name
	default:
		return name
	}
}
