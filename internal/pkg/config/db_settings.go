package config

import "fmt"

// Supported database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings holds the key store connection settings.
// An empty DSN with the sqlite type selects an in-memory database.
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `yaml:"dsn"`
	Name string `yaml:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validateStruct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for %s", PostgresDbType)
	}

	return nil
}
