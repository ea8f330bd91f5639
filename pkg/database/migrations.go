package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the session search endpoint, which matches against the
// research query text and the error message of failed sessions.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for research query full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_research_sessions_query_gin
		ON research_sessions USING gin(to_tsvector('english', query))`)
	if err != nil {
		return fmt.Errorf("failed to create query GIN index: %w", err)
	}

	// GIN index for error_message full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_research_sessions_error_message_gin
		ON research_sessions USING gin(to_tsvector('english', COALESCE(error_message, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create error_message GIN index: %w", err)
	}

	return nil
}
