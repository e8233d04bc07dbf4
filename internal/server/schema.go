package server

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL for the specgen tables. Dropping a specification
// cascades to its sections; position keeps the section order stable.
const Schema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name            TEXT NOT NULL,
    email           TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS specifications (
    id                     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id                UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    project_name           TEXT NOT NULL DEFAULT '',
    project_type           TEXT NOT NULL DEFAULT '',
    company_name           TEXT NOT NULL DEFAULT '',
    company_description    TEXT NOT NULL DEFAULT '',
    primary_objective      TEXT NOT NULL DEFAULT '',
    budget                 TEXT NOT NULL DEFAULT '',
    timeline               TEXT NOT NULL DEFAULT '',
    technical_requirements TEXT NOT NULL DEFAULT '',
    created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sections (
    id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    specification_id UUID NOT NULL REFERENCES specifications(id) ON DELETE CASCADE,
    position         INT NOT NULL,
    title            TEXT NOT NULL,
    content          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_specifications_user ON specifications(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_sections_spec ON sections(specification_id, position);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
