// Package server implements the specgen REST API: the gin handlers and the
// PostgreSQL-backed store for users and specification documents.
package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pfa-project/specgen/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned on signup when the email is already registered.
var ErrEmailExists = errors.New("email already exists")

// Store persists users and specifications.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store over a pgx pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CreateUser inserts a new user with an already-hashed password.
func (s *Store) CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error) {
	var user models.User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, hashed_password)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, created_at, updated_at`,
		name, email, hashedPassword,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail looks a user up for login.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, hashed_password, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateSpecification stores a specification and its ordered sections for a
// user, returning the document with its assigned ID.
func (s *Store) CreateSpecification(ctx context.Context, userID string, spec models.Specification) (models.Specification, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Specification{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	spec.ID = uuid.New().String()
	_, err = tx.Exec(ctx,
		`INSERT INTO specifications
		   (id, user_id, project_name, project_type, company_name, company_description,
		    primary_objective, budget, timeline, technical_requirements)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		spec.ID, userID, spec.ProjectName, spec.ProjectType, spec.CompanyName, spec.CompanyDescription,
		spec.PrimaryObjective, spec.Budget, spec.Timeline, spec.TechnicalRequirements,
	)
	if err != nil {
		return models.Specification{}, fmt.Errorf("failed to create specification: %w", err)
	}

	if err := insertSections(ctx, tx, spec.ID, spec.Sections); err != nil {
		return models.Specification{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Specification{}, fmt.Errorf("failed to commit specification: %w", err)
	}

	return spec, nil
}

// ListSpecifications returns every specification owned by a user, newest
// first, sections in stored order.
func (s *Store) ListSpecifications(ctx context.Context, userID string) ([]models.Specification, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, project_name, project_type, company_name, company_description,
		        primary_objective, budget, timeline, technical_requirements
		 FROM specifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query specifications: %w", err)
	}
	defer rows.Close()

	specs := make([]models.Specification, 0)
	for rows.Next() {
		var spec models.Specification
		if err := rows.Scan(
			&spec.ID, &spec.ProjectName, &spec.ProjectType, &spec.CompanyName,
			&spec.CompanyDescription, &spec.PrimaryObjective, &spec.Budget,
			&spec.Timeline, &spec.TechnicalRequirements,
		); err != nil {
			return nil, fmt.Errorf("failed to scan specification: %w", err)
		}
		specs = append(specs, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specifications: %w", err)
	}

	for i := range specs {
		sections, err := s.loadSections(ctx, specs[i].ID)
		if err != nil {
			return nil, err
		}
		specs[i].Sections = sections
	}

	return specs, nil
}

// GetSpecification fetches one specification owned by a user.
func (s *Store) GetSpecification(ctx context.Context, userID, specID string) (models.Specification, error) {
	var spec models.Specification
	err := s.pool.QueryRow(ctx,
		`SELECT id, project_name, project_type, company_name, company_description,
		        primary_objective, budget, timeline, technical_requirements
		 FROM specifications
		 WHERE id = $1 AND user_id = $2`,
		specID, userID,
	).Scan(
		&spec.ID, &spec.ProjectName, &spec.ProjectType, &spec.CompanyName,
		&spec.CompanyDescription, &spec.PrimaryObjective, &spec.Budget,
		&spec.Timeline, &spec.TechnicalRequirements,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Specification{}, ErrNotFound
		}
		return models.Specification{}, fmt.Errorf("failed to get specification: %w", err)
	}

	sections, err := s.loadSections(ctx, spec.ID)
	if err != nil {
		return models.Specification{}, err
	}
	spec.Sections = sections

	return spec, nil
}

// UpdateSpecification replaces every field and section of an existing
// specification.
func (s *Store) UpdateSpecification(ctx context.Context, userID, specID string, spec models.Specification) (models.Specification, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Specification{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE specifications SET
		   project_name = $1, project_type = $2, company_name = $3,
		   company_description = $4, primary_objective = $5, budget = $6,
		   timeline = $7, technical_requirements = $8, updated_at = NOW()
		 WHERE id = $9 AND user_id = $10`,
		spec.ProjectName, spec.ProjectType, spec.CompanyName, spec.CompanyDescription,
		spec.PrimaryObjective, spec.Budget, spec.Timeline, spec.TechnicalRequirements,
		specID, userID,
	)
	if err != nil {
		return models.Specification{}, fmt.Errorf("failed to update specification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Specification{}, ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sections WHERE specification_id = $1`, specID); err != nil {
		return models.Specification{}, fmt.Errorf("failed to clear sections: %w", err)
	}
	if err := insertSections(ctx, tx, specID, spec.Sections); err != nil {
		return models.Specification{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Specification{}, fmt.Errorf("failed to commit update: %w", err)
	}

	spec.ID = specID
	return spec, nil
}

// DeleteSpecification removes a specification (sections cascade).
func (s *Store) DeleteSpecification(ctx context.Context, userID, specID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM specifications WHERE id = $1 AND user_id = $2`,
		specID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete specification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) loadSections(ctx context.Context, specID string) ([]models.Section, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT title, content FROM sections
		 WHERE specification_id = $1
		 ORDER BY position`,
		specID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	sections := make([]models.Section, 0)
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(&section.Title, &section.Content); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sections: %w", err)
	}
	return sections, nil
}

func insertSections(ctx context.Context, tx pgx.Tx, specID string, sections []models.Section) error {
	for i, section := range sections {
		_, err := tx.Exec(ctx,
			`INSERT INTO sections (specification_id, position, title, content)
			 VALUES ($1, $2, $3, $4)`,
			specID, i, section.Title, section.Content,
		)
		if err != nil {
			return fmt.Errorf("failed to insert section %d: %w", i, err)
		}
	}
	return nil
}

// isUniqueViolation reports whether the error is a Postgres unique
// constraint failure (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
