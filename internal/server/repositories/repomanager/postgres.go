package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/unielect/internal/dbx"
	"github.com/dmitrijs2005/unielect/internal/server/migrations"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/audit"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/ballots"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/elections"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/invitations"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/users"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/votes"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs
// the embedded goose migrations.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// Open connects with the pgx driver.
func Open(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return NewPostgresRepositoryManager(db), nil
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// postgresRepos binds every repository to the same DBTX.
type postgresRepos struct {
	db dbx.DBTX
}

func (r postgresRepos) Users() users.Repository { return users.NewPostgresRepository(r.db) }

func (r postgresRepos) Elections() elections.Repository {
	return elections.NewPostgresRepository(r.db)
}

func (r postgresRepos) Ballots() ballots.Repository { return ballots.NewPostgresRepository(r.db) }

func (r postgresRepos) Assignments() assignments.Repository {
	return assignments.NewPostgresRepository(r.db)
}

func (r postgresRepos) Invitations() invitations.Repository {
	return invitations.NewPostgresRepository(r.db)
}

func (r postgresRepos) Credentials() credentials.Repository {
	return credentials.NewPostgresRepository(r.db)
}

func (r postgresRepos) Votes() votes.Repository { return votes.NewPostgresRepository(r.db) }

func (r postgresRepos) Audit() audit.Repository { return audit.NewPostgresRepository(r.db) }

func (m *PostgresRepositoryManager) Repos() Repositories {
	return postgresRepos{db: m.db}
}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn TxFunc) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, postgresRepos{db: tx})
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
