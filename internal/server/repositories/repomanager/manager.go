// Package repomanager groups the per-entity repositories behind one handle
// and runs multi-entity writes in a single transaction.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/audit"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/ballots"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/elections"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/invitations"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/users"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/votes"
)

// Repositories is a set of repositories bound to one connection or one
// transaction.
type Repositories interface {
	Users() users.Repository
	Elections() elections.Repository
	Ballots() ballots.Repository
	Assignments() assignments.Repository
	Invitations() invitations.Repository
	Credentials() credentials.Repository
	Votes() votes.Repository
	Audit() audit.Repository
}

// TxFunc runs against repositories bound to an open transaction. Returning
// an error rolls the transaction back.
type TxFunc func(ctx context.Context, repos Repositories) error

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// Repos returns repositories that autocommit each call.
	Repos() Repositories
	WithTx(ctx context.Context, fn TxFunc) error
	Close() error
}
