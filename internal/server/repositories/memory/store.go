// Package memory is an in-process RepositoryManager. Transactions hold a
// store-wide lock and restore a snapshot when fn fails, so it honours the
// same atomicity and uniqueness rules as the PostgreSQL schema.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/audit"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/ballots"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/elections"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/invitations"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/users"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/votes"
	"github.com/dmitrijs2005/unielect/internal/server/models"
)

// table keeps rows by id and remembers insertion order for listings.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() table[T] {
	return table[T]{rows: map[string]T{}}
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id string) {
	delete(t.rows, id)
}

// each visits live rows in insertion order.
func (t *table[T]) each(fn func(id string, v T)) {
	for _, id := range t.order {
		if v, ok := t.rows[id]; ok {
			fn(id, v)
		}
	}
}

func (t *table[T]) removeWhere(pred func(v T) bool) {
	for id, v := range t.rows {
		if pred(v) {
			delete(t.rows, id)
		}
	}
}

func (t table[T]) clone() table[T] {
	return table[T]{rows: maps.Clone(t.rows), order: slices.Clone(t.order)}
}

type state struct {
	users       table[models.User]
	elections   table[models.Election]
	portfolios  table[models.Portfolio]
	candidates  table[models.Candidate]
	assignments table[models.AdminAssignment]
	invitations table[models.Invitation]
	credentials table[models.VoterCredential]
	votes       table[models.Vote]
	audit       []models.AuditEntry
}

func newState() *state {
	return &state{
		users:       newTable[models.User](),
		elections:   newTable[models.Election](),
		portfolios:  newTable[models.Portfolio](),
		candidates:  newTable[models.Candidate](),
		assignments: newTable[models.AdminAssignment](),
		invitations: newTable[models.Invitation](),
		credentials: newTable[models.VoterCredential](),
		votes:       newTable[models.Vote](),
	}
}

func (s *state) clone() *state {
	return &state{
		users:       s.users.clone(),
		elections:   s.elections.clone(),
		portfolios:  s.portfolios.clone(),
		candidates:  s.candidates.clone(),
		assignments: s.assignments.clone(),
		invitations: s.invitations.clone(),
		credentials: s.credentials.clone(),
		votes:       s.votes.clone(),
		audit:       slices.Clone(s.audit),
	}
}

// Store implements repomanager.RepositoryManager.
type Store struct {
	mu     sync.Mutex
	st     *state
	faults map[string]error
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{st: newState(), faults: map[string]error{}, now: time.Now}
}

var _ repomanager.RepositoryManager = (*Store)(nil)

// FailOn makes every call of op (e.g. "assignments.Create") return err
// until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) RunMigrations(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Repos() repomanager.Repositories {
	return &repos{store: s, auto: true}
}

// WithTx serialises transactions on the store lock.
func (s *Store) WithTx(ctx context.Context, fn repomanager.TxFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
		if err != nil {
			s.st = snapshot
		}
	}()

	return fn(ctx, &repos{store: s})
}

// repos is bound either to the open transaction (auto=false, lock already
// held) or autocommits each call under the lock.
type repos struct {
	store *Store
	auto  bool
}

func (r *repos) Users() users.Repository             { return &userRepo{r} }
func (r *repos) Elections() elections.Repository     { return &electionRepo{r} }
func (r *repos) Ballots() ballots.Repository         { return &ballotRepo{r} }
func (r *repos) Assignments() assignments.Repository { return &assignmentRepo{r} }
func (r *repos) Invitations() invitations.Repository { return &invitationRepo{r} }
func (r *repos) Credentials() credentials.Repository { return &credentialRepo{r} }
func (r *repos) Votes() votes.Repository             { return &voteRepo{r} }
func (r *repos) Audit() audit.Repository             { return &auditRepo{r} }

// do runs fn against the current state, taking the lock in autocommit mode
// and honouring injected faults.
func (r *repos) do(ctx context.Context, op string, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.auto {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if err, ok := r.store.faults[op]; ok {
		return fmt.Errorf("db error: %w", err)
	}
	return fn(r.store.st)
}

func (r *repos) now() time.Time {
	return r.store.now().UTC()
}

func uniqueViolation(constraint string) error {
	return fmt.Errorf("%w: %s", common.ErrUniqueViolation, constraint)
}
