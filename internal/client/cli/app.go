package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/unielect/internal/client/client"
	"github.com/dmitrijs2005/unielect/internal/client/config"
	"github.com/dmitrijs2005/unielect/internal/client/repositories/session"
)

type App struct {
	config  *config.Config
	client  client.Client
	session session.Repository
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time

	email string
	role  string
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := client.NewRepositories(db)

	return &App{
		config:  c,
		client:  apiClient,
		session: repos.Session,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.restoreSession(ctx); err != nil {
		log.Printf("could not restore session: %v", err)
	}

	fmt.Fprintln(a.out, "Welcome to unielect CLI (type 'help' for commands)")
	a.runREPL(ctx)
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		log.Printf("closing connection: %v", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.email, a.role)
}

// restoreSession reloads a stored login whose token has not expired yet.
func (a *App) restoreSession(ctx context.Context) error {
	values, err := a.session.List(ctx)
	if err != nil {
		return err
	}

	token := values[session.KeyAccessToken]
	if token == "" {
		return nil
	}

	expiresAt, err := time.Parse(time.RFC3339, values[session.KeyExpiresAt])
	if err != nil || !a.now().Before(expiresAt) {
		return a.session.Clear(ctx)
	}

	a.client.SetAccessToken(token)
	a.email = values[session.KeyEmail]
	a.role = values[session.KeyRole]
	return nil
}

func (a *App) saveSession(ctx context.Context, token string, expiresAt time.Time) error {
	pairs := []struct{ key, value string }{
		{session.KeyAccessToken, token},
		{session.KeyExpiresAt, expiresAt.UTC().Format(time.RFC3339)},
		{session.KeyEmail, a.email},
		{session.KeyRole, a.role},
	}
	for _, p := range pairs {
		if err := a.session.Set(ctx, p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}
