package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/unielect/internal/client/client"
)

type command struct {
	name       string
	usage      string
	needsLogin bool
	run        func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "login", usage: "login [email]", run: (*App).Login},
	{name: "logout", usage: "logout", needsLogin: true, run: (*App).Logout},
	{name: "whoami", usage: "whoami", needsLogin: true, run: (*App).WhoAmI},
	{name: "accept-invite", usage: "accept-invite [token]", run: (*App).AcceptInvite},
	{name: "vote", usage: "vote", run: (*App).Vote},

	{name: "create-election", usage: "create-election", needsLogin: true, run: (*App).CreateElection},
	{name: "show", usage: "show <election-id>", needsLogin: true, run: (*App).ShowElection},
	{name: "extend", usage: "extend <election-id> <new end>", needsLogin: true, run: (*App).ExtendElection},
	{name: "request-approval", usage: "request-approval <election-id>", needsLogin: true, run: (*App).RequestApproval},
	{name: "set-status", usage: "set-status <election-id> <status>", needsLogin: true, run: (*App).SetStatus},
	{name: "delete-election", usage: "delete-election <election-id>", needsLogin: true, run: (*App).DeleteElection},
	{name: "add-portfolio", usage: "add-portfolio <election-id> [title]", needsLogin: true, run: (*App).AddPortfolio},
	{name: "add-candidate", usage: "add-candidate <portfolio-id> [name]", needsLogin: true, run: (*App).AddCandidate},
	{name: "ballot", usage: "ballot <election-id>", needsLogin: true, run: (*App).Ballot},

	{name: "invite", usage: "invite [email] [role] [election-id]", needsLogin: true, run: (*App).Invite},
	{name: "reassign", usage: "reassign <email> <election-id>", needsLogin: true, run: (*App).Reassign},
	{name: "issue-credentials", usage: "issue-credentials <election-id>", needsLogin: true, run: (*App).IssueCredentials},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Available commands:")
	for _, c := range commands {
		if c.needsLogin && !a.isLoggedIn() {
			continue
		}
		fmt.Fprintf(a.out, "  %s\n", c.usage)
	}
	fmt.Fprintln(a.out, "  help\n  exit")
}

// runREPL reads commands from a.reader until EOF or "exit".
// Command errors are printed and never end the loop.
func (a *App) runREPL(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "unielect %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if errors.Is(err, io.EOF) {
				return
			}
			continue
		}

		name, args := parts[0], parts[1:]
		switch name {
		case "help":
			a.printHelp()
			continue
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		}

		cmd, ok := lookupCommand(name)
		if !ok {
			fmt.Fprintln(a.out, "Unknown command:", name)
			continue
		}
		if cmd.needsLogin && !a.isLoggedIn() {
			fmt.Fprintln(a.out, "Error:", client.ErrNotLoggedIn)
			continue
		}
		if err := cmd.run(a, ctx, args); err != nil {
			a.printError(ctx, err)
		}
	}
}

// printError reports err and drops the stored session when the server no
// longer accepts the token.
func (a *App) printError(ctx context.Context, err error) {
	fmt.Fprintln(a.out, "Error:", err)
	if errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn() {
		fmt.Fprintln(a.out, "Your session has ended, please log in again.")
		_ = a.forget(ctx)
	}
}

// arg returns args[i] or asks for it.
func (a *App) arg(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", fmt.Errorf("%s is required", strings.ToLower(prompt))
	}
	return v, nil
}
