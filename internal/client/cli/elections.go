package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dustin/go-humanize"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (a *App) printElection(e *pb.Election) {
	fmt.Fprintf(a.out, "%s  %s  [%s]\n", e.Id, e.Title, e.Status)
	scope := e.Scope
	if e.Department != "" {
		scope += " / " + e.Department
	}
	fmt.Fprintf(a.out, "  scope: %s\n", scope)
	fmt.Fprintf(a.out, "  opens: %s (%s)\n", e.GetStartTime().AsTime().Local().Format(inputTimeLayouts[1]), humanize.Time(e.GetStartTime().AsTime()))
	fmt.Fprintf(a.out, "  ends:  %s (%s)\n", e.GetEndTime().AsTime().Local().Format(inputTimeLayouts[1]), humanize.Time(e.GetEndTime().AsTime()))
}

func (a *App) CreateElection(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	scope, err := getSimpleText(a.reader, "Scope (GENERAL or DEPARTMENT, empty for GENERAL)", a.out)
	if err != nil {
		return err
	}
	var department string
	if strings.EqualFold(scope, "DEPARTMENT") {
		if department, err = getSimpleText(a.reader, "Department", a.out); err != nil {
			return err
		}
	}
	start, err := a.readTime("Voting opens (YYYY-MM-DD HH:MM)")
	if err != nil {
		return err
	}
	end, err := a.readTime("Voting ends (YYYY-MM-DD HH:MM)")
	if err != nil {
		return err
	}

	e, err := a.client.CreateElection(ctx, &pb.CreateElectionRequest{
		Title:      title,
		Scope:      strings.ToUpper(scope),
		Department: department,
		StartTime:  timestamppb.New(start),
		EndTime:    timestamppb.New(end),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Election created:")
	a.printElection(e)
	return nil
}

func (a *App) readTime(prompt string) (t time.Time, err error) {
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return t, err
	}
	return parseInputTime(v)
}

func (a *App) ShowElection(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	e, err := a.client.GetElection(ctx, id)
	if err != nil {
		return err
	}
	a.printElection(e)
	return nil
}

// ExtendElection moves the end of a live election. Any other change is
// refused by the server once voting is open.
func (a *App) ExtendElection(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	raw := strings.Join(args[min(1, len(args)):], " ")
	if raw == "" {
		if raw, err = a.arg(nil, 0, "New end (YYYY-MM-DD HH:MM)"); err != nil {
			return err
		}
	}
	end, err := parseInputTime(raw)
	if err != nil {
		return err
	}

	e, err := a.client.UpdateElection(ctx, &pb.UpdateElectionRequest{ElectionId: id, EndTime: timestamppb.New(end)})
	if err != nil {
		return err
	}
	a.printElection(e)
	return nil
}

func (a *App) RequestApproval(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	e, err := a.client.RequestApproval(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Approval requested, election is now %s\n", e.Status)
	return nil
}

func (a *App) SetStatus(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	st, err := a.arg(args[min(1, len(args)):], 0, "New status")
	if err != nil {
		return err
	}
	e, err := a.client.SetStatus(ctx, &pb.SetStatusRequest{ElectionId: id, Status: strings.ToUpper(st)})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Election %s is now %s\n", e.Id, e.Status)
	return nil
}

func (a *App) DeleteElection(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete election %s and all its data? (yes/no)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.client.DeleteElection(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) AddPortfolio(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	title := strings.Join(args[min(1, len(args)):], " ")
	if title == "" {
		if title, err = a.arg(nil, 0, "Portfolio title"); err != nil {
			return err
		}
	}
	p, err := a.client.AddPortfolio(ctx, id, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Portfolio %s added: %s\n", p.Id, p.Title)
	return nil
}

func (a *App) AddCandidate(ctx context.Context, args []string) error {
	portfolioID, err := a.arg(args, 0, "Portfolio ID")
	if err != nil {
		return err
	}
	name := strings.Join(args[min(1, len(args)):], " ")
	if name == "" {
		if name, err = a.arg(nil, 0, "Candidate name"); err != nil {
			return err
		}
	}
	manifesto, err := getSimpleText(a.reader, "Manifesto (optional)", a.out)
	if err != nil {
		return err
	}
	c, err := a.client.AddCandidate(ctx, &pb.AddCandidateRequest{PortfolioId: portfolioID, Name: name, Manifesto: manifesto})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Candidate %s added: %s\n", c.Id, c.Name)
	return nil
}

func (a *App) printBallot(portfolios []*pb.Portfolio) {
	for _, p := range portfolios {
		fmt.Fprintf(a.out, "%d. %s  (%s)\n", p.Position, p.Title, p.Id)
		for i, c := range p.Candidates {
			fmt.Fprintf(a.out, "   [%d] %s  (%s)\n", i+1, c.Name, c.Id)
		}
	}
}

func (a *App) Ballot(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	b, err := a.client.GetBallot(ctx, id)
	if err != nil {
		return err
	}
	if len(b.Portfolios) == 0 {
		fmt.Fprintln(a.out, "The ballot is empty")
		return nil
	}
	a.printBallot(b.Portfolios)
	return nil
}
