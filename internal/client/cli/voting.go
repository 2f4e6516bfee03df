package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dustin/go-humanize"
)

func (a *App) IssueCredentials(ctx context.Context, args []string) error {
	electionID, err := a.arg(args, 0, "Election ID")
	if err != nil {
		return err
	}
	identities, err := GetList(a.reader, "Voter identities, one per line", a.out)
	if err != nil {
		return err
	}
	if len(identities) == 0 {
		return fmt.Errorf("no voter identities given")
	}

	issued, err := a.client.IssueCredentials(ctx, electionID, identities)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s credentials issued. They are shown only once:\n", humanize.Comma(int64(len(issued))))
	for _, c := range issued {
		fmt.Fprintf(a.out, "%s\t%s\n", c.VoterIdentity, c.Credential)
	}
	return nil
}

// Vote verifies a credential, asks for one choice per portfolio and casts
// the whole ballot at once.
func (a *App) Vote(ctx context.Context, _ []string) error {
	raw, err := getPassword("Enter your voting credential", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(raw)
	credential := strings.TrimSpace(string(raw))

	s, err := a.client.InitiateVerification(ctx, credential)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (voting closes %s)\n", s.ElectionTitle, humanize.Time(s.GetEndsAt().AsTime()))

	selections, err := a.chooseCandidates(s.Portfolios)
	if err != nil {
		return err
	}
	if len(selections) == 0 {
		fmt.Fprintln(a.out, "No choices made, nothing was cast")
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Cast %d vote(s)? This cannot be undone (yes/no)", len(selections)), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled, nothing was cast")
		return nil
	}

	r, err := a.client.CastBallot(ctx, &pb.CastBallotRequest{
		Credential: credential,
		ElectionId: s.ElectionId,
		Selections: selections,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ballot cast. Receipt %s (%d portfolio(s))\n", r.ReceiptId, r.Portfolios)
	return nil
}

// chooseCandidates asks for a candidate number per portfolio; an empty
// answer skips the portfolio.
func (a *App) chooseCandidates(portfolios []*pb.Portfolio) ([]*pb.Selection, error) {
	var selections []*pb.Selection
	for _, p := range portfolios {
		if len(p.Candidates) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "%s\n", p.Title)
		for i, c := range p.Candidates {
			fmt.Fprintf(a.out, "  [%d] %s\n", i+1, c.Name)
		}

		for {
			answer, err := getSimpleText(a.reader, fmt.Sprintf("Choose 1-%d (empty to skip)", len(p.Candidates)), a.out)
			if err != nil {
				return nil, err
			}
			if answer == "" {
				break
			}
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(p.Candidates) {
				fmt.Fprintln(a.out, "Invalid choice")
				continue
			}
			selections = append(selections, &pb.Selection{PortfolioId: p.Id, CandidateId: p.Candidates[n-1].Id})
			break
		}
	}
	return selections, nil
}
