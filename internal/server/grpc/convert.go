package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fromTimestamp returns the zero time for an unset timestamp so that
// validation reports it as missing.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func toElection(e *models.Election) *pb.Election {
	out := &pb.Election{
		Id:         e.ID,
		Title:      e.Title,
		Status:     string(e.Status),
		Scope:      string(e.Scope),
		Department: e.Department,
		StartTime:  timestamppb.New(e.StartTime),
		EndTime:    timestamppb.New(e.EndTime),
		CreatorId:  e.CreatorID,
	}
	if e.ApproverID != nil {
		out.ApproverId = *e.ApproverID
	}
	return out
}

func toCandidate(c *models.Candidate) *pb.Candidate {
	return &pb.Candidate{Id: c.ID, Name: c.Name, Manifesto: c.Manifesto, Position: int32(c.Position)}
}

func toPortfolio(p *models.Portfolio) *pb.Portfolio {
	return &pb.Portfolio{Id: p.ID, Title: p.Title, Position: int32(p.Position)}
}

func toBallot(entries []services.BallotEntry) []*pb.Portfolio {
	out := make([]*pb.Portfolio, 0, len(entries))
	for _, e := range entries {
		p := toPortfolio(e.Portfolio)
		for _, c := range e.Candidates {
			p.Candidates = append(p.Candidates, toCandidate(c))
		}
		out = append(out, p)
	}
	return out
}

func toReceipt(r *services.VoteReceipt) *pb.VoteReceipt {
	return &pb.VoteReceipt{
		ReceiptId:  r.ReceiptID,
		ElectionId: r.ElectionID,
		Portfolios: int32(r.Portfolios),
		CastAt:     timestamppb.New(r.CastAt),
	}
}

func toSelections(in []*pb.Selection) []services.Selection {
	out := make([]services.Selection, 0, len(in))
	for _, s := range in {
		out = append(out, services.Selection{PortfolioID: s.GetPortfolioId(), CandidateID: s.GetCandidateId()})
	}
	return out
}
