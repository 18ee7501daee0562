package service

import (
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

// timestamp converts Unix seconds; zero means unset.
func timestamp(sec int64) *timestamppb.Timestamp {
	if sec == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(sec, 0))
}

func amounts[M ~map[string]decimal.Decimal](in M) map[string]string {
	out := make(map[string]string, len(in))
	for id, v := range in {
		out[id] = money.Format(v)
	}
	return out
}

func toProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   timestamp(u.CreatedAt),
	}
}

func toProtoGroup(g *models.Group) *pb.Group {
	return &pb.Group{
		Id:        g.ID,
		Name:      g.Name,
		Members:   g.Members,
		CreatedBy: g.CreatedBy,
		CreatedAt: timestamp(g.CreatedAt),
	}
}

func toProtoGroupExpense(e *models.GroupExpense) *pb.GroupExpense {
	return &pb.GroupExpense{
		Id:          e.ID,
		GroupId:     e.GroupID,
		PaidBy:      e.PaidBy,
		Amount:      money.Format(e.Amount),
		SplitType:   string(e.SplitType),
		Description: e.Description,
		Deltas:      amounts(e.Deltas),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   timestamp(e.CreatedAt),
	}
}

func toProtoBalances(rows []models.MemberBalance) []*pb.MemberBalance {
	out := make([]*pb.MemberBalance, len(rows))
	for i, r := range rows {
		out[i] = &pb.MemberBalance{
			UserId: r.UserID,
			Name:   r.Name,
			Email:  r.Email,
			Amount: money.Format(r.Amount),
		}
	}
	return out
}

func toProtoSettlement(s *models.Settlement) *pb.Settlement {
	return &pb.Settlement{
		Id:         s.ID,
		GroupId:    s.GroupID,
		PayerId:    s.PayerID,
		ReceiverId: s.ReceiverID,
		Amount:     money.Format(s.Amount),
		Method:     string(s.Method),
		Status:     string(s.Status),
		CreatedBy:  s.CreatedBy,
		CreatedAt:  timestamp(s.CreatedAt),
		UpdatedAt:  timestamp(s.UpdatedAt),
	}
}

func toProtoSettlements(in []*models.Settlement) []*pb.Settlement {
	out := make([]*pb.Settlement, len(in))
	for i, s := range in {
		out[i] = toProtoSettlement(s)
	}
	return out
}

func toProtoExpense(e *models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:          e.ID,
		Amount:      money.Format(e.Amount),
		Category:    e.Category,
		Description: e.Description,
		Date:        timestamp(e.Date),
		CreatedAt:   timestamp(e.CreatedAt),
		UpdatedAt:   timestamp(e.UpdatedAt),
	}
}

func toShares(in []shareInput) []calculator.Share {
	out := make([]calculator.Share, len(in))
	for i, s := range in {
		out[i] = calculator.Share{Member: s.UserID, Percentage: s.Percentage}
	}
	return out
}
