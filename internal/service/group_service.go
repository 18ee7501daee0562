package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/groups"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	groups *groups.Service
}

// NewGroupService creates a new GroupService backed by the group operations.
func NewGroupService(groups *groups.Service) *GroupService {
	return &GroupService{groups: groups}
}

// CreateGroup creates a group with the caller and the members named by e-mail.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.GroupResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.MemberEmails),
	)
	in := &createGroupInput{Name: req.Msg.Name, MemberEmails: req.Msg.MemberEmails}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	memberIDs, err := s.groups.ResolveEmails(ctx, in.MemberEmails)
	if err != nil {
		return nil, toConnectError(err)
	}

	group, err := s.groups.CreateGroup(ctx, in.Name, memberIDs, userID)
	if err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GroupResponse{Group: toProtoGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GroupResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(&groupIDInput{GroupID: req.Msg.GroupId}); err != nil {
		return nil, toConnectError(err)
	}

	group, err := s.groups.GetGroup(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GroupResponse{Group: toProtoGroup(group)}), nil
}

// ListGroups returns the caller's groups, newest first.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.groups.ListGroups(ctx, userID)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(list))
	for i, g := range list {
		out[i] = toProtoGroup(g)
	}
	slog.Info("ListGroups successful", "count", len(out))
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// AddGroupMembers joins users, named by e-mail, to a group.
func (s *GroupService) AddGroupMembers(ctx context.Context, req *connect.Request[pb.AddGroupMembersRequest]) (*connect.Response[pb.GroupResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddGroupMembers request received",
		"group_id", req.Msg.GroupId,
		"members_count", len(req.Msg.MemberEmails),
	)
	in := &addMembersInput{GroupID: req.Msg.GroupId, MemberEmails: req.Msg.MemberEmails}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	memberIDs, err := s.groups.ResolveEmails(ctx, in.MemberEmails)
	if err != nil {
		return nil, toConnectError(err)
	}

	group, err := s.groups.AddMembers(ctx, in.GroupID, userID, memberIDs)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GroupResponse{Group: toProtoGroup(group)}), nil
}

// AddGroupExpense splits an expense across the group and returns the
// balances right after it was applied.
func (s *GroupService) AddGroupExpense(ctx context.Context, req *connect.Request[pb.AddGroupExpenseRequest]) (*connect.Response[pb.BalancesResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddGroupExpense request received",
		"group_id", req.Msg.GroupId,
		"amount", req.Msg.Amount,
		"split_type", req.Msg.SplitType,
	)
	in, err := decodeGroupExpense(req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	balances, err := s.groups.AddExpense(ctx, groups.ExpenseRequest{
		GroupID:     in.GroupID,
		ActorID:     userID,
		PaidBy:      in.PaidBy,
		Amount:      in.Amount,
		SplitType:   models.SplitType(in.SplitType),
		Splits:      toShares(in.Splits),
		Description: in.Description,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	rows, err := s.groups.BalanceRows(ctx, in.GroupID, balances)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.BalancesResponse{Balances: toProtoBalances(rows)}), nil
}

// ListGroupExpenses returns the group's expense log, newest first.
func (s *GroupService) ListGroupExpenses(ctx context.Context, req *connect.Request[pb.ListGroupExpensesRequest]) (*connect.Response[pb.ListGroupExpensesResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(&groupIDInput{GroupID: req.Msg.GroupId}); err != nil {
		return nil, toConnectError(err)
	}

	expenses, err := s.groups.ListExpenses(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.GroupExpense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoGroupExpense(e)
	}
	return connect.NewResponse(&pb.ListGroupExpensesResponse{Expenses: out}), nil
}

// GetGroupBalances returns every member's balance.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.BalancesResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(&groupIDInput{GroupID: req.Msg.GroupId}); err != nil {
		return nil, toConnectError(err)
	}

	rows, err := s.groups.GetBalances(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.BalancesResponse{Balances: toProtoBalances(rows)}), nil
}

// SuggestSettlements proposes payments that would clear the group's balances.
func (s *GroupService) SuggestSettlements(ctx context.Context, req *connect.Request[pb.SuggestSettlementsRequest]) (*connect.Response[pb.SuggestSettlementsResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(&groupIDInput{GroupID: req.Msg.GroupId}); err != nil {
		return nil, toConnectError(err)
	}

	edges, err := s.groups.SuggestSettlements(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.SuggestedPayment, len(edges))
	for i, e := range edges {
		out[i] = &pb.SuggestedPayment{From: e.From, To: e.To, Amount: money.Format(e.Amount)}
	}
	return connect.NewResponse(&pb.SuggestSettlementsResponse{Suggestions: out}), nil
}
