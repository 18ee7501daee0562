package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/settlement"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// SettlementService implements the Connect SettlementService.
// The payer of a proposed or direct settlement is always the caller.
type SettlementService struct {
	protoconnect.UnimplementedSettlementServiceHandler
	workflow *settlement.Workflow
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(workflow *settlement.Workflow) *SettlementService {
	return &SettlementService{workflow: workflow}
}

// ProposeSettlement records a pending payment from the caller to the receiver.
func (s *SettlementService) ProposeSettlement(ctx context.Context, req *connect.Request[pb.ProposeSettlementRequest]) (*connect.Response[pb.SettlementResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ProposeSettlement request received",
		"group_id", req.Msg.GroupId,
		"receiver_id", req.Msg.ReceiverId,
		"amount", req.Msg.Amount,
	)
	in, err := decodePropose(req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	st, err := s.workflow.Propose(ctx, settlement.Request{
		GroupID:    in.GroupID,
		PayerID:    userID,
		ReceiverID: in.ReceiverID,
		Amount:     in.Amount,
		Method:     models.PaymentMethod(in.Method),
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.SettlementResponse{Settlement: toProtoSettlement(st)}), nil
}

// ConfirmSettlement completes a pending settlement addressed to the caller.
func (s *SettlementService) ConfirmSettlement(ctx context.Context, req *connect.Request[pb.ConfirmSettlementRequest]) (*connect.Response[pb.SettlementResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ConfirmSettlement request received", "settlement_id", req.Msg.SettlementId)
	if err := validateRequest(&settlementIDInput{SettlementID: req.Msg.SettlementId}); err != nil {
		return nil, toConnectError(err)
	}

	st, err := s.workflow.Confirm(ctx, req.Msg.SettlementId, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.SettlementResponse{Settlement: toProtoSettlement(st)}), nil
}

// RejectSettlement declines a pending settlement addressed to the caller.
func (s *SettlementService) RejectSettlement(ctx context.Context, req *connect.Request[pb.RejectSettlementRequest]) (*connect.Response[pb.SettlementResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RejectSettlement request received", "settlement_id", req.Msg.SettlementId)
	if err := validateRequest(&settlementIDInput{SettlementID: req.Msg.SettlementId}); err != nil {
		return nil, toConnectError(err)
	}

	st, err := s.workflow.Reject(ctx, req.Msg.SettlementId, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.SettlementResponse{Settlement: toProtoSettlement(st)}), nil
}

// SettleDirect applies a payment from the caller immediately.
func (s *SettlementService) SettleDirect(ctx context.Context, req *connect.Request[pb.SettleDirectRequest]) (*connect.Response[pb.SettleDirectResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SettleDirect request received",
		"group_id", req.Msg.GroupId,
		"receiver_id", req.Msg.ReceiverId,
		"amount", req.Msg.Amount,
	)
	in, err := decodeSettleDirect(req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	st, balances, err := s.workflow.SettleDirect(ctx, settlement.Request{
		GroupID:    in.GroupID,
		PayerID:    userID,
		ReceiverID: in.ReceiverID,
		Amount:     in.Amount,
		Method:     models.PaymentMethod(in.Method),
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.SettleDirectResponse{
		Settlement: toProtoSettlement(st),
		Balances:   amounts(balances),
	}), nil
}

// ListPendingSettlements returns settlements awaiting the caller's decision.
func (s *SettlementService) ListPendingSettlements(ctx context.Context, req *connect.Request[pb.ListPendingSettlementsRequest]) (*connect.Response[pb.ListSettlementsResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.workflow.ListPending(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: toProtoSettlements(list)}), nil
}

// ListGroupTransactions returns a group's settlements, optionally by status.
func (s *SettlementService) ListGroupTransactions(ctx context.Context, req *connect.Request[pb.ListGroupTransactionsRequest]) (*connect.Response[pb.ListSettlementsResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	in := &transactionsInput{GroupID: req.Msg.GroupId, Status: req.Msg.Status}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	list, err := s.workflow.ListGroupTransactions(ctx, in.GroupID, userID, models.SettlementStatus(in.Status))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: toProtoSettlements(list)}), nil
}
