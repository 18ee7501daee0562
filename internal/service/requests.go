package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/money"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

// Inputs decoded from the wire messages. Amounts arrive as decimal strings
// and timestamps as google.protobuf.Timestamp; the `validate` tags are
// checked before any state is touched. Field names follow the proto fields.

type registerInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Password    string `json:"password" validate:"required"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type searchUsersInput struct {
	Query string `json:"query" validate:"min=2,max=100"`
}

type createGroupInput struct {
	Name         string   `json:"name" validate:"required,max=100"`
	MemberEmails []string `json:"member_emails" validate:"dive,email"`
}

type addMembersInput struct {
	GroupID      string   `json:"group_id" validate:"required"`
	MemberEmails []string `json:"member_emails" validate:"required,min=1,dive,email"`
}

type groupIDInput struct {
	GroupID string `json:"group_id" validate:"required"`
}

type shareInput struct {
	UserID     string          `json:"user_id" validate:"required"`
	Percentage decimal.Decimal `json:"percentage" validate:"gte=0,lte=100"`
}

type groupExpenseInput struct {
	GroupID     string          `json:"group_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	PaidBy      string          `json:"paid_by"`
	SplitType   string          `json:"split_type" validate:"omitempty,oneof=equal custom"`
	Splits      []shareInput    `json:"splits" validate:"required_if=SplitType custom,dive"`
	Description string          `json:"description" validate:"max=500"`
}

type proposeInput struct {
	GroupID    string          `json:"group_id" validate:"required"`
	ReceiverID string          `json:"receiver_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Method     string          `json:"method" validate:"required,oneof=card upi cash bank_transfer"`
}

type settleDirectInput struct {
	GroupID    string          `json:"group_id" validate:"required"`
	ReceiverID string          `json:"receiver_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Method     string          `json:"method" validate:"omitempty,oneof=card upi cash bank_transfer"`
}

type settlementIDInput struct {
	SettlementID string `json:"settlement_id" validate:"required"`
}

type transactionsInput struct {
	GroupID string `json:"group_id" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=pending completed rejected"`
}

type expenseInput struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Category    string          `json:"category" validate:"required,max=50"`
	Description string          `json:"description" validate:"max=500"`
	Date        int64           `json:"date" validate:"gte=0"`
}

type updateExpenseInput struct {
	ExpenseID   string          `json:"expense_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Category    string          `json:"category" validate:"required,max=50"`
	Description string          `json:"description" validate:"max=500"`
	Date        int64           `json:"date" validate:"gte=0"`
}

type expenseIDInput struct {
	ExpenseID string `json:"expense_id" validate:"required"`
}

func decodeGroupExpense(msg *pb.AddGroupExpenseRequest) (*groupExpenseInput, error) {
	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, err
	}
	in := &groupExpenseInput{
		GroupID:     msg.GetGroupId(),
		Amount:      amount,
		PaidBy:      msg.GetPaidBy(),
		SplitType:   msg.GetSplitType(),
		Description: strings.TrimSpace(msg.GetDescription()),
	}
	for i, s := range msg.GetSplits() {
		pct, err := parsePercentage(fmt.Sprintf("splits[%d].percentage", i), s.GetPercentage())
		if err != nil {
			return nil, err
		}
		in.Splits = append(in.Splits, shareInput{UserID: s.GetUserId(), Percentage: pct})
	}
	return in, nil
}

func decodePropose(msg *pb.ProposeSettlementRequest) (*proposeInput, error) {
	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, err
	}
	return &proposeInput{
		GroupID:    msg.GetGroupId(),
		ReceiverID: msg.GetReceiverId(),
		Amount:     amount,
		Method:     msg.GetMethod(),
	}, nil
}

func decodeSettleDirect(msg *pb.SettleDirectRequest) (*settleDirectInput, error) {
	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, err
	}
	return &settleDirectInput{
		GroupID:    msg.GetGroupId(),
		ReceiverID: msg.GetReceiverId(),
		Amount:     amount,
		Method:     msg.GetMethod(),
	}, nil
}

// Category and description are trimmed before validation so a blank
// category fails "required".
func decodeCreateExpense(msg *pb.CreateExpenseRequest) (*expenseInput, error) {
	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, err
	}
	date, err := unixSeconds("date", msg.GetDate())
	if err != nil {
		return nil, err
	}
	return &expenseInput{
		Amount:      amount,
		Category:    strings.TrimSpace(msg.GetCategory()),
		Description: strings.TrimSpace(msg.GetDescription()),
		Date:        date,
	}, nil
}

func decodeUpdateExpense(msg *pb.UpdateExpenseRequest) (*updateExpenseInput, error) {
	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, err
	}
	date, err := unixSeconds("date", msg.GetDate())
	if err != nil {
		return nil, err
	}
	return &updateExpenseInput{
		ExpenseID:   msg.GetExpenseId(),
		Amount:      amount,
		Category:    strings.TrimSpace(msg.GetCategory()),
		Description: strings.TrimSpace(msg.GetDescription()),
		Date:        date,
	}, nil
}

// parseAmount reads a money amount rounded to cents. An empty string reads
// as zero and is left to the `gt=0` rule.
func parseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := money.Parse(s)
	if err != nil {
		return decimal.Zero, apperr.ErrInvalidAmount.WithMessage("%s must be a decimal number", field).WithField(field, "must be a decimal number")
	}
	return d, nil
}

func parsePercentage(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.ErrInvalidSplit.WithField(field, "must be a decimal number")
	}
	return d, nil
}

// unixSeconds converts an optional timestamp; unset reads as 0.
func unixSeconds(field string, ts *timestamppb.Timestamp) (int64, error) {
	if ts == nil {
		return 0, nil
	}
	if err := ts.CheckValid(); err != nil {
		return 0, apperr.ErrInvalidArgument.WithField(field, "invalid timestamp")
	}
	return ts.GetSeconds(), nil
}
