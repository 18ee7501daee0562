package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestExpenseCRUD(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	alice := ts.register(t, "alice")

	created, err := ts.expenses.CreateExpense(ctx, as(alice, &pb.CreateExpenseRequest{
		Amount:      "12.345",
		Category:    " Food ",
		Description: "Lunch",
		Date:        &timestamppb.Timestamp{Seconds: 1700000000},
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	e := created.Msg.Expense
	if e.Id == "" {
		t.Fatal("expected non-empty expense ID")
	}
	if e.Amount != "12.35" {
		t.Errorf("amount: expected 12.35, got %s", e.Amount)
	}
	if e.Category != "Food" {
		t.Errorf("category: expected 'Food', got '%s'", e.Category)
	}

	got, err := ts.expenses.GetExpense(ctx, as(alice, &pb.GetExpenseRequest{ExpenseId: e.Id}))
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	if got.Msg.Expense.Date.GetSeconds() != 1700000000 || got.Msg.Expense.Description != "Lunch" {
		t.Errorf("unexpected expense: %+v", got.Msg.Expense)
	}

	updated, err := ts.expenses.UpdateExpense(ctx, as(alice, &pb.UpdateExpenseRequest{
		ExpenseId: e.Id,
		Amount:    "20",
		Category:  "Travel",
	}))
	if err != nil {
		t.Fatalf("UpdateExpense failed: %v", err)
	}
	if updated.Msg.Expense.Amount != "20.00" || updated.Msg.Expense.Category != "Travel" {
		t.Errorf("unexpected update: %+v", updated.Msg.Expense)
	}
	if updated.Msg.Expense.Date.GetSeconds() != 1700000000 {
		t.Errorf("an omitted date must keep the old one, got %v", updated.Msg.Expense.Date)
	}

	if _, err := ts.expenses.DeleteExpense(ctx, as(alice, &pb.DeleteExpenseRequest{ExpenseId: e.Id})); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	_, err = ts.expenses.GetExpense(ctx, as(alice, &pb.GetExpenseRequest{ExpenseId: e.Id}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestCreateExpense_DefaultsDate(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "alice")

	resp, err := ts.expenses.CreateExpense(context.Background(), as(alice, &pb.CreateExpenseRequest{
		Amount:   "5",
		Category: "Coffee",
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	e := resp.Msg.Expense
	if e.Date == nil || e.Date.GetSeconds() != e.CreatedAt.GetSeconds() {
		t.Errorf("date should default to creation time, got %+v", resp.Msg.Expense)
	}
}

func TestCreateExpense_Validation(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "alice")

	tests := []struct {
		name  string
		req   *pb.CreateExpenseRequest
		field string
	}{
		{"zero amount", &pb.CreateExpenseRequest{Amount: "0", Category: "Food"}, "amount: gt=0"},
		{"rounds to zero", &pb.CreateExpenseRequest{Amount: "0.001", Category: "Food"}, "amount: gt=0"},
		{"malformed amount", &pb.CreateExpenseRequest{Amount: "1,50", Category: "Food"}, "amount: must be a decimal number"},
		{"missing category", &pb.CreateExpenseRequest{Amount: "5"}, "category: required"},
		{"blank category", &pb.CreateExpenseRequest{Amount: "5", Category: "   "}, "category: required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.expenses.CreateExpense(context.Background(), as(alice, tt.req))
			connectErr := expectCode(t, err, connect.CodeInvalidArgument)
			if got := connectErr.Meta().Get(ErrorFieldHeader); got != tt.field {
				t.Errorf("error field: expected %q, got %q", tt.field, got)
			}
		})
	}
}

func TestExpenses_ScopedToOwner(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	alice := ts.register(t, "alice")
	bob := ts.register(t, "bob")

	for _, date := range []int64{1700000000, 1700000100} {
		if _, err := ts.expenses.CreateExpense(ctx, as(alice, &pb.CreateExpenseRequest{
			Amount:   "10",
			Category: "Food",
			Date:     &timestamppb.Timestamp{Seconds: date},
		})); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}

	list, err := ts.expenses.ListExpenses(ctx, as(alice, &pb.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(list.Msg.Expenses))
	}
	if list.Msg.Expenses[0].Date.GetSeconds() != 1700000100 {
		t.Errorf("expected newest first, got date %v", list.Msg.Expenses[0].Date)
	}
	id := list.Msg.Expenses[0].Id

	bobList, err := ts.expenses.ListExpenses(ctx, as(bob, &pb.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(bobList.Msg.Expenses) != 0 {
		t.Errorf("bob should see no expenses, got %d", len(bobList.Msg.Expenses))
	}

	_, err = ts.expenses.GetExpense(ctx, as(bob, &pb.GetExpenseRequest{ExpenseId: id}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = ts.expenses.UpdateExpense(ctx, as(bob, &pb.UpdateExpenseRequest{ExpenseId: id, Amount: "1", Category: "Food"}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = ts.expenses.DeleteExpense(ctx, as(bob, &pb.DeleteExpenseRequest{ExpenseId: id}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestUpdateExpense_BlankCategory(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	alice := ts.register(t, "alice")

	created, err := ts.expenses.CreateExpense(ctx, as(alice, &pb.CreateExpenseRequest{Amount: "5", Category: "Food"}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	_, err = ts.expenses.UpdateExpense(ctx, as(alice, &pb.UpdateExpenseRequest{
		ExpenseId: created.Msg.Expense.Id,
		Amount:    "5",
		Category:  " \t ",
	}))
	connectErr := expectCode(t, err, connect.CodeInvalidArgument)
	if got := connectErr.Meta().Get(ErrorFieldHeader); got != "category: required" {
		t.Errorf("error field: expected %q, got %q", "category: required", got)
	}

	got, err := ts.expenses.GetExpense(ctx, as(alice, &pb.GetExpenseRequest{ExpenseId: created.Msg.Expense.Id}))
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	if got.Msg.Expense.Category != "Food" {
		t.Errorf("a rejected update must not change the expense, category is %q", got.Msg.Expense.Category)
	}
}
