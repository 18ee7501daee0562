package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestCreateGroup(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, carol := ts.trip(t)

	if group.Id == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Trip" {
		t.Errorf("name: expected 'Trip', got '%s'", group.Name)
	}
	want := []string{alice.ID, bob.ID, carol.ID}
	if len(group.Members) != len(want) {
		t.Fatalf("members: expected %v, got %v", want, group.Members)
	}
	for i := range want {
		if group.Members[i] != want[i] {
			t.Errorf("member %d: expected %s, got %s", i, want[i], group.Members[i])
		}
	}
	if group.CreatedBy != alice.ID {
		t.Errorf("created_by: expected %s, got %s", alice.ID, group.CreatedBy)
	}
	if group.CreatedAt == nil {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateGroup_UnknownEmail(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "alice")

	_, err := ts.groups.CreateGroup(context.Background(), as(alice, &pb.CreateGroupRequest{
		Name:         "Trip",
		MemberEmails: []string{"nobody@example.com"},
	}))
	connectErr := expectCode(t, err, connect.CodeNotFound)
	if got := connectErr.Meta().Get(ErrorCodeHeader); got != "user_not_found" {
		t.Errorf("error code: expected user_not_found, got %q", got)
	}
	if got := connectErr.Meta().Get(ErrorFieldHeader); got != "member_emails: nobody@example.com" {
		t.Errorf("error field: got %q", got)
	}
}

func TestCreateGroup_Validation(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "alice")

	_, err := ts.groups.CreateGroup(context.Background(), as(alice, &pb.CreateGroupRequest{
		MemberEmails: []string{"not-an-email"},
	}))
	connectErr := expectCode(t, err, connect.CodeInvalidArgument)
	fields := connectErr.Meta().Values(ErrorFieldHeader)
	want := []string{"member_emails[0]: email", "name: required"}
	if len(fields) != len(want) {
		t.Fatalf("fields: expected %v, got %v", want, fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], fields[i])
		}
	}
}

func TestGroupService_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.groups.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)
}

func TestGetGroup(t *testing.T) {
	ts := setupTestServer(t)
	group, _, bob, _ := ts.trip(t)
	dave := ts.register(t, "dave")

	resp, err := ts.groups.GetGroup(context.Background(), as(bob, &pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != "Trip" || len(resp.Msg.Group.Members) != 3 {
		t.Errorf("unexpected group: %+v", resp.Msg.Group)
	}

	// Outsiders cannot tell the group exists.
	_, err = ts.groups.GetGroup(context.Background(), as(dave, &pb.GetGroupRequest{GroupId: group.Id}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = ts.groups.GetGroup(context.Background(), as(bob, &pb.GetGroupRequest{GroupId: "nonexistent-id"}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestListGroups(t *testing.T) {
	ts := setupTestServer(t)
	_, alice, _, _ := ts.trip(t)
	dave := ts.register(t, "dave")

	if _, err := ts.groups.CreateGroup(context.Background(), as(alice, &pb.CreateGroupRequest{Name: "Solo"})); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	resp, err := ts.groups.ListGroups(context.Background(), as(alice, &pb.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(resp.Msg.Groups))
	}
	if resp.Msg.Groups[0].Name != "Solo" {
		t.Errorf("expected newest group first, got %s", resp.Msg.Groups[0].Name)
	}

	resp, err = ts.groups.ListGroups(context.Background(), as(dave, &pb.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 0 {
		t.Errorf("expected 0 groups, got %d", len(resp.Msg.Groups))
	}
}

func TestAddGroupMembers(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, _, _ := ts.tripWithDinner(t)
	dave := ts.register(t, "dave")

	resp, err := ts.groups.AddGroupMembers(context.Background(), as(alice, &pb.AddGroupMembersRequest{
		GroupId:      group.Id,
		MemberEmails: []string{dave.Email},
	}))
	if err != nil {
		t.Fatalf("AddGroupMembers failed: %v", err)
	}
	if len(resp.Msg.Group.Members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(resp.Msg.Group.Members))
	}

	balances, err := ts.groups.GetGroupBalances(context.Background(), as(dave, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	if got := balanceOf(balances.Msg.Balances, dave.ID); !got.IsZero() {
		t.Errorf("new member should start at zero, got %s", got)
	}
	if got := balanceOf(balances.Msg.Balances, alice.ID); !got.Equal(dec("60")) {
		t.Errorf("existing balances must be untouched, alice has %s", got)
	}

	// Only members may add others.
	eve := ts.register(t, "eve")
	_, err = ts.groups.AddGroupMembers(context.Background(), as(eve, &pb.AddGroupMembersRequest{
		GroupId:      group.Id,
		MemberEmails: []string{eve.Email},
	}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestAddGroupExpense_EqualSplit(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, carol := ts.trip(t)

	resp, err := ts.groups.AddGroupExpense(context.Background(), as(alice, &pb.AddGroupExpenseRequest{
		GroupId: group.Id,
		Amount:  "90",
	}))
	if err != nil {
		t.Fatalf("AddGroupExpense failed: %v", err)
	}

	rows := resp.Msg.Balances
	if len(rows) != 3 {
		t.Fatalf("expected 3 balance rows, got %d", len(rows))
	}
	if rows[0].UserId != alice.ID || rows[0].Name != "alice" || rows[0].Email != alice.Email {
		t.Errorf("first row should be alice with directory details, got %+v", rows[0])
	}
	for id, want := range map[string]string{alice.ID: "60", bob.ID: "-30", carol.ID: "-30"} {
		if got := balanceOf(rows, id); !got.Equal(dec(want)) {
			t.Errorf("balance of %s: expected %s, got %s", id, want, got)
		}
	}
}

func TestAddGroupExpense_CustomSplit(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, carol := ts.trip(t)

	resp, err := ts.groups.AddGroupExpense(context.Background(), as(bob, &pb.AddGroupExpenseRequest{
		GroupId:   group.Id,
		Amount:    "100",
		PaidBy:    alice.ID,
		SplitType: "custom",
		Splits: []*pb.SplitShare{
			{UserId: alice.ID, Percentage: "50"},
			{UserId: bob.ID, Percentage: "30"},
			{UserId: carol.ID, Percentage: "20"},
		},
	}))
	if err != nil {
		t.Fatalf("AddGroupExpense failed: %v", err)
	}
	for id, want := range map[string]string{alice.ID: "50", bob.ID: "-30", carol.ID: "-20"} {
		if got := balanceOf(resp.Msg.Balances, id); !got.Equal(dec(want)) {
			t.Errorf("balance of %s: expected %s, got %s", id, want, got)
		}
	}
}

func TestAddGroupExpense_Rejected(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, carol := ts.tripWithDinner(t)
	dave := ts.register(t, "dave")

	tests := []struct {
		name  string
		actor testUser
		req   *pb.AddGroupExpenseRequest
		code  connect.Code
		field string
	}{
		{
			name:  "zero amount",
			actor: alice,
			req:   &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: "0"},
			code:  connect.CodeInvalidArgument,
			field: "amount: gt=0",
		},
		{
			name:  "amount rounds to zero",
			actor: alice,
			req:   &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: "0.004"},
			code:  connect.CodeInvalidArgument,
			field: "amount: gt=0",
		},
		{
			name:  "percentages sum to 99",
			actor: alice,
			req: &pb.AddGroupExpenseRequest{
				GroupId:   group.Id,
				Amount:    "100",
				SplitType: "custom",
				Splits: []*pb.SplitShare{
					{UserId: alice.ID, Percentage: "33"},
					{UserId: bob.ID, Percentage: "33"},
					{UserId: carol.ID, Percentage: "33"},
				},
			},
			code: connect.CodeInvalidArgument,
		},
		{
			name:  "unknown split type",
			actor: alice,
			req:   &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: "10", SplitType: "shares"},
			code:  connect.CodeInvalidArgument,
			field: "split_type: oneof=equal custom",
		},
		{
			name:  "payer outside group",
			actor: alice,
			req:   &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: "10", PaidBy: dave.ID},
			code:  connect.CodeInvalidArgument,
		},
		{
			name:  "non-member actor",
			actor: dave,
			req:   &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: "10"},
			code:  connect.CodeNotFound,
		},
		{
			name:  "malformed amount",
			actor: alice,
			req:   &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: "ten"},
			code:  connect.CodeInvalidArgument,
			field: "amount: must be a decimal number",
		},
		{
			name:  "unknown group",
			actor: alice,
			req:   &pb.AddGroupExpenseRequest{GroupId: "missing", Amount: "10"},
			code:  connect.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.groups.AddGroupExpense(context.Background(), as(tt.actor, tt.req))
			connectErr := expectCode(t, err, tt.code)
			if tt.field != "" {
				if got := connectErr.Meta().Get(ErrorFieldHeader); got != tt.field {
					t.Errorf("error field: expected %q, got %q", tt.field, got)
				}
			}
		})
	}

	// None of the rejected expenses reached the ledger.
	resp, err := ts.groups.GetGroupBalances(context.Background(), as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	for id, want := range map[string]string{alice.ID: "60", bob.ID: "-30", carol.ID: "-30"} {
		if got := balanceOf(resp.Msg.Balances, id); !got.Equal(dec(want)) {
			t.Errorf("balance of %s: expected %s, got %s", id, want, got)
		}
	}
}

func TestListGroupExpenses(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, _ := ts.tripWithDinner(t)

	if _, err := ts.groups.AddGroupExpense(context.Background(), as(bob, &pb.AddGroupExpenseRequest{
		GroupId:     group.Id,
		Amount:      "30",
		Description: "Taxi",
	})); err != nil {
		t.Fatalf("AddGroupExpense failed: %v", err)
	}

	resp, err := ts.groups.ListGroupExpenses(context.Background(), as(alice, &pb.ListGroupExpensesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListGroupExpenses failed: %v", err)
	}
	if len(resp.Msg.Expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(resp.Msg.Expenses))
	}
	taxi := resp.Msg.Expenses[0]
	if taxi.Description != "Taxi" || taxi.PaidBy != bob.ID || taxi.SplitType != "equal" {
		t.Errorf("expected newest expense first, got %+v", taxi)
	}
	if got := taxi.Deltas[bob.ID]; got != "20.00" {
		t.Errorf("taxi delta for bob: expected 20, got %s", got)
	}
}

func TestSuggestSettlements(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, carol := ts.tripWithDinner(t)

	resp, err := ts.groups.SuggestSettlements(context.Background(), as(carol, &pb.SuggestSettlementsRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("SuggestSettlements failed: %v", err)
	}
	got := resp.Msg.Suggestions
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	for _, p := range got {
		if p.To != alice.ID || p.Amount != "30.00" {
			t.Errorf("unexpected suggestion %+v", p)
		}
		if p.From != bob.ID && p.From != carol.ID {
			t.Errorf("unexpected payer %s", p.From)
		}
	}
}
