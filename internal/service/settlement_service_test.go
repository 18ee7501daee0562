package service

import (
	"context"
	"sync"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestProposeAndConfirmSettlement(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	group, alice, bob, carol := ts.tripWithDinner(t)

	proposed, err := ts.settlements.ProposeSettlement(ctx, as(bob, &pb.ProposeSettlementRequest{
		GroupId:    group.Id,
		ReceiverId: alice.ID,
		Amount:     "30",
		Method:     "upi",
	}))
	if err != nil {
		t.Fatalf("ProposeSettlement failed: %v", err)
	}
	st := proposed.Msg.Settlement
	if st.Status != "pending" || st.PayerId != bob.ID || st.CreatedBy != bob.ID {
		t.Fatalf("unexpected settlement: %+v", st)
	}

	// Proposing leaves the ledger alone.
	balances, err := ts.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	if got := balanceOf(balances.Msg.Balances, bob.ID); !got.Equal(dec("-30")) {
		t.Errorf("bob before confirm: expected -30, got %s", got)
	}

	pending, err := ts.settlements.ListPendingSettlements(ctx, as(alice, &pb.ListPendingSettlementsRequest{}))
	if err != nil {
		t.Fatalf("ListPendingSettlements failed: %v", err)
	}
	if len(pending.Msg.Settlements) != 1 || pending.Msg.Settlements[0].Id != st.Id {
		t.Fatalf("expected the proposal in alice's pending list, got %+v", pending.Msg.Settlements)
	}

	// Only the receiver confirms.
	for _, u := range []testUser{bob, carol} {
		_, err = ts.settlements.ConfirmSettlement(ctx, as(u, &pb.ConfirmSettlementRequest{SettlementId: st.Id}))
		expectCode(t, err, connect.CodePermissionDenied)
	}

	confirmed, err := ts.settlements.ConfirmSettlement(ctx, as(alice, &pb.ConfirmSettlementRequest{SettlementId: st.Id}))
	if err != nil {
		t.Fatalf("ConfirmSettlement failed: %v", err)
	}
	if confirmed.Msg.Settlement.Status != "completed" {
		t.Errorf("expected completed, got %s", confirmed.Msg.Settlement.Status)
	}

	_, err = ts.settlements.ConfirmSettlement(ctx, as(alice, &pb.ConfirmSettlementRequest{SettlementId: st.Id}))
	connectErr := expectCode(t, err, connect.CodeFailedPrecondition)
	if got := connectErr.Meta().Get(ErrorCodeHeader); got != "invalid_state" {
		t.Errorf("error code: expected invalid_state, got %q", got)
	}

	balances, err = ts.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	for id, want := range map[string]string{alice.ID: "30", bob.ID: "0", carol.ID: "-30"} {
		if got := balanceOf(balances.Msg.Balances, id); !got.Equal(dec(want)) {
			t.Errorf("balance of %s: expected %s, got %s", id, want, got)
		}
	}
}

func TestRejectSettlement(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	group, alice, bob, _ := ts.tripWithDinner(t)

	proposed, err := ts.settlements.ProposeSettlement(ctx, as(bob, &pb.ProposeSettlementRequest{
		GroupId:    group.Id,
		ReceiverId: alice.ID,
		Amount:     "10",
		Method:     "cash",
	}))
	if err != nil {
		t.Fatalf("ProposeSettlement failed: %v", err)
	}
	id := proposed.Msg.Settlement.Id

	_, err = ts.settlements.RejectSettlement(ctx, as(bob, &pb.RejectSettlementRequest{SettlementId: id}))
	expectCode(t, err, connect.CodePermissionDenied)

	rejected, err := ts.settlements.RejectSettlement(ctx, as(alice, &pb.RejectSettlementRequest{SettlementId: id}))
	if err != nil {
		t.Fatalf("RejectSettlement failed: %v", err)
	}
	if rejected.Msg.Settlement.Status != "rejected" {
		t.Errorf("expected rejected, got %s", rejected.Msg.Settlement.Status)
	}

	_, err = ts.settlements.ConfirmSettlement(ctx, as(alice, &pb.ConfirmSettlementRequest{SettlementId: id}))
	expectCode(t, err, connect.CodeFailedPrecondition)

	_, err = ts.settlements.RejectSettlement(ctx, as(alice, &pb.RejectSettlementRequest{SettlementId: "missing"}))
	expectCode(t, err, connect.CodeNotFound)

	balances, err := ts.groups.GetGroupBalances(ctx, as(bob, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	if got := balanceOf(balances.Msg.Balances, bob.ID); !got.Equal(dec("-30")) {
		t.Errorf("rejection must not move balances, bob has %s", got)
	}
}

func TestProposeSettlement_Validation(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, _ := ts.tripWithDinner(t)
	dave := ts.register(t, "dave")

	tests := []struct {
		name  string
		actor testUser
		req   *pb.ProposeSettlementRequest
		code  connect.Code
	}{
		{"negative amount", bob, &pb.ProposeSettlementRequest{GroupId: group.Id, ReceiverId: alice.ID, Amount: "-5", Method: "cash"}, connect.CodeInvalidArgument},
		{"unknown method", bob, &pb.ProposeSettlementRequest{GroupId: group.Id, ReceiverId: alice.ID, Amount: "5", Method: "cheque"}, connect.CodeInvalidArgument},
		{"self settlement", bob, &pb.ProposeSettlementRequest{GroupId: group.Id, ReceiverId: bob.ID, Amount: "5", Method: "cash"}, connect.CodeInvalidArgument},
		{"receiver outside group", bob, &pb.ProposeSettlementRequest{GroupId: group.Id, ReceiverId: dave.ID, Amount: "5", Method: "cash"}, connect.CodeInvalidArgument},
		{"unknown group", bob, &pb.ProposeSettlementRequest{GroupId: "missing", ReceiverId: alice.ID, Amount: "5", Method: "cash"}, connect.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.settlements.ProposeSettlement(context.Background(), as(tt.actor, tt.req))
			expectCode(t, err, tt.code)
		})
	}
}

func TestSettleDirect(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	group, alice, bob, carol := ts.tripWithDinner(t)

	_, err := ts.settlements.SettleDirect(ctx, as(bob, &pb.SettleDirectRequest{
		GroupId:    group.Id,
		ReceiverId: alice.ID,
		Amount:     "40",
	}))
	connectErr := expectCode(t, err, connect.CodeInvalidArgument)
	if got := connectErr.Message(); got != "maximum settlement allowed is 30.00" {
		t.Errorf("message: got %q", got)
	}
	if got := connectErr.Meta().Get(ErrorFieldHeader); got != "max: 30.00" {
		t.Errorf("error field: got %q", got)
	}

	// Carol is not owed anything.
	_, err = ts.settlements.SettleDirect(ctx, as(bob, &pb.SettleDirectRequest{
		GroupId:    group.Id,
		ReceiverId: carol.ID,
		Amount:     "5",
	}))
	expectCode(t, err, connect.CodeInvalidArgument)

	resp, err := ts.settlements.SettleDirect(ctx, as(bob, &pb.SettleDirectRequest{
		GroupId:    group.Id,
		ReceiverId: alice.ID,
		Amount:     "12.50",
	}))
	if err != nil {
		t.Fatalf("SettleDirect failed: %v", err)
	}
	st := resp.Msg.Settlement
	if st.Status != "completed" || st.Method != "card" {
		t.Errorf("expected completed card settlement, got %+v", st)
	}
	if got := resp.Msg.Balances[bob.ID]; got != "-17.50" {
		t.Errorf("bob after direct settle: expected -17.50, got %s", got)
	}
	if got := resp.Msg.Balances[alice.ID]; got != "47.50" {
		t.Errorf("alice after direct settle: expected 47.50, got %s", got)
	}

	history, err := ts.settlements.ListGroupTransactions(ctx, as(carol, &pb.ListGroupTransactionsRequest{
		GroupId: group.Id,
		Status:  "completed",
	}))
	if err != nil {
		t.Fatalf("ListGroupTransactions failed: %v", err)
	}
	if len(history.Msg.Settlements) != 1 || history.Msg.Settlements[0].Id != st.Id {
		t.Errorf("expected the direct settlement in history, got %+v", history.Msg.Settlements)
	}
}

func TestConfirmAndRejectRace(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	group, alice, bob, _ := ts.tripWithDinner(t)

	proposed, err := ts.settlements.ProposeSettlement(ctx, as(bob, &pb.ProposeSettlementRequest{
		GroupId:    group.Id,
		ReceiverId: alice.ID,
		Amount:     "30",
		Method:     "bank_transfer",
	}))
	if err != nil {
		t.Fatalf("ProposeSettlement failed: %v", err)
	}
	id := proposed.Msg.Settlement.Id

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = ts.settlements.ConfirmSettlement(ctx, as(alice, &pb.ConfirmSettlementRequest{SettlementId: id}))
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = ts.settlements.RejectSettlement(ctx, as(alice, &pb.RejectSettlementRequest{SettlementId: id}))
	}()
	wg.Wait()

	if (errs[0] == nil) == (errs[1] == nil) {
		t.Fatalf("exactly one transition must win: confirm=%v reject=%v", errs[0], errs[1])
	}

	balances, err := ts.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	want := dec("-30")
	if errs[0] == nil {
		want = dec("0")
	}
	if got := balanceOf(balances.Msg.Balances, bob.ID); !got.Equal(want) {
		t.Errorf("bob: expected %s, got %s", want, got)
	}
}

func TestListGroupTransactions_Errors(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, _, _ := ts.trip(t)
	dave := ts.register(t, "dave")

	_, err := ts.settlements.ListGroupTransactions(context.Background(), as(alice, &pb.ListGroupTransactionsRequest{GroupId: group.Id, Status: "lost"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.settlements.ListGroupTransactions(context.Background(), as(dave, &pb.ListGroupTransactionsRequest{GroupId: group.Id}))
	expectCode(t, err, connect.CodeNotFound)
}
