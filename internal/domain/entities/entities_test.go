package entities

import "testing"

func TestRequestStatus_CanAdvanceTo(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		want     bool
	}{
		{RequestStatusPending, RequestStatusAssigned, true},
		{RequestStatusAssigned, RequestStatusAssigned, true},
		{RequestStatusAssigned, RequestStatusQuoted, true},
		{RequestStatusQuoted, RequestStatusConverted, true},
		{RequestStatusQuoted, RequestStatusAssigned, false},
		{RequestStatusConverted, RequestStatusPending, false},
		{RequestStatus("bogus"), RequestStatusAssigned, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanAdvanceTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestParseUserStatus(t *testing.T) {
	if s, ok := ParseUserStatus("PENDING"); !ok || s != UserStatusPendingApproval {
		t.Fatalf("legacy PENDING should fold into Pending Approval, got %q %v", s, ok)
	}
	if s, ok := ParseUserStatus("active"); !ok || s != UserStatusActive {
		t.Fatalf("expected Active, got %q %v", s, ok)
	}
	if _, ok := ParseUserStatus("deleted"); ok {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestParseRoleAndPriority(t *testing.T) {
	if r, ok := ParseRole("admin"); !ok || r != RoleAdmin {
		t.Fatalf("expected Admin, got %q", r)
	}
	if _, ok := ParseRole("root"); ok {
		t.Fatalf("expected unknown role to be rejected")
	}
	if p, ok := ParseRequestPriority(""); !ok || p != RequestPriorityMedium {
		t.Fatalf("expected default Medium, got %q", p)
	}
	if _, ok := ParseRequestPriority("asap"); ok {
		t.Fatalf("expected unknown priority to be rejected")
	}
}

func TestProposal_DocumentState(t *testing.T) {
	p := Proposal{PDFPath: ProposalDocumentPending}
	if p.DocumentReady() || p.DocumentState() != DocumentStatePending {
		t.Fatalf("placeholder must not be ready")
	}
	p.PDFPath = ""
	if p.DocumentReady() {
		t.Fatalf("empty path must not be ready")
	}
	p.PDFPath = "/docs/proposal-1.pdf"
	if !p.DocumentReady() || p.DocumentState() != DocumentStateReady {
		t.Fatalf("expected document ready")
	}
}

func TestSumLineItems(t *testing.T) {
	items := []ProposalLineItem{{Price: 500}, {Price: 1500}}
	if got := SumLineItems(items); got != 2000 {
		t.Fatalf("expected 2000, got %v", got)
	}
}
