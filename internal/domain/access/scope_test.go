package access

import (
	"testing"

	"agency_ops/internal/domain/entities"
)

func TestScope_CanSee(t *testing.T) {
	row := entities.Owner{ClientID: "client-1", AgentID: "agent-7"}

	cases := []struct {
		name  string
		scope Scope
		want  bool
	}{
		{name: "admin", scope: Scope{Role: entities.RoleAdmin, PrincipalID: "admin-1"}, want: true},
		{name: "assigned agent", scope: Scope{Role: entities.RoleAgent, PrincipalID: "agent-7"}, want: true},
		{name: "other agent", scope: Scope{Role: entities.RoleAgent, PrincipalID: "agent-8"}, want: false},
		{name: "owning client", scope: Scope{Role: entities.RoleClient, PrincipalID: "user-1", ClientID: "client-1"}, want: true},
		{name: "other client", scope: Scope{Role: entities.RoleClient, PrincipalID: "user-2", ClientID: "client-2"}, want: false},
		{name: "client without profile", scope: Scope{Role: entities.RoleClient, PrincipalID: "user-1"}, want: false},
		{name: "unknown role", scope: Scope{Role: "Guest", PrincipalID: "x"}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.scope.CanSee(row); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}

	unassigned := entities.Owner{ClientID: "client-1"}
	if (Scope{Role: entities.RoleAgent, PrincipalID: ""}).CanSee(unassigned) {
		t.Fatalf("agent with empty id must not match unassigned rows")
	}
}

func TestScope_CanManage(t *testing.T) {
	row := entities.Owner{ClientID: "client-1", AgentID: "agent-7"}
	if !(Scope{Role: entities.RoleAdmin}).CanManage(row) {
		t.Fatalf("admin should manage")
	}
	if !(Scope{Role: entities.RoleAgent, PrincipalID: "agent-7"}).CanManage(row) {
		t.Fatalf("assigned agent should manage")
	}
	if (Scope{Role: entities.RoleClient, ClientID: "client-1"}).CanManage(row) {
		t.Fatalf("client must not manage")
	}
}

func TestScope_FilterAgreesWithCanSee(t *testing.T) {
	rows := []entities.Owner{
		{ClientID: "client-1", AgentID: "agent-7"},
		{ClientID: "client-2", AgentID: "agent-7"},
		{ClientID: "client-1"},
	}
	scopes := []Scope{
		{Role: entities.RoleAdmin},
		{Role: entities.RoleAgent, PrincipalID: "agent-7"},
		{Role: entities.RoleClient, ClientID: "client-1"},
		{Role: entities.RoleClient},
		{Role: "Guest"},
	}
	for _, s := range scopes {
		f := s.Filter("")
		for _, o := range rows {
			if Matches(f, o, "Pending") != s.CanSee(o) {
				t.Fatalf("filter and predicate disagree for scope %+v row %+v", s, o)
			}
		}
	}
}

func TestScope_FilterStatusOnlyForAdmin(t *testing.T) {
	if f := (Scope{Role: entities.RoleAdmin}).Filter("Quoted"); f.Status != "Quoted" {
		t.Fatalf("expected admin status filter, got %+v", f)
	}
	if f := (Scope{Role: entities.RoleAgent, PrincipalID: "a"}).Filter("Quoted"); f.Status != "" {
		t.Fatalf("status filter must be ignored for agents, got %+v", f)
	}
}
