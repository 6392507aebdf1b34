// Package access holds the single visibility predicate applied to every read and
// write of requests, proposals and projects.
package access

import "agency_ops/internal/domain/entities"

// Scope is a principal resolved for row-level checks. ClientID is the client
// profile of a Client principal and is empty for other roles.
type Scope struct {
	Role        entities.Role
	PrincipalID string
	ClientID    string
}

// CanSee is the row visibility predicate:
//   - Admin sees every row
//   - Agent sees rows assigned to them
//   - Client sees rows of their own client profile
//
// Unknown roles and unresolved principals see nothing.
func (s Scope) CanSee(o entities.Owner) bool {
	switch s.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleAgent:
		return s.PrincipalID != "" && o.AgentID == s.PrincipalID
	case entities.RoleClient:
		return s.ClientID != "" && o.ClientID == s.ClientID
	default:
		return false
	}
}

// CanManage reports whether the principal may drive agent-side transitions on a row.
func (s Scope) CanManage(o entities.Owner) bool {
	switch s.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleAgent:
		return s.CanSee(o)
	default:
		return false
	}
}

// Filter expresses CanSee as a store filter. The status filter only applies to
// admins, the other roles are already narrowed to their own rows.
func (s Scope) Filter(status string) entities.ListFilter {
	switch s.Role {
	case entities.RoleAdmin:
		return entities.ListFilter{Status: status}
	case entities.RoleAgent:
		if s.PrincipalID == "" {
			return entities.ListFilter{DenyAll: true}
		}
		return entities.ListFilter{AgentID: s.PrincipalID}
	case entities.RoleClient:
		if s.ClientID == "" {
			return entities.ListFilter{DenyAll: true}
		}
		return entities.ListFilter{ClientID: s.ClientID}
	default:
		return entities.ListFilter{DenyAll: true}
	}
}

// Matches applies a filter to a single row. Stores that cannot push a filter down
// use it to post-filter.
func Matches(f entities.ListFilter, o entities.Owner, status string) bool {
	if f.DenyAll {
		return false
	}
	if f.ClientID != "" && o.ClientID != f.ClientID {
		return false
	}
	if f.AgentID != "" && o.AgentID != f.AgentID {
		return false
	}
	if f.Status != "" && status != f.Status {
		return false
	}
	return true
}
