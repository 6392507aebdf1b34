package repository

import "agency_ops/internal/infrastructure/database"

const (
	clientIDIndex   = "client_id-index"
	agentIDIndex    = "agent_id-index"
	requestIDIndex  = "request_id-index"
	proposalIDIndex = "proposal_id-index"
	projectIDIndex  = "project_id-index"
	userIDIndex     = "user_id-index"
)

// TableNames holds the DynamoDB table of every aggregate.
type TableNames struct {
	Requests   string
	Proposals  string
	LineItems  string
	Projects   string
	Notes      string
	Assets     string
	Users      string
	Clients    string
	Categories string
}

// TableNamesFromEnv reads *_TABLE overrides, falling back to the default names.
func TableNamesFromEnv() TableNames {
	return TableNames{
		Requests:   getenvDefault("REQUESTS_TABLE", "service_requests"),
		Proposals:  getenvDefault("PROPOSALS_TABLE", "proposals"),
		LineItems:  getenvDefault("PROPOSAL_LINE_ITEMS_TABLE", "proposal_line_items"),
		Projects:   getenvDefault("PROJECTS_TABLE", "projects"),
		Notes:      getenvDefault("PROJECT_NOTES_TABLE", "project_notes"),
		Assets:     getenvDefault("PROJECT_ASSETS_TABLE", "project_assets"),
		Users:      getenvDefault("USERS_TABLE", "users"),
		Clients:    getenvDefault("CLIENTS_TABLE", "clients"),
		Categories: getenvDefault("CATEGORIES_TABLE", "service_categories"),
	}
}

// DynamoTableSpecs describes the tables and GSIs `migrate` creates.
func DynamoTableSpecs(t TableNames) []database.TableSpec {
	return []database.TableSpec{
		{Name: t.Requests, Indexes: []database.IndexSpec{
			{Name: clientIDIndex, HashKey: "client_id", RangeKey: "created_at"},
			{Name: agentIDIndex, HashKey: "agent_id", RangeKey: "created_at"},
		}},
		{Name: t.Proposals, Indexes: []database.IndexSpec{
			{Name: requestIDIndex, HashKey: "request_id"},
		}},
		{Name: t.LineItems, Indexes: []database.IndexSpec{
			{Name: proposalIDIndex, HashKey: "proposal_id"},
		}},
		{Name: t.Projects, Indexes: []database.IndexSpec{
			{Name: requestIDIndex, HashKey: "request_id"},
			{Name: clientIDIndex, HashKey: "client_id", RangeKey: "created_at"},
			{Name: agentIDIndex, HashKey: "agent_id", RangeKey: "created_at"},
		}},
		{Name: t.Notes, Indexes: []database.IndexSpec{
			{Name: projectIDIndex, HashKey: "project_id", RangeKey: "created_at"},
		}},
		{Name: t.Assets, Indexes: []database.IndexSpec{
			{Name: projectIDIndex, HashKey: "project_id", RangeKey: "created_at"},
		}},
		{Name: t.Users},
		{Name: t.Clients, Indexes: []database.IndexSpec{
			{Name: userIDIndex, HashKey: "user_id"},
		}},
		{Name: t.Categories},
	}
}
