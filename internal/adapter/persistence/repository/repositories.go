package repository

import (
	"database/sql"

	"agency_ops/internal/usecase/interfaces"
)

// Repositories bundles the stores of one backend.
type Repositories struct {
	Requests   interfaces.IServiceRequestRepository
	Proposals  interfaces.IProposalRepository
	Projects   interfaces.IProjectRepository
	Accounts   interfaces.IAccountRepository
	Categories interfaces.ICategoryRepository
	Tx         interfaces.ITransactor
	Health     interfaces.IHealthChecker
}

func NewDynamoRepositories(ddb dynamoAPI, t TableNames) Repositories {
	tx := NewDynamoTransactor(ddb, t)
	return Repositories{
		Requests:   NewServiceRequestDynamoRepository(ddb, t.Requests),
		Proposals:  NewProposalDynamoRepository(ddb, t.Proposals, t.LineItems, t.Requests),
		Projects:   NewProjectDynamoRepository(ddb, t.Projects, t.Notes, t.Assets),
		Accounts:   NewAccountDynamoRepository(ddb, t.Users, t.Clients),
		Categories: NewCategoryDynamoRepository(ddb, t.Categories),
		Tx:         tx,
		Health:     tx,
	}
}

func NewSQLiteRepositories(db *sql.DB) Repositories {
	tx := NewSQLiteTransactor(db)
	return Repositories{
		Requests:   NewServiceRequestSQLiteRepository(db),
		Proposals:  NewProposalSQLiteRepository(db),
		Projects:   NewProjectSQLiteRepository(db),
		Accounts:   NewAccountSQLiteRepository(db),
		Categories: NewCategorySQLiteRepository(db),
		Tx:         tx,
		Health:     tx,
	}
}
