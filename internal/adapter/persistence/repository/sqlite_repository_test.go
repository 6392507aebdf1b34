package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/infrastructure/database"
	"agency_ops/internal/usecase/interfaces"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "agency.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, MigrateSQLite(ctx, db))
	return db
}

type sqliteFixture struct {
	repos    Repositories
	db       *sql.DB
	clientID string
}

func newSQLiteFixture(t *testing.T) sqliteFixture {
	t.Helper()
	db := newTestDB(t)
	repos := NewSQLiteRepositories(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repos.Accounts.CreateUser(ctx, entities.User{
		ID: "user-c1", FullName: "Ana Client", Email: "ana@acme.test",
		Role: entities.RoleClient, Status: entities.UserStatusActive, CreatedAt: now,
	})
	require.NoError(t, err)
	_, err = repos.Accounts.CreateClient(ctx, entities.Client{
		ID: "client-1", UserID: "user-c1", CompanyName: "Acme", CreatedAt: now,
	})
	require.NoError(t, err)
	return sqliteFixture{repos: repos, db: db, clientID: "client-1"}
}

func (f sqliteFixture) request(t *testing.T, id, agentID string, status entities.RequestStatus, createdAt time.Time) entities.ServiceRequest {
	t.Helper()
	sr, err := f.repos.Requests.Create(context.Background(), entities.ServiceRequest{
		ID: id, ClientID: f.clientID, CategoryID: "cat-1", Details: "new site",
		Priority: entities.RequestPriorityMedium, AgentID: agentID, Status: status,
		CreatedAt: createdAt, UpdatedAt: createdAt,
	})
	require.NoError(t, err)
	return sr
}

func (f sqliteFixture) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(query, args...).Scan(&n))
	return n
}

func draftProposal(requestID string, prices ...float64) (entities.Proposal, []entities.ProposalLineItem) {
	now := time.Now().UTC()
	p := entities.Proposal{
		ID: uuid.NewString(), RequestID: requestID, AgentID: "7",
		Status: entities.ProposalStatusDraft, PDFPath: entities.ProposalDocumentPending,
		CreatedAt: now, UpdatedAt: now,
	}
	items := make([]entities.ProposalLineItem, 0, len(prices))
	for i, price := range prices {
		items = append(items, entities.ProposalLineItem{
			ID: uuid.NewString(), ProposalID: p.ID, Position: i + 1, Description: "item", Price: price,
		})
	}
	p.TotalAmount = entities.SumLineItems(items)
	return p, items
}

func replaceProposal(ctx context.Context, tx interfaces.ITransactor, p entities.Proposal, items []entities.ProposalLineItem) error {
	return tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		allowed := []entities.RequestStatus{entities.RequestStatusAssigned, entities.RequestStatusQuoted}
		if err := tx.GuardRequestStatus(ctx, p.RequestID, allowed); err != nil {
			return err
		}
		if err := tx.DeleteProposalsByRequestID(ctx, p.RequestID); err != nil {
			return err
		}
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		return tx.CreateLineItems(ctx, items)
	})
}

func TestServiceRequestSQLite_List(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	f.request(t, "req-1", "", entities.RequestStatusPending, base)
	f.request(t, "req-2", "7", entities.RequestStatusAssigned, base.Add(time.Hour))

	t.Run("client scope returns newest first", func(t *testing.T) {
		got, err := f.repos.Requests.List(ctx, entities.ListFilter{ClientID: f.clientID})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "req-2", got[0].ID)
		assert.Equal(t, "req-1", got[1].ID)
	})

	t.Run("agent scope", func(t *testing.T) {
		got, err := f.repos.Requests.List(ctx, entities.ListFilter{AgentID: "7"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "req-2", got[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := f.repos.Requests.List(ctx, entities.ListFilter{Status: string(entities.RequestStatusPending)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "req-1", got[0].ID)
	})

	t.Run("deny all", func(t *testing.T) {
		got, err := f.repos.Requests.List(ctx, entities.ListFilter{DenyAll: true})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("missing row is a zero value", func(t *testing.T) {
		got, err := f.repos.Requests.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestServiceRequestSQLite_AssignAgent(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	f.request(t, "req-1", "", entities.RequestStatusPending, time.Now())

	got, err := f.repos.Requests.AssignAgent(ctx, "req-1", "7", entities.RequestStatusAssigned, entities.RequestStatusPending)
	require.NoError(t, err)
	assert.Equal(t, "7", got.AgentID)
	assert.Equal(t, entities.RequestStatusAssigned, got.Status)

	_, err = f.repos.Requests.AssignAgent(ctx, "req-1", "8", entities.RequestStatusAssigned, entities.RequestStatusPending)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
}

func TestSQLiteTransactor_ReplaceProposal(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	f.request(t, "req-1", "7", entities.RequestStatusAssigned, time.Now())

	first, firstItems := draftProposal("req-1", 100, 200, 300)
	require.NoError(t, replaceProposal(ctx, f.repos.Tx, first, firstItems))

	second, secondItems := draftProposal("req-1", 500, 1500)
	require.NoError(t, replaceProposal(ctx, f.repos.Tx, second, secondItems))

	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM proposals WHERE request_id = ?`, "req-1"))
	assert.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM proposal_line_items WHERE proposal_id = ?`, first.ID))

	got, err := f.repos.Proposals.GetByRequestID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, 2000.0, got.TotalAmount)

	items, err := f.repos.Proposals.ListLineItems(ctx, second.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(secondItems, items); diff != "" {
		t.Fatalf("line items mismatch (-want +got):\n%s", diff)
	}

	req, err := f.repos.Requests.GetByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusAssigned, req.Status)
}

func TestProposalSQLite_UpdateDocumentOnlyOnDraft(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	f.request(t, "req-1", "7", entities.RequestStatusAssigned, time.Now())
	p, items := draftProposal("req-1", 500)
	require.NoError(t, replaceProposal(ctx, f.repos.Tx, p, items))

	got, err := f.repos.Proposals.UpdateDocument(ctx, p.ID, "docs/v1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "docs/v1.pdf", got.PDFPath)

	require.NoError(t, f.repos.Tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		return tx.TransitionProposal(ctx, p.ID, entities.ProposalStatusSent, []entities.ProposalStatus{entities.ProposalStatusDraft})
	}))

	got, err = f.repos.Proposals.UpdateDocument(ctx, p.ID, "docs/v2.pdf")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	stored, err := f.repos.Proposals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "docs/v1.pdf", stored.PDFPath)
}

func TestSQLiteTransactor_GuardRejectsConvertedRequest(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	f.request(t, "req-1", "7", entities.RequestStatusConverted, time.Now())

	p, items := draftProposal("req-1", 10)
	err := replaceProposal(ctx, f.repos.Tx, p, items)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	assert.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM proposals`))
}

func TestSQLiteTransactor_RollsBackOnError(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	f.request(t, "req-1", "7", entities.RequestStatusAssigned, time.Now())
	boom := errors.New("boom")

	p, _ := draftProposal("req-1", 10)
	err := f.repos.Tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM proposals`))
}

func TestSQLiteTransactor_CancelledBeforeCommit(t *testing.T) {
	f := newSQLiteFixture(t)
	f.request(t, "req-1", "7", entities.RequestStatusAssigned, time.Now())
	ctx, cancel := context.WithCancel(context.Background())

	p, _ := draftProposal("req-1", 10)
	err := f.repos.Tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM proposals`))
}

func TestSQLiteTransactor_ConcurrentAcceptCreatesOneProject(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	f.request(t, "req-1", "7", entities.RequestStatusQuoted, time.Now())
	p, items := draftProposal("req-1", 500, 1500)
	p.Status = entities.ProposalStatusSent
	require.NoError(t, f.repos.Tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		return tx.CreateLineItems(ctx, items)
	}))

	var succeeded, conflicted atomic.Int32
	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			now := time.Now().UTC()
			err := f.repos.Tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
				if err := tx.TransitionProposal(ctx, p.ID, entities.ProposalStatusAccepted, []entities.ProposalStatus{entities.ProposalStatusSent}); err != nil {
					return err
				}
				if err := tx.TransitionRequest(ctx, "req-1", entities.RequestStatusConverted, []entities.RequestStatus{entities.RequestStatusQuoted}); err != nil {
					return err
				}
				return tx.CreateProject(ctx, entities.Project{
					ID: uuid.NewString(), RequestID: "req-1", ClientID: f.clientID, AgentID: "7",
					GlobalStatus: entities.ProjectStatusPending, CreatedAt: now, UpdatedAt: now,
				})
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, interfaces.ErrConditionFailed):
				conflicted.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(1), conflicted.Load())
	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM projects WHERE request_id = ?`, "req-1"))

	got, err := f.repos.Proposals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ProposalStatusAccepted, got.Status)
}

func TestAccountSQLite_PendingIncludesLegacyLiteral(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	_, err := f.repos.Accounts.CreateUser(ctx, entities.User{
		ID: "u-new", FullName: "New", Email: "new@x.test", Role: entities.RoleAgent,
		Status: entities.UserStatusPendingApproval, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = f.db.Exec(`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"u-old", "Old", "old@x.test", "Agent", legacyPendingStatus, 0, "2025-12-01T00:00:00.000000000Z")
	require.NoError(t, err)

	got, err := f.repos.Accounts.ListUsersByStatus(ctx, entities.UserStatusPendingApproval)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u-old", got[0].ID)
	assert.Equal(t, entities.UserStatusPendingApproval, got[0].Status)

	agents, err := f.repos.Accounts.ListUsersByRole(ctx, entities.RoleAgent)
	require.NoError(t, err)
	assert.Len(t, agents, 2)

	updated, err := f.repos.Accounts.UpdateUserStatus(ctx, "u-old", entities.UserStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entities.UserStatusActive, updated.Status)

	missing, err := f.repos.Accounts.UpdateUserStatus(ctx, "ghost", entities.UserStatusActive)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestAccountSQLite_ClientProfile(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()

	byUser, err := f.repos.Accounts.GetClientByUserID(ctx, "user-c1")
	require.NoError(t, err)
	assert.Equal(t, f.clientID, byUser.ID)

	vault := "sealed"
	got, err := f.repos.Accounts.UpdateClientProfile(ctx, f.clientID, entities.ClientProfileUpdate{
		Industry: "Retail", WebsiteURL: "https://acme.test", TechnicalVault: &vault,
	})
	require.NoError(t, err)
	assert.Equal(t, "Retail", got.Industry)
	assert.Equal(t, "sealed", got.TechnicalVault)

	got, err = f.repos.Accounts.UpdateClientProfile(ctx, f.clientID, entities.ClientProfileUpdate{Industry: "Food"})
	require.NoError(t, err)
	assert.Equal(t, "sealed", got.TechnicalVault, "vault is kept when not provided")
}

func TestProjectSQLite_StatusNotesAndAssets(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	f.request(t, "req-1", "7", entities.RequestStatusQuoted, time.Now())
	now := time.Now().UTC()
	require.NoError(t, f.repos.Tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		return tx.CreateProject(ctx, entities.Project{
			ID: "proj-1", RequestID: "req-1", ClientID: f.clientID, AgentID: "7",
			GlobalStatus: entities.ProjectStatusPending, CreatedAt: now, UpdatedAt: now,
		})
	}))

	status := entities.ProjectStatusInProgress
	progress := 40
	ecd := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	got, err := f.repos.Projects.UpdateStatus(ctx, "proj-1", entities.ProjectStatusUpdate{
		GlobalStatus: &status, ProgressPercent: &progress, ECD: &ecd,
	})
	require.NoError(t, err)
	assert.Equal(t, status, got.GlobalStatus)
	assert.Equal(t, 40, got.ProgressPercent)
	require.NotNil(t, got.ECD)
	assert.Equal(t, "2026-12-24", got.ECD.Format(entities.ECDLayout))

	byRequest, err := f.repos.Projects.GetByRequestID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "proj-1", byRequest.ID)

	listed, err := f.repos.Projects.List(ctx, entities.ListFilter{AgentID: "7", Status: string(status)})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	for i, content := range []string{"kickoff done", "design approved"} {
		_, err := f.repos.Projects.AddNote(ctx, entities.ProjectNote{
			ID: uuid.NewString(), ProjectID: "proj-1", UserID: "7", Content: content,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	notes, err := f.repos.Projects.ListNotes(ctx, "proj-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "kickoff done", notes[0].Content)

	assets, err := f.repos.Projects.ListAssets(ctx, "proj-1")
	require.NoError(t, err)
	assert.Empty(t, assets)

	missing, err := f.repos.Projects.UpdateStatus(ctx, "ghost", entities.ProjectStatusUpdate{GlobalStatus: &status})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCategorySQLite_ListSortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategorySQLiteRepository(db)
	ctx := context.Background()
	for _, name := range []string{"web", "Branding", "SEO"} {
		_, err := repo.Create(ctx, entities.ServiceCategory{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()})
		require.NoError(t, err)
	}
	got, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Branding", "SEO", "web"}, names)
}

func TestSQLiteTransactor_Ping(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, NewSQLiteTransactor(db).Ping(context.Background()))
}
