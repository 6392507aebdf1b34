package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// UserStatusChange is the outcome of an admin status update. The status change is
// persisted even when the approval email could not be delivered.
type UserStatusChange struct {
	User                  entities.User
	NotificationAttempted bool
	NotificationDelivered bool
	NotificationError     string
}

// ClientProfile is a client's own view of its profile, vault included.
type ClientProfile struct {
	Client         entities.Client
	TechnicalVault string
}

// ClientProfileInput holds the fields a client may change. Nil fields are kept.
type ClientProfileInput struct {
	Industry       *string
	WebsiteURL     *string
	TechnicalVault *string
}

type IAccountUseCase interface {
	ListPendingUsers(ctx context.Context, principal entities.Principal) ([]entities.User, error)
	UpdateUserStatus(ctx context.Context, principal entities.Principal, userID, status string) (UserStatusChange, error)
	ListAgents(ctx context.Context, principal entities.Principal) ([]entities.User, error)
	GetMyClientProfile(ctx context.Context, principal entities.Principal) (ClientProfile, error)
	UpdateMyClientProfile(ctx context.Context, principal entities.Principal, in ClientProfileInput) (ClientProfile, error)
}

type AccountUseCase struct {
	accounts        interfaces.IAccountRepository
	notifier        interfaces.INotificationGateway
	vault           interfaces.IVaultCipher
	externalTimeout time.Duration
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(accounts interfaces.IAccountRepository, notifier interfaces.INotificationGateway, vault interfaces.IVaultCipher, externalTimeout time.Duration) *AccountUseCase {
	if externalTimeout <= 0 {
		externalTimeout = 15 * time.Second
	}
	return &AccountUseCase{accounts: accounts, notifier: notifier, vault: vault, externalTimeout: externalTimeout}
}

func (u *AccountUseCase) ListPendingUsers(ctx context.Context, principal entities.Principal) ([]entities.User, error) {
	if err := requireRole(principal, entities.RoleAdmin); err != nil {
		return nil, err
	}
	return u.accounts.ListUsersByStatus(ctx, entities.UserStatusPendingApproval)
}

func (u *AccountUseCase) ListAgents(ctx context.Context, principal entities.Principal) ([]entities.User, error) {
	if err := requireRole(principal, entities.RoleAdmin); err != nil {
		return nil, err
	}
	return u.accounts.ListUsersByRole(ctx, entities.RoleAgent)
}

// UpdateUserStatus changes a user's status. Moving a user to Active sends the
// approval email; its outcome is reported in the result.
func (u *AccountUseCase) UpdateUserStatus(ctx context.Context, principal entities.Principal, userID, status string) (UserStatusChange, error) {
	if err := requireRole(principal, entities.RoleAdmin); err != nil {
		return UserStatusChange{}, err
	}
	userID, err := requireID(userID)
	if err != nil {
		return UserStatusChange{}, err
	}
	next, ok := entities.ParseUserStatus(status)
	if !ok {
		return UserStatusChange{}, ErrInvalidStatus
	}

	current, err := u.accounts.GetUserByID(ctx, userID)
	if err != nil {
		return UserStatusChange{}, err
	}
	if current.ID == "" {
		return UserStatusChange{}, ErrUserNotFound
	}

	updated, err := u.accounts.UpdateUserStatus(ctx, userID, next)
	if err != nil {
		return UserStatusChange{}, err
	}
	if updated.ID == "" {
		return UserStatusChange{}, ErrUserNotFound
	}
	out := UserStatusChange{User: updated}
	zap.L().Info("[account][usecase] status updated",
		zap.String("user_id", userID), zap.String("from", string(current.Status)), zap.String("to", string(next)))

	if next != entities.UserStatusActive || current.Status == entities.UserStatusActive {
		return out, nil
	}

	out.NotificationAttempted = true
	nctx, cancel := context.WithTimeout(ctx, u.externalTimeout)
	err = u.notifier.SendAccountApprovalNotification(nctx, updated.Email, updated.FullName)
	cancel()
	if err != nil {
		zap.L().Warn("[account][usecase] approval notification failed; status kept",
			zap.String("user_id", userID), zap.Error(err))
		out.NotificationError = err.Error()
		return out, nil
	}
	out.NotificationDelivered = true
	return out, nil
}

func (u *AccountUseCase) GetMyClientProfile(ctx context.Context, principal entities.Principal) (ClientProfile, error) {
	client, err := u.myClient(ctx, principal)
	if err != nil {
		return ClientProfile{}, err
	}
	return u.withVault(client)
}

func (u *AccountUseCase) UpdateMyClientProfile(ctx context.Context, principal entities.Principal, in ClientProfileInput) (ClientProfile, error) {
	client, err := u.myClient(ctx, principal)
	if err != nil {
		return ClientProfile{}, err
	}

	update := entities.ClientProfileUpdate{Industry: client.Industry, WebsiteURL: client.WebsiteURL}
	if in.Industry != nil {
		update.Industry = strings.TrimSpace(*in.Industry)
	}
	if in.WebsiteURL != nil {
		site := strings.TrimSpace(*in.WebsiteURL)
		if site != "" && !validWebsite(site) {
			return ClientProfile{}, ErrInvalidWebsiteURL
		}
		update.WebsiteURL = site
	}
	if in.TechnicalVault != nil {
		sealed := ""
		if *in.TechnicalVault != "" {
			sealed, err = u.vault.Seal(*in.TechnicalVault)
			if err != nil {
				return ClientProfile{}, err
			}
		}
		update.TechnicalVault = &sealed
	}

	updated, err := u.accounts.UpdateClientProfile(ctx, client.ID, update)
	if err != nil {
		return ClientProfile{}, err
	}
	if updated.ID == "" {
		return ClientProfile{}, ErrClientNotFound
	}
	return u.withVault(updated)
}

func (u *AccountUseCase) myClient(ctx context.Context, principal entities.Principal) (entities.Client, error) {
	if err := requireRole(principal, entities.RoleClient); err != nil {
		return entities.Client{}, err
	}
	client, err := u.accounts.GetClientByUserID(ctx, principal.ID)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Client{}, ErrClientProfileNotFound
	}
	return client, nil
}

func (u *AccountUseCase) withVault(c entities.Client) (ClientProfile, error) {
	if c.TechnicalVault == "" {
		return ClientProfile{Client: c}, nil
	}
	plain, err := u.vault.Open(c.TechnicalVault)
	if err != nil {
		return ClientProfile{}, err
	}
	return ClientProfile{Client: c, TechnicalVault: plain}, nil
}

func validWebsite(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
