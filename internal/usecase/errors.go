package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP statuses; every specific error below wraps
// exactly one of them so errors.Is works on the kind.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation error")
	ErrDocumentNotReady   = errors.New("proposal document not ready")
	ErrNotificationFailed = errors.New("notification failed")
	ErrTransactionFailed  = errors.New("transaction failed")
	ErrAlreadyAccepted    = errors.New("already accepted")
)

var (
	ErrRequestNotFound       = fmt.Errorf("%w: service request", ErrNotFound)
	ErrProposalNotFound      = fmt.Errorf("%w: proposal", ErrNotFound)
	ErrProjectNotFound       = fmt.Errorf("%w: project", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("%w: user", ErrNotFound)
	ErrClientNotFound        = fmt.Errorf("%w: client", ErrNotFound)
	ErrClientProfileNotFound = fmt.Errorf("%w: client profile for principal", ErrNotFound)

	ErrRoleNotAllowed   = fmt.Errorf("%w: role not allowed", ErrForbidden)
	ErrNotRequestAgent  = fmt.Errorf("%w: principal is not the assigned agent", ErrForbidden)
	ErrNotProposalOwner = fmt.Errorf("%w: proposal belongs to another client", ErrForbidden)
	ErrNotVisible       = fmt.Errorf("%w: resource not visible to principal", ErrForbidden)

	ErrInvalidID           = fmt.Errorf("%w: id is required", ErrValidation)
	ErrEmptyLineItems      = fmt.Errorf("%w: at least one line item is required", ErrValidation)
	ErrTooManyLineItems    = fmt.Errorf("%w: too many line items", ErrValidation)
	ErrInvalidLineItem     = fmt.Errorf("%w: line item needs a description and a non-negative price", ErrValidation)
	ErrRequestNotAssigned  = fmt.Errorf("%w: request has no assigned agent", ErrValidation)
	ErrProposalNotSent     = fmt.Errorf("%w: proposal has not been sent", ErrValidation)
	ErrProposalNotDraft    = fmt.Errorf("%w: proposal is not a draft", ErrValidation)
	ErrNotAnAgent          = fmt.Errorf("%w: user is not an agent", ErrValidation)
	ErrInvalidDetails      = fmt.Errorf("%w: details are required", ErrValidation)
	ErrInvalidPriority     = fmt.Errorf("%w: invalid priority", ErrValidation)
	ErrUnknownCategory     = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrInvalidStatus       = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidProgress     = fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	ErrInvalidECD          = fmt.Errorf("%w: ecd must be formatted YYYY-MM-DD", ErrValidation)
	ErrEmptyProjectUpdate  = fmt.Errorf("%w: nothing to update", ErrValidation)
	ErrInvalidNote         = fmt.Errorf("%w: note content is required", ErrValidation)
	ErrInvalidCategoryName = fmt.Errorf("%w: category name is required", ErrValidation)
	ErrCategoryExists      = fmt.Errorf("%w: category already exists", ErrValidation)
	ErrInvalidWebsiteURL   = fmt.Errorf("%w: website url must be an absolute http(s) url", ErrValidation)

	ErrDocumentGenerationFailed = fmt.Errorf("%w: document generation failed", ErrDocumentNotReady)
	ErrRequestAlreadyConverted  = fmt.Errorf("%w: request already converted to a project", ErrAlreadyAccepted)
)
