package interfaces

import (
	"context"

	"agency_ops/internal/domain/entities"
)

// IDocumentGenerator renders a proposal into a retrievable artifact and returns a
// stable reference to it (a file path for the PDF generator).
type IDocumentGenerator interface {
	Generate(ctx context.Context, doc entities.ProposalDocument) (string, error)
}

// IVaultCipher seals and opens a client's technical vault.
type IVaultCipher interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}
