package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agency_ops/internal/domain/entities"
)

func sampleDocument(n int) entities.ProposalDocument {
	doc := entities.ProposalDocument{ProposalID: "prop-1", ClientLabel: "Acme Ltd"}
	for i := 0; i < n; i++ {
		doc.Items = append(doc.Items, entities.ProposalLineItem{
			ID: fmt.Sprintf("li-%d", i), Position: i + 1, Description: fmt.Sprintf("Item %d", i+1), Price: 100,
		})
	}
	doc.TotalAmount = entities.SumLineItems(doc.Items)
	return doc
}

func TestPDFGenerator_Generate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proposals")
	g := NewPDFGenerator(dir)
	g.now = func() time.Time { return time.Unix(0, 42) }

	t.Run("writes a pdf named after the proposal", func(t *testing.T) {
		path, err := g.Generate(context.Background(), sampleDocument(2))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if path != filepath.Join(dir, "proposal-prop-1-42.pdf") {
			t.Fatalf("unexpected path %q", path)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.HasPrefix(raw, []byte("%PDF-")) {
			t.Fatalf("output is not a pdf")
		}
	})

	t.Run("long proposals span pages", func(t *testing.T) {
		g.now = func() time.Time { return time.Unix(0, 43) }
		if _, err := g.Generate(context.Background(), sampleDocument(entities.MaxProposalLineItems)); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		if _, err := g.Generate(context.Background(), sampleDocument(0)); !errors.Is(err, ErrEmptyDocument) {
			t.Fatalf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := g.Generate(ctx, sampleDocument(1)); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
