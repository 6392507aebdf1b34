package response

import (
	"testing"
	"time"

	"agency_ops/internal/domain/entities"
)

func TestFromProposal(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Proposal{
		ID:          "prop-1",
		RequestID:   "req-1",
		AgentID:     "7",
		TotalAmount: 2000,
		Status:      entities.ProposalStatusDraft,
		PDFPath:     entities.ProposalDocumentPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		LineItems: []entities.ProposalLineItem{
			{ID: "li-1", ProposalID: "prop-1", Position: 0, Description: "Design", Price: 500},
			{ID: "li-2", ProposalID: "prop-1", Position: 1, Description: "Dev", Price: 1500},
		},
	}

	res := FromProposal(p)
	if res.DocumentState != "pending-document" || res.PDFPath != nil {
		t.Fatalf("pending document must not expose a path: %+v", res)
	}
	if len(res.LineItems) != 2 || res.LineItems[1].Description != "Dev" {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}

	p.PDFPath = "uploads/proposals/proposal-prop-1.pdf"
	res = FromProposal(p)
	if res.DocumentState != "document-ready" || res.PDFPath == nil || *res.PDFPath != p.PDFPath {
		t.Fatalf("ready document must expose its path: %+v", res)
	}
}

func TestFromProject(t *testing.T) {
	ecd := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res := FromProject(entities.Project{ID: "proj-1", GlobalStatus: entities.ProjectStatusInProgress, ECD: &ecd})
	if res.ECD == nil || *res.ECD != "2026-03-01" {
		t.Fatalf("unexpected ecd: %v", res.ECD)
	}
	if res.AgentID != nil {
		t.Fatalf("expected nil agent id, got %v", *res.AgentID)
	}
	if res.GlobalStatus != "In Progress" {
		t.Fatalf("unexpected status: %s", res.GlobalStatus)
	}
}

func TestFromTimeline(t *testing.T) {
	agent := "Ana"
	entries := []entities.TimelineEntry{
		{RequestID: "req-1", Category: "Web", RequestStatus: entities.RequestStatusConverted, AgentName: &agent,
			Proposal: &entities.TimelineProposal{ID: "prop-1", Status: entities.ProposalStatusAccepted, Amount: 2000},
			Project:  &entities.TimelineProject{ID: "proj-1", Status: entities.ProjectStatusPending}},
		{RequestID: "req-2", Category: entities.DefaultTimelineCategory, RequestStatus: entities.RequestStatusPending},
	}

	res := FromTimeline(entries)
	if len(res) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(res))
	}
	if res[0].Proposal == nil || res[0].Proposal.Amount != 2000 || res[0].Project == nil {
		t.Fatalf("unexpected first entry: %+v", res[0])
	}
	if res[1].Proposal != nil || res[1].Project != nil || res[1].AgentName != nil {
		t.Fatalf("bare request must have null joins: %+v", res[1])
	}
}
