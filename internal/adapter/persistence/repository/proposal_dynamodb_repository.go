package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type proposalItem struct {
	ID          string  `dynamodbav:"id"`
	RequestID   string  `dynamodbav:"request_id"`
	AgentID     string  `dynamodbav:"agent_id"`
	TotalAmount float64 `dynamodbav:"total_amount"`
	Status      string  `dynamodbav:"status"`
	PDFPath     string  `dynamodbav:"pdf_path"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
	// keys of the proposal's line items, so a replacement can delete them
	// without going through the proposal_id index
	LineItemIDs []string `dynamodbav:"line_item_ids,omitempty"`
}

type lineItemItem struct {
	ID          string  `dynamodbav:"id"`
	ProposalID  string  `dynamodbav:"proposal_id"`
	Position    int     `dynamodbav:"position"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
}

// ProposalDynamoRepository reads proposals and their line items.
//
// Table requirements:
//   - proposals PK: id, GSI request_id-index (PK: request_id)
//   - proposal_line_items PK: id, GSI proposal_id-index (PK: proposal_id)
//
// Creation and replacement go through DynamoTransactor only.
type ProposalDynamoRepository struct {
	ddb            dynamoAPI
	tableName      string
	lineItemsTable string
	requestsTable  string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb dynamoAPI, tableName, lineItemsTable, requestsTable string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName, lineItemsTable: lineItemsTable, requestsTable: requestsTable}
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// GetByRequestID returns the proposal the request points at. Requests written
// before current_proposal_id existed fall back to the request_id index.
func (r *ProposalDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.requestsTable),
		Key:                      stringKey(requestID),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("#current"),
		ExpressionAttributeNames: map[string]string{"#current": "current_proposal_id"},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	var ref struct {
		CurrentProposalID string `dynamodbav:"current_proposal_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &ref); err != nil {
		return entities.Proposal{}, err
	}
	if ref.CurrentProposalID != "" {
		return r.GetByID(ctx, ref.CurrentProposalID)
	}

	all, err := r.listByRequestID(ctx, requestID)
	if err != nil || len(all) == 0 {
		return entities.Proposal{}, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all[0], nil
}

func (r *ProposalDynamoRepository) listByRequestID(ctx context.Context, requestID string) ([]entities.Proposal, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Proposal, 0, len(raw))
	for _, m := range raw {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProposalItem(it))
	}
	return out, nil
}

func (r *ProposalDynamoRepository) ListLineItems(ctx context.Context, proposalID string) ([]entities.ProposalLineItem, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.lineItemsTable),
		IndexName:              aws.String(proposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProposalLineItem, 0, len(raw))
	for _, m := range raw {
		var it lineItemItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.ProposalLineItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// UpdateDocument stores the generated document reference on a Draft proposal.
// A proposal deleted or sent in the meantime yields a zero value.
func (r *ProposalDynamoRepository) UpdateDocument(ctx context.Context, id, pdfPath string) (entities.Proposal, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :draft"),
		UpdateExpression:    aws.String("SET #pdf_path = :pdf_path, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#pdf_path":   "pdf_path",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft":      &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
			":pdf_path":   &types.AttributeValueMemberS{Value: pdfPath},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:          p.ID,
		RequestID:   p.RequestID,
		AgentID:     p.AgentID,
		TotalAmount: p.TotalAmount,
		Status:      string(p.Status),
		PDFPath:     p.PDFPath,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:          it.ID,
		RequestID:   it.RequestID,
		AgentID:     it.AgentID,
		TotalAmount: it.TotalAmount,
		Status:      entities.ProposalStatus(it.Status),
		PDFPath:     it.PDFPath,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
