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

type serviceRequestItem struct {
	ID         string `dynamodbav:"id"`
	ClientID   string `dynamodbav:"client_id"`
	CategoryID string `dynamodbav:"category_id"`
	Details    string `dynamodbav:"details"`
	Priority   string `dynamodbav:"priority"`
	// omitted while unassigned: empty strings are not valid GSI keys
	AgentID     string `dynamodbav:"agent_id,omitempty"`
	Status      string `dynamodbav:"status"`
	ProposalRev int64  `dynamodbav:"proposal_rev"`
	// set by the lifecycle transactor on every proposal replacement
	CurrentProposalID string `dynamodbav:"current_proposal_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id, SK: created_at)
//   - GSI: agent_id-index (PK: agent_id, SK: created_at)
//
// proposal_rev is bumped by every proposal replacement so two concurrent
// replacements of the same request cannot both commit.
type ServiceRequestDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb dynamoAPI, tableName string) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	it, err := r.getItem(ctx, id)
	if err != nil || it.ID == "" {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) getItem(ctx context.Context, id string) (serviceRequestItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return serviceRequestItem{}, err
	}
	if len(out.Item) == 0 {
		return serviceRequestItem{}, nil
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return serviceRequestItem{}, err
	}
	return it, nil
}

// List queries the client or agent index when the filter names one, and scans
// otherwise (admin listing). Results are newest first.
func (r *ServiceRequestDynamoRepository) List(ctx context.Context, f entities.ListFilter) ([]entities.ServiceRequest, error) {
	if f.DenyAll {
		return []entities.ServiceRequest{}, nil
	}

	var (
		raw []map[string]types.AttributeValue
		err error
	)
	switch {
	case f.ClientID != "":
		raw, err = queryAll(ctx, r.ddb, ownerQuery(r.tableName, clientIDIndex, "client_id", f.ClientID))
	case f.AgentID != "":
		raw, err = queryAll(ctx, r.ddb, ownerQuery(r.tableName, agentIDIndex, "agent_id", f.AgentID))
	default:
		in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
		if f.Status != "" {
			in.FilterExpression = aws.String("#status = :status")
			in.ExpressionAttributeNames = map[string]string{"#status": "status"}
			in.ExpressionAttributeValues = map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: f.Status}}
		}
		raw, err = scanAll(ctx, r.ddb, in)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceRequest, 0, len(raw))
	for _, m := range raw {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		sr := fromServiceRequestItem(it)
		if f.Status != "" && string(sr.Status) != f.Status {
			continue
		}
		if f.ClientID != "" && f.AgentID != "" && sr.AgentID != f.AgentID {
			continue
		}
		out = append(out, sr)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceRequestDynamoRepository) AssignAgent(ctx context.Context, id, agentID string, status, expected entities.RequestStatus) (entities.ServiceRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #agent_id = :agent_id, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#agent_id":   "agent_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":agent_id":   &types.AttributeValueMemberS{Value: agentID},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceRequest{}, err
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func ownerQuery(table, index, attr, value string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                aws.String(table),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#owner = :owner"),
		ExpressionAttributeNames: map[string]string{"#owner": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	}
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:         sr.ID,
		ClientID:   sr.ClientID,
		CategoryID: sr.CategoryID,
		Details:    sr.Details,
		Priority:   string(sr.Priority),
		AgentID:    sr.AgentID,
		Status:     string(sr.Status),
		CreatedAt:  formatTime(sr.CreatedAt),
		UpdatedAt:  formatTime(sr.UpdatedAt),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:         it.ID,
		ClientID:   it.ClientID,
		CategoryID: it.CategoryID,
		Details:    it.Details,
		Priority:   entities.RequestPriority(it.Priority),
		AgentID:    it.AgentID,
		Status:     entities.RequestStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
