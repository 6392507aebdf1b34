package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type projectItem struct {
	ID              string `dynamodbav:"id"`
	RequestID       string `dynamodbav:"request_id"`
	ClientID        string `dynamodbav:"client_id"`
	AgentID         string `dynamodbav:"agent_id,omitempty"`
	GlobalStatus    string `dynamodbav:"global_status"`
	ProgressPercent int    `dynamodbav:"progress_percent"`
	ECD             string `dynamodbav:"ecd,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type projectNoteItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	UserID    string `dynamodbav:"user_id"`
	Content   string `dynamodbav:"content"`
	CreatedAt string `dynamodbav:"created_at"`
}

type projectAssetItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	FilePath  string `dynamodbav:"file_path"`
	FileName  string `dynamodbav:"file_name"`
	Type      string `dynamodbav:"type"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ProjectDynamoRepository persists projects and their notes and assets.
//
// Table requirements:
//   - projects PK: id, GSIs request_id-index, client_id-index, agent_id-index
//   - project_notes / project_assets PK: id, GSI project_id-index (SK: created_at)
type ProjectDynamoRepository struct {
	ddb         dynamoAPI
	tableName   string
	notesTable  string
	assetsTable string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb dynamoAPI, tableName, notesTable, assetsTable string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName, notesTable: notesTable, assetsTable: assetsTable}
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Project, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil || len(raw) == 0 {
		return entities.Project{}, err
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context, f entities.ListFilter) ([]entities.Project, error) {
	if f.DenyAll {
		return []entities.Project{}, nil
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
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.Project, 0, len(raw))
	for _, m := range raw {
		var it projectItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		p := fromProjectItem(it)
		if f.Status != "" && string(p.GlobalStatus) != f.Status {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, u entities.ProjectStatusUpdate) (entities.Project, error) {
	sets := []string{"#updated_at = :updated_at"}
	names := map[string]string{"#id": "id", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	if u.GlobalStatus != nil {
		sets = append(sets, "#global_status = :global_status")
		names["#global_status"] = "global_status"
		values[":global_status"] = &types.AttributeValueMemberS{Value: string(*u.GlobalStatus)}
	}
	if u.ProgressPercent != nil {
		av, err := attributevalue.Marshal(*u.ProgressPercent)
		if err != nil {
			return entities.Project{}, err
		}
		sets = append(sets, "#progress_percent = :progress_percent")
		names["#progress_percent"] = "progress_percent"
		values[":progress_percent"] = av
	}
	if u.ECD != nil {
		sets = append(sets, "#ecd = :ecd")
		names["#ecd"] = "ecd"
		values[":ecd"] = &types.AttributeValueMemberS{Value: formatDate(u.ECD)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) AddNote(ctx context.Context, n entities.ProjectNote) (entities.ProjectNote, error) {
	av, err := attributevalue.MarshalMap(projectNoteItem{
		ID:        n.ID,
		ProjectID: n.ProjectID,
		UserID:    n.UserID,
		Content:   n.Content,
		CreatedAt: formatTime(n.CreatedAt),
	})
	if err != nil {
		return entities.ProjectNote{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.notesTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ProjectNote{}, err
	}
	return n, nil
}

func (r *ProjectDynamoRepository) ListNotes(ctx context.Context, projectID string) ([]entities.ProjectNote, error) {
	raw, err := queryAll(ctx, r.ddb, projectChildrenQuery(r.notesTable, projectID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProjectNote, 0, len(raw))
	for _, m := range raw {
		var it projectNoteItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.ProjectNote{
			ID:        it.ID,
			ProjectID: it.ProjectID,
			UserID:    it.UserID,
			Content:   it.Content,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *ProjectDynamoRepository) ListAssets(ctx context.Context, projectID string) ([]entities.ProjectAsset, error) {
	raw, err := queryAll(ctx, r.ddb, projectChildrenQuery(r.assetsTable, projectID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProjectAsset, 0, len(raw))
	for _, m := range raw {
		var it projectAssetItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.ProjectAsset{
			ID:        it.ID,
			ProjectID: it.ProjectID,
			FilePath:  it.FilePath,
			FileName:  it.FileName,
			Type:      it.Type,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func projectChildrenQuery(table, projectID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(projectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(true),
	}
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:              p.ID,
		RequestID:       p.RequestID,
		ClientID:        p.ClientID,
		AgentID:         p.AgentID,
		GlobalStatus:    string(p.GlobalStatus),
		ProgressPercent: p.ProgressPercent,
		ECD:             formatDate(p.ECD),
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:              it.ID,
		RequestID:       it.RequestID,
		ClientID:        it.ClientID,
		AgentID:         it.AgentID,
		GlobalStatus:    entities.ProjectStatus(it.GlobalStatus),
		ProgressPercent: it.ProgressPercent,
		ECD:             parseDate(it.ECD),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
