package repository

import (
	"context"
	"sort"
	"strings"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type categoryItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// CategoryDynamoRepository persists service categories (PK: id). The table is
// small and listed with a scan.
type CategoryDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb dynamoAPI, tableName string) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.ServiceCategory) (entities.ServiceCategory, error) {
	av, err := attributevalue.MarshalMap(categoryItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceCategory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceCategory{}, nil
	}
	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceCategory{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CategoryDynamoRepository) List(ctx context.Context) ([]entities.ServiceCategory, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceCategory, 0, len(raw))
	for _, m := range raw {
		var it categoryItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCategoryItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func fromCategoryItem(it categoryItem) entities.ServiceCategory {
	return entities.ServiceCategory{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
