package repository

import (
	"context"
	"errors"
	"sort"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// legacyPendingStatus is still present on older user records.
const legacyPendingStatus = "PENDING"

type userItem struct {
	ID              string `dynamodbav:"id"`
	FullName        string `dynamodbav:"full_name"`
	Email           string `dynamodbav:"email"`
	Role            string `dynamodbav:"role"`
	Status          string `dynamodbav:"status"`
	IsEmailVerified bool   `dynamodbav:"is_email_verified"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type clientItem struct {
	ID             string `dynamodbav:"id"`
	UserID         string `dynamodbav:"user_id"`
	CompanyName    string `dynamodbav:"company_name"`
	Industry       string `dynamodbav:"industry"`
	WebsiteURL     string `dynamodbav:"website_url"`
	TechnicalVault string `dynamodbav:"technical_vault"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// AccountDynamoRepository persists users and client profiles.
//
// Table requirements:
//   - users PK: id
//   - clients PK: id, GSI user_id-index (PK: user_id)
//
// User listings are admin-only and scan the users table.
type AccountDynamoRepository struct {
	ddb          dynamoAPI
	usersTable   string
	clientsTable string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb dynamoAPI, usersTable, clientsTable string) *AccountDynamoRepository {
	return &AccountDynamoRepository{ddb: ddb, usersTable: usersTable, clientsTable: clientsTable}
}

func (r *AccountDynamoRepository) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	if err := r.put(ctx, r.usersTable, toUserItem(u)); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *AccountDynamoRepository) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := r.get(ctx, r.usersTable, id, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// ListUsersByStatus also matches the legacy "PENDING" literal when asked for
// users pending approval.
func (r *AccountDynamoRepository) ListUsersByStatus(ctx context.Context, status entities.UserStatus) ([]entities.User, error) {
	values := []string{string(status)}
	if status == entities.UserStatusPendingApproval {
		values = append(values, legacyPendingStatus)
	}
	cond, av := inCondition("#status", "s", values)
	return r.scanUsers(ctx, cond, map[string]string{"#status": "status"}, av)
}

func (r *AccountDynamoRepository) ListUsersByRole(ctx context.Context, role entities.Role) ([]entities.User, error) {
	return r.scanUsers(ctx, "#role = :role",
		map[string]string{"#role": "role"},
		map[string]types.AttributeValue{":role": &types.AttributeValueMemberS{Value: string(role)}},
	)
}

func (r *AccountDynamoRepository) scanUsers(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]entities.User, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.usersTable),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(raw))
	for _, m := range raw {
		var it userItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromUserItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *AccountDynamoRepository) UpdateUserStatus(ctx context.Context, id string, status entities.UserStatus) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.usersTable),
		Key:                      stringKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		UpdateExpression:         aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *AccountDynamoRepository) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := r.put(ctx, r.clientsTable, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *AccountDynamoRepository) GetClientByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := r.get(ctx, r.clientsTable, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *AccountDynamoRepository) GetClientByUserID(ctx context.Context, userID string) (entities.Client, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.clientsTable),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Items) == 0 {
		return entities.Client{}, nil
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *AccountDynamoRepository) UpdateClientProfile(ctx context.Context, id string, u entities.ClientProfileUpdate) (entities.Client, error) {
	expr := "SET #industry = :industry, #website_url = :website_url"
	names := map[string]string{"#id": "id", "#industry": "industry", "#website_url": "website_url"}
	values := map[string]types.AttributeValue{
		":industry":    &types.AttributeValueMemberS{Value: u.Industry},
		":website_url": &types.AttributeValueMemberS{Value: u.WebsiteURL},
	}
	if u.TechnicalVault != nil {
		expr += ", #technical_vault = :technical_vault"
		names["#technical_vault"] = "technical_vault"
		values[":technical_vault"] = &types.AttributeValueMemberS{Value: *u.TechnicalVault}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.clientsTable),
		Key:                       stringKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *AccountDynamoRepository) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}

func (r *AccountDynamoRepository) get(ctx context.Context, table, id string, dst any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, dst)
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		Role:            string(u.Role),
		Status:          string(u.Status),
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	role, ok := entities.ParseRole(it.Role)
	if !ok {
		role = entities.Role(it.Role)
	}
	status, ok := entities.ParseUserStatus(it.Status)
	if !ok {
		status = entities.UserStatus(it.Status)
	}
	return entities.User{
		ID:              it.ID,
		FullName:        it.FullName,
		Email:           it.Email,
		Role:            role,
		Status:          status,
		IsEmailVerified: it.IsEmailVerified,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:             c.ID,
		UserID:         c.UserID,
		CompanyName:    c.CompanyName,
		Industry:       c.Industry,
		WebsiteURL:     c.WebsiteURL,
		TechnicalVault: c.TechnicalVault,
		CreatedAt:      formatTime(c.CreatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:             it.ID,
		UserID:         it.UserID,
		CompanyName:    it.CompanyName,
		Industry:       it.Industry,
		WebsiteURL:     it.WebsiteURL,
		TechnicalVault: it.TechnicalVault,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
