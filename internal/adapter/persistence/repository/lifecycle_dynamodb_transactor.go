package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxTransactActions is the TransactWriteItems limit.
const maxTransactActions = 100

// DynamoTransactor buffers lifecycle writes and commits them with a single
// TransactWriteItems call. Every write carries a condition so a concurrent
// change cancels the whole transaction.
//
// The request item records the id of its current proposal. Replacement reads
// it with a consistent GetItem and deletes that proposal by key, because the
// request_id index may not show a proposal committed moments ago.
type DynamoTransactor struct {
	ddb    dynamoAPI
	tables TableNames
}

var (
	_ interfaces.ITransactor    = (*DynamoTransactor)(nil)
	_ interfaces.IHealthChecker = (*DynamoTransactor)(nil)
)

func NewDynamoTransactor(ddb dynamoAPI, tables TableNames) *DynamoTransactor {
	return &DynamoTransactor{ddb: ddb, tables: tables}
}

func (t *DynamoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ILifecycleTx) error) error {
	tx := &dynamoLifecycleTx{ddb: t.ddb, tables: t.tables, now: time.Now().UTC()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if len(tx.items) == 0 {
		return nil
	}
	if len(tx.items) > maxTransactActions {
		return fmt.Errorf("transaction has %d actions, limit is %d", len(tx.items), maxTransactActions)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := t.ddb.TransactWriteItems(context.WithoutCancel(ctx), &dynamodb.TransactWriteItemsInput{
		TransactItems:      tx.items,
		ClientRequestToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		if isConditionFailure(err) {
			return interfaces.ErrConditionFailed
		}
		zap.L().Error("[lifecycle][repository] transact write failed", zap.Int("actions", len(tx.items)), zap.Error(err))
		return err
	}
	return nil
}

// Ping checks that the requests table is reachable.
func (t *DynamoTransactor) Ping(ctx context.Context) error {
	_, err := t.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(t.tables.Requests)})
	return err
}

func isConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			switch aws.ToString(r.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return true
			}
		}
		return false
	}
	var tc *types.TransactionConflictException
	return errors.As(err, &tc)
}

type dynamoLifecycleTx struct {
	ddb    dynamoAPI
	tables TableNames
	now    time.Time
	items  []types.TransactWriteItem

	// request as read by GuardRequestStatus, and its buffered guard update
	request *serviceRequestItem
	guard   *types.Update
	// buffered put of the proposal created in this transaction
	proposal *types.Put
	// proposal transitioned in this transaction, if any
	transitioned string
}

var _ interfaces.ILifecycleTx = (*dynamoLifecycleTx)(nil)

// GuardRequestStatus pins the request to the revision read now and bumps it,
// so two replacements built from the same revision cannot both commit.
func (tx *dynamoLifecycleTx) GuardRequestStatus(ctx context.Context, requestID string, allowed []entities.RequestStatus) error {
	it, err := tx.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if it.ID == "" || !statusIn(entities.RequestStatus(it.Status), allowed) {
		return interfaces.ErrConditionFailed
	}

	cond, values := inCondition("#status", "s", statusStrings(allowed))
	values[":rev"] = &types.AttributeValueMemberN{Value: fmt.Sprint(it.ProposalRev)}
	values[":next"] = &types.AttributeValueMemberN{Value: fmt.Sprint(it.ProposalRev + 1)}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(tx.now)}

	tx.guard = &types.Update{
		TableName:           aws.String(tx.tables.Requests),
		Key:                 stringKey(requestID),
		ConditionExpression: aws.String("attribute_exists(#id) AND " + cond + " AND (attribute_not_exists(#rev) OR #rev = :rev)"),
		UpdateExpression:    aws.String("SET #rev = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#rev":        "proposal_rev",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: values,
	}
	tx.request = &it
	tx.items = append(tx.items, types.TransactWriteItem{Update: tx.guard})
	return nil
}

func (tx *dynamoLifecycleTx) loadRequest(ctx context.Context, requestID string) (serviceRequestItem, error) {
	if tx.request != nil && tx.request.ID == requestID {
		return *tx.request, nil
	}
	out, err := tx.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(tx.tables.Requests),
		Key:            stringKey(requestID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return serviceRequestItem{}, err
	}
	var it serviceRequestItem
	if len(out.Item) == 0 {
		return it, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return serviceRequestItem{}, err
	}
	return it, nil
}

// DeleteProposalsByRequestID deletes the request's current proposal, found by
// key, plus any proposal the request_id index still lists for it.
func (tx *dynamoLifecycleTx) DeleteProposalsByRequestID(ctx context.Context, requestID string) error {
	req, err := tx.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	var ids []string
	if req.CurrentProposalID != "" {
		ids = append(ids, req.CurrentProposalID)
	}
	indexed, err := queryAll(ctx, tx.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(tx.tables.Proposals),
		IndexName:              aws.String(requestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return err
	}
	for _, m := range indexed {
		var p proposalItem
		if err := attributevalue.UnmarshalMap(m, &p); err != nil {
			return err
		}
		if !slices.Contains(ids, p.ID) {
			ids = append(ids, p.ID)
		}
	}

	for _, id := range ids {
		p, err := tx.getProposal(ctx, id)
		if err != nil {
			return err
		}
		if p.ID == "" || p.RequestID != requestID {
			continue
		}
		lineItemIDs, err := tx.lineItemIDs(ctx, p)
		if err != nil {
			return err
		}
		for _, liID := range lineItemIDs {
			tx.items = append(tx.items, types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(tx.tables.LineItems),
				Key:       stringKey(liID),
			}})
		}
		tx.items = append(tx.items, types.TransactWriteItem{Delete: &types.Delete{
			TableName:                aws.String(tx.tables.Proposals),
			Key:                      stringKey(p.ID),
			ConditionExpression:      aws.String("attribute_not_exists(#id) OR #request_id = :rid"),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#request_id": "request_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: requestID},
			},
		}})
	}
	return nil
}

func (tx *dynamoLifecycleTx) getProposal(ctx context.Context, id string) (proposalItem, error) {
	out, err := tx.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(tx.tables.Proposals),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return proposalItem{}, err
	}
	var p proposalItem
	if len(out.Item) == 0 {
		return p, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return proposalItem{}, err
	}
	return p, nil
}

// lineItemIDs merges the keys stored on the proposal with those the
// proposal_id index returns; items written before line_item_ids existed are
// only reachable through the index.
func (tx *dynamoLifecycleTx) lineItemIDs(ctx context.Context, p proposalItem) ([]string, error) {
	ids := slices.Clone(p.LineItemIDs)
	indexed, err := queryAll(ctx, tx.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(tx.tables.LineItems),
		IndexName:              aws.String(proposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: p.ID},
		},
	})
	if err != nil {
		return nil, err
	}
	for _, m := range indexed {
		var l lineItemItem
		if err := attributevalue.UnmarshalMap(m, &l); err != nil {
			return nil, err
		}
		if !slices.Contains(ids, l.ID) {
			ids = append(ids, l.ID)
		}
	}
	return ids, nil
}

// CreateProposal also points the guarded request at the new proposal, so it
// must follow GuardRequestStatus for the same request.
func (tx *dynamoLifecycleTx) CreateProposal(ctx context.Context, p entities.Proposal) error {
	if tx.guard == nil || tx.request == nil || tx.request.ID != p.RequestID {
		return errors.New("create proposal: request is not guarded in this transaction")
	}
	put, err := tx.put(tx.tables.Proposals, toProposalItem(p))
	if err != nil {
		return err
	}
	tx.proposal = put
	tx.guard.UpdateExpression = aws.String(aws.ToString(tx.guard.UpdateExpression) + ", #current = :current")
	tx.guard.ExpressionAttributeNames["#current"] = "current_proposal_id"
	tx.guard.ExpressionAttributeValues[":current"] = &types.AttributeValueMemberS{Value: p.ID}
	return nil
}

func (tx *dynamoLifecycleTx) CreateLineItems(ctx context.Context, items []entities.ProposalLineItem) error {
	var ids []types.AttributeValue
	for _, li := range items {
		if _, err := tx.put(tx.tables.LineItems, lineItemItem(li)); err != nil {
			return err
		}
		if tx.proposal != nil && li.ProposalID == proposalIDOf(tx.proposal) {
			ids = append(ids, &types.AttributeValueMemberS{Value: li.ID})
		}
	}
	if len(ids) > 0 {
		if prev, ok := tx.proposal.Item["line_item_ids"].(*types.AttributeValueMemberL); ok {
			ids = append(prev.Value, ids...)
		}
		tx.proposal.Item["line_item_ids"] = &types.AttributeValueMemberL{Value: ids}
	}
	return nil
}

func proposalIDOf(put *types.Put) string {
	if v, ok := put.Item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (tx *dynamoLifecycleTx) TransitionProposal(ctx context.Context, id string, to entities.ProposalStatus, from []entities.ProposalStatus) error {
	allowed := make([]string, 0, len(from))
	for _, s := range from {
		allowed = append(allowed, string(s))
	}
	tx.transition(tx.tables.Proposals, id, string(to), allowed)
	tx.transitioned = id
	return nil
}

// TransitionRequest, when the same transaction transitions a proposal, also
// requires that proposal to still be the request's current one. Requests
// written before current_proposal_id existed pass the check.
func (tx *dynamoLifecycleTx) TransitionRequest(ctx context.Context, id string, to entities.RequestStatus, from []entities.RequestStatus) error {
	u := tx.transition(tx.tables.Requests, id, string(to), statusStrings(from))
	if tx.transitioned != "" {
		u.ConditionExpression = aws.String(aws.ToString(u.ConditionExpression) + " AND (attribute_not_exists(#current) OR #current = :current)")
		u.ExpressionAttributeNames["#current"] = "current_proposal_id"
		u.ExpressionAttributeValues[":current"] = &types.AttributeValueMemberS{Value: tx.transitioned}
	}
	return nil
}

func (tx *dynamoLifecycleTx) CreateProject(ctx context.Context, p entities.Project) error {
	_, err := tx.put(tx.tables.Projects, toProjectItem(p))
	return err
}

func (tx *dynamoLifecycleTx) transition(table, id, to string, from []string) *types.Update {
	cond, values := inCondition("#status", "from", from)
	values[":to"] = &types.AttributeValueMemberS{Value: to}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(tx.now)}
	u := &types.Update{
		TableName:           aws.String(table),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND " + cond),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: values,
	}
	tx.items = append(tx.items, types.TransactWriteItem{Update: u})
	return u
}

func (tx *dynamoLifecycleTx) put(table string, item any) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, err
	}
	put := &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	tx.items = append(tx.items, types.TransactWriteItem{Put: put})
	return put, nil
}

func statusIn(s entities.RequestStatus, allowed []entities.RequestStatus) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func statusStrings(in []entities.RequestStatus) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}
