package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// DynamoLeadRepository is the DynamoDB implementation of LeadRepository.
type DynamoLeadRepository struct {
	client DynamoAPI
	table  string
}

// NewDynamoLeadRepository creates a repository over the given table.
func NewDynamoLeadRepository(client DynamoAPI, table string) *DynamoLeadRepository {
	return &DynamoLeadRepository{client: client, table: table}
}

var _ LeadRepository = (*DynamoLeadRepository)(nil)

func (r *DynamoLeadRepository) GetAll(ctx context.Context) ([]*model.Lead, error) {
	var all []*model.Lead
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		var page []*model.Lead
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal leads: %w", err)
		}
		all = append(all, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return all, nil
}

func (r *DynamoLeadRepository) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       leadKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get lead %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	var l model.Lead
	if err := attributevalue.UnmarshalMap(out.Item, &l); err != nil {
		return nil, fmt.Errorf("unmarshal lead %s: %w", id, err)
	}
	return &l, nil
}

func (r *DynamoLeadRepository) Add(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	rec := *l
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	rec.IsRead = false

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal lead: %w", err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return nil, fmt.Errorf("put lead: %w", err)
	}
	return &rec, nil
}

func (r *DynamoLeadRepository) MarkAsRead(ctx context.Context, id string) (*model.Lead, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 leadKey(id),
		UpdateExpression:    aws.String("SET isRead = :read"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update lead %s: %w", id, err)
	}
	var l model.Lead
	if err := attributevalue.UnmarshalMap(out.Attributes, &l); err != nil {
		return nil, fmt.Errorf("unmarshal updated lead %s: %w", id, err)
	}
	return &l, nil
}

func (r *DynamoLeadRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       leadKey(id),
	}); err != nil {
		return fmt.Errorf("delete lead %s: %w", id, err)
	}
	return nil
}

func leadKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
