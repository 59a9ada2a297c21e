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

// DynamoInquiryRepository is the DynamoDB implementation of InquiryRepository.
// The table is keyed by the string attribute "id" alone.
type DynamoInquiryRepository struct {
	client DynamoAPI
	table  string
}

// NewDynamoInquiryRepository creates a repository over the given table.
func NewDynamoInquiryRepository(client DynamoAPI, table string) *DynamoInquiryRepository {
	return &DynamoInquiryRepository{client: client, table: table}
}

var _ InquiryRepository = (*DynamoInquiryRepository)(nil)

// GetAll scans the whole table, following LastEvaluatedKey until exhausted.
// Order is whatever the scan yields; callers must not rely on it.
func (r *DynamoInquiryRepository) GetAll(ctx context.Context) ([]*model.Inquiry, error) {
	var all []*model.Inquiry
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		var page []*model.Inquiry
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal inquiries: %w", err)
		}
		all = append(all, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return all, nil
}

func (r *DynamoInquiryRepository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       inquiryKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get inquiry %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	var in model.Inquiry
	if err := attributevalue.UnmarshalMap(out.Item, &in); err != nil {
		return nil, fmt.Errorf("unmarshal inquiry %s: %w", id, err)
	}
	return &in, nil
}

// Add stamps id and createdAt after copying the caller's fields, so the
// generated values always win over anything the client posted.
func (r *DynamoInquiryRepository) Add(ctx context.Context, in *model.Inquiry) (*model.Inquiry, error) {
	rec := *in
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	rec.IsRead = false

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal inquiry: %w", err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return nil, fmt.Errorf("put inquiry: %w", err)
	}
	return &rec, nil
}

// MarkAsRead guards the update with attribute_exists(id) so that updating a
// missing record fails as not-found instead of upserting a phantom item.
func (r *DynamoInquiryRepository) MarkAsRead(ctx context.Context, id string) (*model.Inquiry, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 inquiryKey(id),
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
		return nil, fmt.Errorf("update inquiry %s: %w", id, err)
	}
	var in model.Inquiry
	if err := attributevalue.UnmarshalMap(out.Attributes, &in); err != nil {
		return nil, fmt.Errorf("unmarshal updated inquiry %s: %w", id, err)
	}
	return &in, nil
}

// Delete is unconditional; DynamoDB treats deleting an absent key as success,
// which makes the operation idempotent from the caller's perspective.
func (r *DynamoInquiryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       inquiryKey(id),
	}); err != nil {
		return fmt.Errorf("delete inquiry %s: %w", id, err)
	}
	return nil
}

func inquiryKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
