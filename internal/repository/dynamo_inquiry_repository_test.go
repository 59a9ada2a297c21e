package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// ---------------------------------------------------------------------------
// fakeDynamo — in-memory stub for the DynamoDB client
// ---------------------------------------------------------------------------

type fakeDynamo struct {
	putItemFunc    func(ctx context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItemFunc    func(ctx context.Context, in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	scanFunc       func(ctx context.Context, in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	updateItemFunc func(ctx context.Context, in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItemFunc func(ctx context.Context, in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
}

func (f *fakeDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putItemFunc != nil {
		return f.putItemFunc(ctx, in)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getItemFunc != nil {
		return f.getItemFunc(ctx, in)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanFunc != nil {
		return f.scanFunc(ctx, in)
	}
	return &dynamodb.ScanOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.updateItemFunc != nil {
		return f.updateItemFunc(ctx, in)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.deleteItemFunc != nil {
		return f.deleteItemFunc(ctx, in)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

// ---------------------------------------------------------------------------
// Add tests
// ---------------------------------------------------------------------------

func TestDynamoInquiryRepository_Add_AssignsIDAndCreatedAt(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)

	var putItem map[string]types.AttributeValue
	fake := &fakeDynamo{
		putItemFunc: func(ctx context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			putItem = in.Item
			if aws.ToString(in.TableName) != "inquiries-test" {
				t.Errorf("expected table inquiries-test, got %q", aws.ToString(in.TableName))
			}
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	repo := NewDynamoInquiryRepository(fake, "inquiries-test")

	stored, err := repo.Add(context.Background(), &model.Inquiry{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Looking for a refi quote",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(stored.ID); err != nil {
		t.Errorf("expected a UUID id, got %q", stored.ID)
	}
	created, err := time.Parse(time.RFC3339, stored.CreatedAt)
	if err != nil {
		t.Fatalf("createdAt is not RFC3339: %q", stored.CreatedAt)
	}
	if created.Before(before) {
		t.Errorf("createdAt %v is before the call started %v", created, before)
	}

	// Returned record must be exactly what was persisted.
	if putItem == nil {
		t.Fatal("expected PutItem to be called")
	}
	var persisted model.Inquiry
	if err := attributevalue.UnmarshalMap(putItem, &persisted); err != nil {
		t.Fatalf("unmarshal persisted item: %v", err)
	}
	if persisted != *stored {
		t.Errorf("persisted record %+v differs from returned record %+v", persisted, *stored)
	}
}

// TestDynamoInquiryRepository_Add_GeneratedFieldsWin verifies that a caller
// cannot smuggle in its own id, createdAt or isRead.
func TestDynamoInquiryRepository_Add_GeneratedFieldsWin(t *testing.T) {
	repo := NewDynamoInquiryRepository(&fakeDynamo{}, "inquiries-test")

	stored, err := repo.Add(context.Background(), &model.Inquiry{
		ID:        "attacker-chosen-id",
		CreatedAt: "1999-01-01T00:00:00Z",
		IsRead:    true,
		Email:     "x@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID == "attacker-chosen-id" {
		t.Error("caller-supplied id must be overwritten")
	}
	if stored.CreatedAt == "1999-01-01T00:00:00Z" {
		t.Error("caller-supplied createdAt must be overwritten")
	}
	if stored.IsRead {
		t.Error("new records must start with isRead=false")
	}
}

func TestDynamoInquiryRepository_Add_StoreError(t *testing.T) {
	fake := &fakeDynamo{
		putItemFunc: func(ctx context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("provisioned throughput exceeded")
		},
	}
	repo := NewDynamoInquiryRepository(fake, "inquiries-test")

	if _, err := repo.Add(context.Background(), &model.Inquiry{Email: "x@example.com"}); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

// ---------------------------------------------------------------------------
// GetAll tests
// ---------------------------------------------------------------------------

// TestDynamoInquiryRepository_GetAll_FollowsPagination verifies that scan
// pages are concatenated until LastEvaluatedKey is exhausted.
func TestDynamoInquiryRepository_GetAll_FollowsPagination(t *testing.T) {
	page1, _ := attributevalue.MarshalMap(model.Inquiry{ID: "a", Email: "a@example.com"})
	page2, _ := attributevalue.MarshalMap(model.Inquiry{ID: "b", Email: "b@example.com"})
	lastKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "a"}}

	calls := 0
	fake := &fakeDynamo{
		scanFunc: func(ctx context.Context, in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			calls++
			switch calls {
			case 1:
				if in.ExclusiveStartKey != nil {
					t.Error("first scan must not carry a start key")
				}
				return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{page1}, LastEvaluatedKey: lastKey}, nil
			case 2:
				if in.ExclusiveStartKey == nil {
					t.Error("second scan must resume from LastEvaluatedKey")
				}
				return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{page2}}, nil
			default:
				t.Fatalf("unexpected scan call %d", calls)
				return nil, nil
			}
		},
	}
	repo := NewDynamoInquiryRepository(fake, "inquiries-test")

	all, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records across pages, got %d", len(all))
	}
	if all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("unexpected records: %+v", all)
	}
}

// ---------------------------------------------------------------------------
// GetByID tests
// ---------------------------------------------------------------------------

func TestDynamoInquiryRepository_GetByID_NotFound(t *testing.T) {
	fake := &fakeDynamo{
		getItemFunc: func(ctx context.Context, in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	repo := NewDynamoInquiryRepository(fake, "inquiries-test")

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// MarkAsRead tests
// ---------------------------------------------------------------------------

func TestDynamoInquiryRepository_MarkAsRead_ReturnsUpdatedRecord(t *testing.T) {
	updated, _ := attributevalue.MarshalMap(model.Inquiry{
		ID:        "inq-1",
		Email:     "jane@example.com",
		Message:   "hello",
		CreatedAt: "2025-06-01T10:00:00Z",
		IsRead:    true,
	})

	fake := &fakeDynamo{
		updateItemFunc: func(ctx context.Context, in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_exists(id)" {
				t.Errorf("missing existence guard, got %q", aws.ToString(in.ConditionExpression))
			}
			if in.ReturnValues != types.ReturnValueAllNew {
				t.Errorf("expected ALL_NEW return values, got %v", in.ReturnValues)
			}
			return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
		},
	}
	repo := NewDynamoInquiryRepository(fake, "inquiries-test")

	rec, err := repo.MarkAsRead(context.Background(), "inq-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.IsRead {
		t.Error("expected isRead=true on the returned record")
	}
	if rec.ID != "inq-1" || rec.Email != "jane@example.com" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestDynamoInquiryRepository_MarkAsRead_NotFound(t *testing.T) {
	fake := &fakeDynamo{
		updateItemFunc: func(ctx context.Context, in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		},
	}
	repo := NewDynamoInquiryRepository(fake, "inquiries-test")

	_, err := repo.MarkAsRead(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a missing id, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

// TestDynamoInquiryRepository_Delete_Idempotent mirrors the store behavior:
// deleting an absent key is a success, so a double delete never errors.
func TestDynamoInquiryRepository_Delete_Idempotent(t *testing.T) {
	deletes := 0
	fake := &fakeDynamo{
		deleteItemFunc: func(ctx context.Context, in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			deletes++
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
	repo := NewDynamoInquiryRepository(fake, "inquiries-test")

	if err := repo.Delete(context.Background(), "inq-1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(context.Background(), "inq-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deletes != 2 {
		t.Errorf("expected 2 delete calls, got %d", deletes)
	}
}
