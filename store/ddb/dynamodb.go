/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ddb implements the DocStore store handle on AWS DynamoDB.
//
// Each collection maps onto one table (optionally prefixed) whose partition
// key is the store identity attribute "_id", a plain string. Equality-filter
// lookups that target anything other than the identity run as paged scans
// with a filter expression.
package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/docstore/storemodels"
)

// Store issues collection operations against DynamoDB tables.
type Store struct {
	client      *sdk.Client
	tablePrefix string
}

// NewDynamoDBClient initializes a DynamoDB client using static AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewStore wraps an existing client. tablePrefix, if non-empty, is prepended
// to every collection name to form the table name.
func NewStore(client *sdk.Client, tablePrefix string) *Store {
	return &Store{client: client, tablePrefix: tablePrefix}
}

func (s *Store) tableName(collection string) string {
	return s.tablePrefix + collection
}

// InsertOne writes a single record.
func (s *Store) InsertOne(ctx context.Context, collection string, rec storemodels.Record) error {
	item, err := attributevalue.MarshalMap(map[string]any(rec))
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	table := s.tableName(collection)
	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &table,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem error on %q: %w", table, err)
	}
	return nil
}

// maxBatchSize is the DynamoDB BatchWriteItem limit.
const maxBatchSize = 25

// maxBatchRetries bounds resubmission of unprocessed batch items.
const maxBatchRetries = 3

// InsertMany writes the records in batches of 25. Unprocessed items are
// resubmitted a bounded number of times; anything still unprocessed after
// that fails the whole call.
func (s *Store) InsertMany(ctx context.Context, collection string, recs []storemodels.Record) error {
	table := s.tableName(collection)
	for start := 0; start < len(recs); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(recs) {
			end = len(recs)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, rec := range recs[start:end] {
			item, err := attributevalue.MarshalMap(map[string]any(rec))
			if err != nil {
				return fmt.Errorf("failed to marshal record: %w", err)
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		pending := map[string][]types.WriteRequest{table: requests}
		for attempt := 0; len(pending) > 0; attempt++ {
			out, err := s.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return fmt.Errorf("BatchWriteItem error on %q: %w", table, err)
			}
			pending = out.UnprocessedItems
			if len(pending) > 0 && attempt >= maxBatchRetries {
				return fmt.Errorf("BatchWriteItem on %q: %d request(s) unprocessed after %d attempts",
					table, len(pending[table]), attempt+1)
			}
		}
	}
	return nil
}

// FindOne returns the first matching record, or nil when nothing matches.
// A filter on the identity alone uses GetItem; anything else scans.
func (s *Store) FindOne(ctx context.Context, collection string, filter storemodels.Filter) (storemodels.Record, error) {
	table := s.tableName(collection)

	if id, ok := filter[storemodels.IDKey].(string); ok && len(filter) == 1 {
		out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
			TableName: &table,
			Key: map[string]types.AttributeValue{
				storemodels.IDKey: &types.AttributeValueMemberS{Value: id},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("GetItem error on %q: %w", table, err)
		}
		if out.Item == nil {
			return nil, nil
		}
		return unmarshalItem(out.Item)
	}

	recs, err := s.scan(ctx, table, filter, true)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

// FindMany returns all matching records.
func (s *Store) FindMany(ctx context.Context, collection string, filter storemodels.Filter) ([]storemodels.Record, error) {
	return s.scan(ctx, s.tableName(collection), filter, false)
}

func (s *Store) scan(ctx context.Context, table string, filter storemodels.Filter, firstOnly bool) ([]storemodels.Record, error) {
	expr, names, values, err := buildFilterExpression(filter)
	if err != nil {
		return nil, err
	}

	input := &sdk.ScanInput{TableName: &table}
	if expr != "" {
		input.FilterExpression = &expr
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var out []storemodels.Record
	for {
		page, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("Scan error on %q: %w", table, err)
		}
		for _, item := range page.Items {
			rec, err := unmarshalItem(item)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
			if firstOnly {
				return out, nil
			}
		}
		if page.LastEvaluatedKey == nil {
			return out, nil
		}
		input.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

func unmarshalItem(item map[string]types.AttributeValue) (storemodels.Record, error) {
	var rec map[string]any
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return storemodels.Record(rec), nil
}
