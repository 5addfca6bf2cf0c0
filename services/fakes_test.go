package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeRepo is an in-memory MatchRepository that counts saves.
type fakeRepo struct {
	mu      sync.Mutex
	records map[string]models.MatchCollections
	saves   int
	saveErr error
	loadErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]models.MatchCollections{}}
}

func (f *fakeRepo) Load(ctx context.Context, userID string, defaults models.MatchCollections) (models.MatchCollections, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return models.MatchCollections{}, f.loadErr
	}
	stored, ok := f.records[userID]
	if !ok {
		f.records[userID] = defaults.Normalized()
		return defaults.Normalized(), nil
	}
	return stored.Normalized(), nil
}

func (f *fakeRepo) Save(ctx context.Context, userID string, collections models.MatchCollections) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.records[userID] = collections.Normalized()
	return nil
}

func (f *fakeRepo) Ping(ctx context.Context) error { return nil }

func (f *fakeRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

func (f *fakeRepo) record(userID string) (models.MatchCollections, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.records[userID]
	return c, ok
}

// fakeDynamo keeps items per table in memory. keyAttrs names the key
// attributes of each known table.
type fakeDynamo struct {
	mu       sync.Mutex
	keyAttrs map[string][]string
	items    map[string][]map[string]types.AttributeValue
	err      error
}

func newFakeDynamo() *fakeDynamo {
	keyAttrs := map[string][]string{}
	keyAttrs[models.MatchStatesTable] = []string{"userId"}
	keyAttrs[models.UsersTable] = []string{"id"}
	keyAttrs[models.Skill{}.TableName()] = []string{"userId", "skillId"}
	return &fakeDynamo{
		keyAttrs: keyAttrs,
		items:    map[string][]map[string]types.AttributeValue{},
	}
}

func sValue(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) find(table string, key map[string]types.AttributeValue) int {
	for i, item := range f.items[table] {
		match := true
		for attr, v := range key {
			if sValue(item[attr]) != sValue(v) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	idx := f.find(*params.TableName, params.Key)
	if idx < 0 {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: f.items[*params.TableName][idx]}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	table := *params.TableName
	attrs, ok := f.keyAttrs[table]
	if !ok {
		return nil, fmt.Errorf("table %s does not exist", table)
	}
	key := map[string]types.AttributeValue{}
	for _, a := range attrs {
		key[a] = params.Item[a]
	}
	idx := f.find(table, key)
	if idx >= 0 && params.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	if idx >= 0 {
		f.items[table][idx] = params.Item
	} else {
		f.items[table] = append(f.items[table], params.Item)
	}
	return &dynamodb.PutItemOutput{}, nil
}

// Query supports a single equality condition on one named attribute.
func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if len(params.ExpressionAttributeNames) != 1 || len(params.ExpressionAttributeValues) != 1 {
		return nil, errors.New("fake query supports one condition")
	}
	var attr, want string
	for _, name := range params.ExpressionAttributeNames {
		attr = name
	}
	for _, v := range params.ExpressionAttributeValues {
		want = sValue(v)
	}
	out := &dynamodb.QueryOutput{}
	for _, item := range f.items[*params.TableName] {
		if sValue(item[attr]) == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.ScanOutput{Items: append([]map[string]types.AttributeValue(nil), f.items[*params.TableName]...)}, nil
}

func (f *fakeDynamo) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.keyAttrs[*params.TableName]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table not found")}
	}
	return &dynamodb.DescribeTableOutput{}, nil
}
