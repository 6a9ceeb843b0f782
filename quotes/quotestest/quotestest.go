// Package quotestest provides in-memory stand-ins for the dynamodb and
// bedrock clients used by package quotes.
package quotestest

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kodesoul/motivation/quotes"
)

const offsetKey = "offset"

// Table is an unordered in-memory table. Scan returns PageSize items per
// page when PageSize is set.
type Table struct {
	mu       sync.Mutex
	items    []map[string]ddbtypes.AttributeValue
	PageSize int
	PutErr   error
	ScanErr  error
	Scans    int
}

func (t *Table) Add(records ...quotes.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, record := range records {
		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			panic(err)
		}
		t.items = append(t.items, item)
	}
}

func (t *Table) Records() []quotes.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	var records []quotes.Record
	err := attributevalue.UnmarshalListOfMaps(t.items, &records)
	if err != nil {
		panic(err)
	}
	return records
}

func (t *Table) PutItem(_ context.Context, input *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.PutErr != nil {
		return nil, t.PutErr
	}
	t.items = append(t.items, input.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (t *Table) Scan(_ context.Context, input *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Scans++
	if t.ScanErr != nil {
		return nil, t.ScanErr
	}
	start := 0
	if av, ok := input.ExclusiveStartKey[offsetKey].(*ddbtypes.AttributeValueMemberN); ok {
		n, err := strconv.Atoi(av.Value)
		if err != nil {
			return nil, err
		}
		start = n
	}
	end := len(t.items)
	if t.PageSize > 0 && start+t.PageSize < end {
		end = start + t.PageSize
	}
	out := &dynamodb.ScanOutput{
		Items: t.items[start:end],
		Count: int32(end - start),
	}
	if end < len(t.items) {
		out.LastEvaluatedKey = map[string]ddbtypes.AttributeValue{
			offsetKey: &ddbtypes.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}

// Model answers InvokeModel with an anthropic messages response. Texts are
// handed out in order and wrap around; Body, when set, is returned verbatim.
type Model struct {
	mu     sync.Mutex
	Texts  []string
	Body   []byte
	Err    error
	Inputs []*bedrockruntime.InvokeModelInput
}

func (m *Model) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Inputs)
}

func (m *Model) InvokeModel(_ context.Context, input *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inputs = append(m.Inputs, input)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Body != nil {
		return &bedrockruntime.InvokeModelOutput{Body: m.Body, ContentType: input.Accept}, nil
	}
	text := ""
	if len(m.Texts) > 0 {
		text = m.Texts[(len(m.Inputs)-1)%len(m.Texts)]
	}
	return &bedrockruntime.InvokeModelOutput{Body: AnthropicBody(text), ContentType: input.Accept}, nil
}

func AnthropicBody(text string) []byte {
	body, err := json.Marshal(map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]string{
			{"type": "text", "text": text},
		},
		"stop_reason": "end_turn",
	})
	if err != nil {
		panic(err)
	}
	return body
}
