package lib

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaGetMetadata(t *testing.T) {
	t.Setenv("DYNAMO_TABLE", "Quotes")
	meta, err := LambdaGetMetadata(strings.Split(`//
// attr: name quotes-gen
// attr:   timeout   60
// policy: AWSLambdaBasicExecutionRole
// allow: dynamodb:PutItem arn:aws:dynamodb:*:*:table/${DYNAMO_TABLE}
// trigger: cloudwatch rate(1 day) # daily

package main

// attr: memory 1024
func main() {}
`, "\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name quotes-gen", "timeout 60"}, meta.Attr)
	assert.Equal(t, []string{"AWSLambdaBasicExecutionRole"}, meta.Policy)
	assert.Equal(t, []string{"dynamodb:PutItem arn:aws:dynamodb:*:*:table/Quotes"}, meta.Allow)
	assert.Equal(t, []string{"cloudwatch rate(1 day)"}, meta.Trigger)
	assert.Equal(t, []string{"DYNAMO_TABLE=Quotes"}, meta.Env)
	assert.Equal(t, "quotes-gen", LambdaName("lambdas/generator/main.go", meta))
}

func TestLambdaGetMetadataErrors(t *testing.T) {
	t.Setenv("DYNAMO_TABLE", "")
	tests := []struct {
		name string
		line string
		want string
	}{
		{"unknown token", "// env: FOO=bar", "unknown configuration comment"},
		{"unknown attr", "// attr: disk 10", "unknown attr"},
		{"digits", "// attr: memory lots", "should be digits"},
		{"trigger", "// trigger: sqs queue", "unknown trigger"},
		{"missing env", "// dynamodb: ${DYNAMO_TABLE} id:s:hash", "missing environment variable"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LambdaGetMetadata([]string{test.line, "package main"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLambdaNameFromDir(t *testing.T) {
	assert.Equal(t, "quote-reader", LambdaName("lambdas/quote_reader/main.go", &LambdaMetadata{}))
}

func TestLambdaParseFileRejectsOtherFiles(t *testing.T) {
	_, err := LambdaParseFile("handler.py")
	assert.Error(t, err)
}

func TestLambdaHeaders(t *testing.T) {
	t.Setenv("DYNAMO_TABLE", "MotivationalQuotes")

	meta, err := LambdaParseFile("../lambdas/generator/main.go")
	require.NoError(t, err)
	assert.Equal(t, "generator", LambdaName("../lambdas/generator/main.go", meta))
	assert.Contains(t, meta.Trigger, "api")
	assert.Contains(t, meta.Allow, "dynamodb:PutItem arn:aws:dynamodb:*:*:table/MotivationalQuotes")
	assert.Equal(t, []string{"DYNAMO_TABLE=MotivationalQuotes"}, meta.Env)
	tables, err := LambdaTables(meta)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "MotivationalQuotes", aws.ToString(tables[0].TableName))
	assert.Equal(t, ddbtypes.BillingModePayPerRequest, tables[0].BillingMode)
	require.Len(t, tables[0].KeySchema, 1)
	assert.Equal(t, "id", aws.ToString(tables[0].KeySchema[0].AttributeName))
	assert.Equal(t, ddbtypes.KeyTypeHash, tables[0].KeySchema[0].KeyType)

	meta, err = LambdaParseFile("../lambdas/reader/main.go")
	require.NoError(t, err)
	assert.Equal(t, []string{"dynamodb:Scan arn:aws:dynamodb:*:*:table/MotivationalQuotes"}, meta.Allow)

	meta, err = LambdaParseFile("../lambdas/authorizer/main.go")
	require.NoError(t, err)
	assert.Empty(t, meta.Trigger)
	assert.Empty(t, meta.Allow)
}
