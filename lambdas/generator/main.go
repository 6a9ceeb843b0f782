//
// attr: memory 256
// attr: timeout 60
// policy: AWSLambdaBasicExecutionRole
// allow: bedrock:InvokeModel arn:aws:bedrock:*::foundation-model/anthropic.claude-3-sonnet-20240229-v1:0
// dynamodb: ${DYNAMO_TABLE} id:s:hash
// allow: dynamodb:PutItem arn:aws:dynamodb:*:*:table/${DYNAMO_TABLE}
// trigger: api
// trigger: cloudwatch cron(0 12 * * ? *) # one new quote every morning

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
)

func main() {
	cfg, err := lib.LoadConfig()
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	lib.Logger.SetLevel(cfg.Log.Level)
	generator := quotes.NewGenerator(
		quotes.NewModel(lib.BedrockClient(), cfg.Model.ID),
		quotes.NewStore(lib.DynamoDBClient(), cfg.Table),
		quotes.WithAuthor(cfg.Author),
	)
	lambda.Start(generator.Handle)
}
