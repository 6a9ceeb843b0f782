package cliquotes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/aws/aws-lambda-go/events"
	"github.com/kodesoul/motivation/authorizer"
	"github.com/kodesoul/motivation/lib"
)

func init() {
	lib.Commands["quotes-authorize"] = quotesAuthorize
	lib.Args["quotes-authorize"] = quotesAuthorizeArgs{}
}

type quotesAuthorizeArgs struct {
	Token     string `arg:"positional,required"`
	MethodArn string `arg:"positional" default:"arn:aws:execute-api:us-east-1:000000000000:local/prod/GET/quote"`
}

func (quotesAuthorizeArgs) Description() string {
	return `

run the authorizer against AUTH_TOKENS and print the policy

>> motivation quotes-authorize magic-token

`
}

func quotesAuthorize() {
	var args quotesAuthorizeArgs
	arg.MustParse(&args)
	ctx := context.Background()
	cfg := loadConfig()
	auth, err := authorizer.New(cfg.Auth.Tokens)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	out, err := auth.Authorize(ctx, events.APIGatewayCustomAuthorizerRequest{
		Type:               "TOKEN",
		AuthorizationToken: args.Token,
		MethodArn:          args.MethodArn,
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	bytes, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	fmt.Println(string(bytes))
}
