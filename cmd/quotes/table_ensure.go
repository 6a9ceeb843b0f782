package cliquotes

import (
	"context"

	"github.com/alexflint/go-arg"
	"github.com/kodesoul/motivation/lib"
)

func init() {
	lib.Commands["quotes-table-ensure"] = quotesTableEnsure
	lib.Args["quotes-table-ensure"] = quotesTableEnsureArgs{}
}

type quotesTableEnsureArgs struct {
	Table   string   `arg:"positional" help:"defaults to DYNAMO_TABLE"`
	Attrs   []string `arg:"-a,--attr" help:"table attrs like read=5 or Tags.0.Key=team"`
	Preview bool     `arg:"-p,--preview"`
}

func (quotesTableEnsureArgs) Description() string {
	return `

ensure the quotes table exists and is active

>> motivation quotes-table-ensure MotivationalQuotes

`
}

func quotesTableEnsure() {
	var args quotesTableEnsureArgs
	arg.MustParse(&args)
	ctx := context.Background()
	if args.Table == "" {
		args.Table = loadConfig().Table
	}
	input, err := lib.DynamoDBEnsureInput(args.Table, []string{"id:s:hash"}, args.Attrs)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	err = lib.DynamoDBEnsureTable(ctx, lib.DynamoDBClient(), input, args.Preview)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}
