package cliquotes

import (
	"context"

	"github.com/alexflint/go-arg"
	"github.com/kodesoul/motivation/lib"
)

func init() {
	lib.Commands["quotes-table-rm"] = quotesTableRm
	lib.Args["quotes-table-rm"] = quotesTableRmArgs{}
}

type quotesTableRmArgs struct {
	Table   string `arg:"positional,required"`
	Preview bool   `arg:"-p,--preview"`
}

func (quotesTableRmArgs) Description() string {
	return "\ndelete a quotes table and every quote in it\n"
}

func quotesTableRm() {
	var args quotesTableRmArgs
	arg.MustParse(&args)
	ctx := context.Background()
	err := lib.DynamoDBDeleteTable(ctx, lib.DynamoDBClient(), args.Table, args.Preview)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}
