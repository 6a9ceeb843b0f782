package cliquotes

import (
	"context"
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/kodesoul/motivation/lib"
)

func init() {
	lib.Commands["quotes-whoami"] = quotesWhoami
	lib.Args["quotes-whoami"] = quotesWhoamiArgs{}
}

type quotesWhoamiArgs struct {
}

func (quotesWhoamiArgs) Description() string {
	return "\ncurrent account id and region\n"
}

func quotesWhoami() {
	var args quotesWhoamiArgs
	arg.MustParse(&args)
	ctx := context.Background()
	account, err := lib.StsAccount(ctx)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	fmt.Println(account, lib.Region())
}
