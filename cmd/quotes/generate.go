package cliquotes

import (
	"context"
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

func init() {
	lib.Commands["quotes-generate"] = quotesGenerate
	lib.Args["quotes-generate"] = quotesGenerateArgs{}
}

type quotesGenerateArgs struct {
	Count          int `arg:"-n,--count" default:"1" help:"quotes to generate, each one is a billed model call"`
	MaxConcurrency int `arg:"-c,--max-concurrency" default:"4"`
}

func (quotesGenerateArgs) Description() string {
	return `

generate quotes and store them

>> motivation quotes-generate -n 10

`
}

func quotesGenerate() {
	var args quotesGenerateArgs
	arg.MustParse(&args)
	if args.Count < 1 || args.MaxConcurrency < 1 {
		lib.Logger.Fatal("error: count and max-concurrency must be positive")
	}
	ctx := context.Background()
	generator := newGenerator(loadConfig())
	records, err := generateMany(ctx, generator, args.Count, args.MaxConcurrency)
	for _, record := range records {
		if record.ID != "" {
			fmt.Println(record.Quote)
		}
	}
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}

// generateMany keeps whatever succeeded before the first failure; records
// for calls that failed or never ran are left zero.
func generateMany(ctx context.Context, generator *quotes.Generator, count, maxConcurrency int) ([]quotes.Record, error) {
	records := make([]quotes.Record, count)
	concurrency := semaphore.NewWeighted(int64(maxConcurrency))
	group, ctx := errgroup.WithContext(ctx)
	for i := range count {
		err := concurrency.Acquire(ctx, 1)
		if err != nil {
			break
		}
		group.Go(func() error {
			defer concurrency.Release(1)
			record, err := generator.Generate(ctx)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	err := group.Wait()
	return records, err
}
