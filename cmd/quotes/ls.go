package cliquotes

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

func init() {
	lib.Commands["quotes-ls"] = quotesLs
	lib.Args["quotes-ls"] = quotesLsArgs{}
}

type quotesLsArgs struct {
	Yaml bool `arg:"-y,--yaml" help:"print full records as yaml"`
}

func (quotesLsArgs) Description() string {
	return "\nlist stored quotes\n"
}

func quotesLs() {
	var args quotesLsArgs
	arg.MustParse(&args)
	ctx := context.Background()
	store := newStore(loadConfig())
	human := isatty.IsTerminal(os.Stdout.Fd())
	var records []quotes.Record
	err := store.Scan(ctx, func(record quotes.Record) error {
		if args.Yaml {
			records = append(records, record)
			return nil
		}
		return writeRecordLine(os.Stdout, record, human, time.Now())
	})
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	if args.Yaml {
		err = writeRecordsYaml(os.Stdout, records)
		if err != nil {
			lib.Logger.Fatal("error: ", err)
		}
	}
}

func writeRecordLine(w io.Writer, record quotes.Record, human bool, now time.Time) error {
	date := record.Date
	if human {
		date = humanDate(record.Date, now)
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", record.ID, date, strings.ReplaceAll(record.Quote, "\n", " "))
	return err
}

// humanDate leaves dates it cannot parse as they are.
func humanDate(date string, now time.Time) string {
	t, err := time.Parse(quotes.DateLayout, date)
	if err != nil {
		return date
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func writeRecordsYaml(w io.Writer, records []quotes.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(records)
	if err != nil {
		return err
	}
	return enc.Close()
}
