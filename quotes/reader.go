package quotes

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/kodesoul/motivation/lib"
)

const notFoundMessage = "No quotes available."

type Reader struct {
	store *Store
	intN  func(n int) int
}

type ReaderOption func(*Reader)

// WithRand replaces the source of randomness. intN must return a value in
// [0, n).
func WithRand(intN func(n int) int) ReaderOption {
	return func(r *Reader) {
		r.intN = intN
	}
}

func NewReader(store *Store, opts ...ReaderOption) *Reader {
	r := &Reader{
		store: store,
		intN:  rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Random picks one record uniformly from the whole table. It walks every
// page of the scan but holds a single record at a time: the i-th record
// replaces the current pick with probability 1/i.
func (r *Reader) Random(ctx context.Context) (Record, error) {
	var picked Record
	seen := 0
	err := r.store.Scan(ctx, func(record Record) error {
		seen++
		if r.intN(seen) == 0 {
			picked = record
		}
		return nil
	})
	if err != nil {
		return Record{}, err
	}
	if seen == 0 {
		return Record{}, ErrNotFound
	}
	lib.Logger.Debug("picked quote", "id", picked.ID, "scanned", seen)
	return picked, nil
}

// Handle is the lambda entrypoint. The request is ignored.
func (r *Reader) Handle(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	record, err := r.Random(ctx)
	if errors.Is(err, ErrNotFound) {
		return jsonResponse(http.StatusNotFound, map[string]string{"message": notFoundMessage}, CORSHeaders())
	}
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	author := record.Author
	if author == "" {
		author = fallbackAuthor
	}
	date := record.Date
	if date == "" {
		date = fallbackDate
	}
	return jsonResponse(http.StatusOK, map[string]string{
		"quote":  record.Quote,
		"author": author,
		"date":   date,
	}, CORSHeaders())
}
