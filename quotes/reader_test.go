package quotes_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/kodesoul/motivation/quotes"
	"github.com/kodesoul/motivation/quotes/quotestest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderEmptyTable(t *testing.T) {
	reader := quotes.NewReader(quotes.NewStore(&quotestest.Table{}, "t"))

	_, err := reader.Random(context.Background())
	assert.ErrorIs(t, err, quotes.ErrNotFound)

	resp, err := reader.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.NotContains(t, body, "quote")
	assert.Equal(t, "No quotes available.", body["message"])
	assert.Equal(t, quotes.CORSHeaders(), resp.Headers)
}

func TestReaderSingleRecord(t *testing.T) {
	table := &quotestest.Table{}
	table.Add(quotes.Record{ID: "only", Quote: "Ship it.", Author: "me", Date: "2024-05-01T09:30:15.000000"})
	reader := quotes.NewReader(quotes.NewStore(table, "t"))
	for range 20 {
		resp, err := reader.Handle(context.Background(), events.APIGatewayProxyRequest{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"quote":"Ship it.","author":"me","date":"2024-05-01T09:30:15.000000"}`, resp.Body)
	}
}

func TestReaderDefaultsAndHeaders(t *testing.T) {
	table := &quotestest.Table{}
	table.Add(quotes.Record{ID: "x", Quote: "Dev & Ops <3 ¡sí!"})
	reader := quotes.NewReader(quotes.NewStore(table, "t"))
	resp, err := reader.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, `{"author":"Anon","date":"🤷‍♀️","quote":"Dev & Ops <3 ¡sí!"}`, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "Authorization,Content-Type", resp.Headers["Access-Control-Allow-Headers"])
	assert.Equal(t, "GET,OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
}

func TestReaderServiceError(t *testing.T) {
	reader := quotes.NewReader(quotes.NewStore(&quotestest.Table{ScanErr: errors.New("down")}, "t"))
	_, err := reader.Handle(context.Background(), events.APIGatewayProxyRequest{})
	assert.ErrorIs(t, err, quotes.ErrService)
	assert.NotErrorIs(t, err, quotes.ErrNotFound)
}

func TestReaderReservoirPick(t *testing.T) {
	table := &quotestest.Table{PageSize: 2}
	for _, id := range []string{"a", "b", "c", "d"} {
		table.Add(quotes.Record{ID: id, Quote: id})
	}
	// replace only on the third record
	intN := func(n int) int {
		if n == 1 || n == 3 {
			return 0
		}
		return n - 1
	}
	reader := quotes.NewReader(quotes.NewStore(table, "t"), quotes.WithRand(intN))
	record, err := reader.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c", record.ID)
}

func TestReaderUniform(t *testing.T) {
	const n = 5
	const draws = 50000
	table := &quotestest.Table{PageSize: 2}
	for i := range n {
		table.Add(quotes.Record{ID: fmt.Sprint(i), Quote: fmt.Sprint(i)})
	}
	rng := rand.New(rand.NewPCG(1, 2))
	reader := quotes.NewReader(quotes.NewStore(table, "t"), quotes.WithRand(rng.IntN))

	counts := map[string]int{}
	for range draws {
		record, err := reader.Random(context.Background())
		require.NoError(t, err)
		counts[record.ID]++
	}
	require.Len(t, counts, n)
	expected := float64(draws) / n
	for id, count := range counts {
		assert.InDelta(t, expected, float64(count), expected*0.05, "record %s", id)
	}
}
