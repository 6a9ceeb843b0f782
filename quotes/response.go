package quotes

import (
	"bytes"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/kodesoul/motivation/lib"
)

func CORSHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Authorization,Content-Type",
		"Access-Control-Allow-Methods": "GET,OPTIONS",
	}
}

// jsonResponse keeps non-ascii text and characters like & as they are
// instead of escaping them.
func jsonResponse(status int, body any, headers map[string]string) (events.APIGatewayProxyResponse, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(body)
	if err != nil {
		lib.Logger.Println("error:", err)
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}, nil
}
