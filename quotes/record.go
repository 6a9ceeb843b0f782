package quotes

import "time"

const (
	DefaultAuthor = "kode-soul devops|cloud-arch Bedrock AI"

	// DateLayout is ISO 8601 in UTC with microseconds and no zone suffix.
	DateLayout = "2006-01-02T15:04:05.000000"

	fallbackAuthor = "Anon"
	fallbackDate   = "🤷‍♀️"
)

type Record struct {
	ID     string `json:"id"               dynamodbav:"id"`
	Quote  string `json:"quote"            dynamodbav:"quote"`
	Author string `json:"author,omitempty" dynamodbav:"author,omitempty"`
	Date   string `json:"date,omitempty"   dynamodbav:"date,omitempty"`
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
