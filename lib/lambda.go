package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	lambdaAttrName        = "name"
	lambdaAttrConcurrency = "concurrency"
	lambdaAttrMemory      = "memory"
	lambdaAttrTimeout     = "timeout"
	lambdaAttrLogsTTLDays = "logs-ttl-days"

	lambdaTriggerApi        = "api"
	lambdaTriggerCloudwatch = "cloudwatch"
	lambdaTriggerDynamoDB   = "dynamodb"

	lambdaMetaDynamoDB = "dynamodb"
	lambdaMetaPolicy   = "policy"
	lambdaMetaAllow    = "allow"
	lambdaMetaTrigger  = "trigger"
	lambdaMetaAttr     = "attr"
)

var lambdaMetaTokens = []string{lambdaMetaDynamoDB, lambdaMetaPolicy, lambdaMetaAllow, lambdaMetaTrigger, lambdaMetaAttr}

var lambdaSpaces = regexp.MustCompile(` +`)

var lambdaVariable = regexp.MustCompile(`(\$\{[^\}]+})`)

// LambdaMetadata is the deployment header of a lambda's main.go. Env holds
// the NAME=value pairs of every ${NAME} the header referenced.
type LambdaMetadata struct {
	DynamoDB []string `json:"dynamodb,omitempty"`
	Policy   []string `json:"policy,omitempty"`
	Allow    []string `json:"allow,omitempty"`
	Trigger  []string `json:"trigger,omitempty"`
	Attr     []string `json:"attr,omitempty"`
	Env      []string `json:"env,omitempty"`
}

func (m *LambdaMetadata) field(token string) *[]string {
	switch token {
	case lambdaMetaDynamoDB:
		return &m.DynamoDB
	case lambdaMetaPolicy:
		return &m.Policy
	case lambdaMetaAllow:
		return &m.Allow
	case lambdaMetaTrigger:
		return &m.Trigger
	default:
		return &m.Attr
	}
}

// lambdaFilterMetadata returns the comment lines above the package clause.
func lambdaFilterMetadata(lines []string) []string {
	var res []string
	for _, line := range lines {
		line = strings.Trim(line, "\r\n")
		if strings.HasPrefix(line, "//") {
			line = strings.Trim(line, "/ ")
			line = strings.Split(line, " #")[0]
			line = strings.Split(line, " //")[0]
			line = strings.Trim(line, " ")
			line = lambdaSpaces.ReplaceAllString(line, " ")
			res = append(res, line)
			continue
		}
		if strings.HasPrefix(line, "package ") {
			break
		}
	}
	return res
}

// lambdaExpand substitutes ${NAME} from the environment. Unset variables
// are an error since the header would deploy against the wrong resource.
func lambdaExpand(line, part string) (string, []string, error) {
	var env []string
	for _, variable := range lambdaVariable.FindAllString(part, -1) {
		name := variable[2 : len(variable)-1]
		value := os.Getenv(name)
		if value == "" {
			err := fmt.Errorf("missing environment variable: %s", line)
			Logger.Println("error:", err)
			return "", nil, err
		}
		env = append(env, fmt.Sprintf("%s=%s", name, value))
		part = strings.Replace(part, variable, value, 1)
	}
	return part, env, nil
}

func LambdaGetMetadata(lines []string) (*LambdaMetadata, error) {
	meta := &LambdaMetadata{}
	for _, line := range lambdaFilterMetadata(lines) {
		if line == "" {
			continue
		}
		token, part, err := SplitOnce(line, ":")
		if err != nil || !Contains(lambdaMetaTokens, token) {
			err := fmt.Errorf("unknown configuration comment: %s", line)
			Logger.Println("error:", err)
			return nil, err
		}
		part, env, err := lambdaExpand(line, strings.Trim(part, " "))
		if err != nil {
			Logger.Println("error:", err)
			return nil, err
		}
		field := meta.field(token)
		*field = append(*field, part)
		for _, kv := range env {
			if !Contains(meta.Env, kv) {
				meta.Env = append(meta.Env, kv)
			}
		}
	}
	for _, conf := range meta.Attr {
		k, v, err := SplitOnce(conf, " ")
		if err != nil {
			err := fmt.Errorf("attr needs a value: %s", conf)
			Logger.Println("error:", err)
			return nil, err
		}
		if !Contains([]string{lambdaAttrName, lambdaAttrConcurrency, lambdaAttrMemory, lambdaAttrTimeout, lambdaAttrLogsTTLDays}, k) {
			err := fmt.Errorf("unknown attr: %s", k)
			Logger.Println("error:", err)
			return nil, err
		}
		if _, err := strconv.Atoi(v); err != nil && k != lambdaAttrName {
			err := fmt.Errorf("conf value should be digits: %s %s", k, v)
			Logger.Println("error:", err)
			return nil, err
		}
	}
	for _, trigger := range meta.Trigger {
		if !Contains([]string{lambdaTriggerApi, lambdaTriggerCloudwatch, lambdaTriggerDynamoDB}, strings.Split(trigger, " ")[0]) {
			err := fmt.Errorf("unknown trigger: %s", trigger)
			Logger.Println("error:", err)
			return nil, err
		}
	}
	return meta, nil
}

func LambdaParseFile(path string) (*LambdaMetadata, error) {
	if !strings.HasSuffix(path, ".go") {
		err := fmt.Errorf("only .go files supported: %s", path)
		Logger.Println("error:", err)
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	meta, err := LambdaGetMetadata(strings.Split(string(data), "\n"))
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	return meta, nil
}

// LambdaName is the name attr when present, otherwise the directory
// holding main.go.
func LambdaName(path string, meta *LambdaMetadata) string {
	for _, attr := range meta.Attr {
		k, v, err := SplitOnce(attr, " ")
		if err == nil && k == lambdaAttrName {
			return v
		}
	}
	name := filepath.Base(filepath.Dir(path))
	name = strings.ReplaceAll(name, " ", "-")
	return strings.ReplaceAll(name, "_", "-")
}

// LambdaTables turns each "dynamodb: NAME KEY... ATTR=VALUE..." line into
// table input.
func LambdaTables(meta *LambdaMetadata) ([]*dynamodb.CreateTableInput, error) {
	var inputs []*dynamodb.CreateTableInput
	for _, line := range meta.DynamoDB {
		parts := strings.Split(line, " ")
		var keys []string
		var attrs []string
		for _, part := range parts[1:] {
			if strings.Contains(part, "=") {
				attrs = append(attrs, part)
			} else {
				keys = append(keys, part)
			}
		}
		input, err := DynamoDBEnsureInput(parts[0], keys, attrs)
		if err != nil {
			Logger.Println("error:", err)
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
