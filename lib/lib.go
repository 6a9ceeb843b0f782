package lib

import (
	"fmt"
	"strings"
)

var Commands = make(map[string]func())

var Args = make(map[string]interface{})

func Contains(parts []string, part string) bool {
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}

func SplitOnce(s string, sep string) (head, tail string, err error) {
	parts := strings.SplitN(s, sep, 2)
	if len(parts) == 2 {
		return parts[0], parts[1], nil
	}
	return "", "", fmt.Errorf("cannot split once: %s", s)
}

func SplitTwice(s string, sep string) (string, string, string, error) {
	parts := strings.SplitN(s, sep, 3)
	if len(parts) == 3 {
		return parts[0], parts[1], parts[2], nil
	}
	return "", "", "", fmt.Errorf("cannot split twice: %s", s)
}

func PreviewString(preview bool) string {
	if !preview {
		return ""
	}
	return "preview: "
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}
