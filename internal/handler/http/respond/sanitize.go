package respond

import (
	"regexp"
)

var (
	// userinfo in URLs: postgres DSNs and feed URLs fetched with basic auth
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// bearer tokens quoted back by upstream servers
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-_.]+`)
)

// SanitizeError masks credentials in an error message so it can be logged.
// Feed fetch and database errors tend to embed the full URL, password
// included.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")

	return msg
}
