package respond

import (
	"regexp"
	"strings"
	"sync"
)

const mask = "****"

// minSecretLen keeps very short values from masking ordinary words.
const minSecretLen = 4

var (
	// key=value and key: value pairs whose key names a credential
	credentialPattern = regexp.MustCompile(`(?i)\b(secret|token|password|passwd|api[_-]?key)(\s*[=:]\s*)("[^"]*"|\S+)`)

	secretsMu sync.RWMutex
	secrets   []string
)

// RegisterSecret adds a value that SanitizeError must never print, such as
// the secret file path or its contents. Surrounding whitespace is ignored and
// values shorter than four bytes are skipped.
func RegisterSecret(value string) {
	value = strings.TrimSpace(value)
	if len(value) < minSecretLen {
		return
	}

	secretsMu.Lock()
	defer secretsMu.Unlock()
	for _, s := range secrets {
		if s == value {
			return
		}
	}
	secrets = append(secrets, value)
}

// SanitizeError returns err's message with registered secrets and
// credential-looking pairs masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return Sanitize(err.Error())
}

// Sanitize masks registered secrets and credential-looking pairs in msg.
func Sanitize(msg string) string {
	secretsMu.RLock()
	for _, s := range secrets {
		msg = strings.ReplaceAll(msg, s, mask)
	}
	secretsMu.RUnlock()

	return credentialPattern.ReplaceAllString(msg, "${1}${2}"+mask)
}
