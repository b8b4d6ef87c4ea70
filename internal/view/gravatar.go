package view

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL returns the avatar URL for an email address: md5 of the
// trimmed, lower-cased address, 100px, "retro" fallback, rating g.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=100&d=retro&r=g", hash)
}
