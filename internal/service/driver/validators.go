package driver

import (
	"regexp"
	"strings"
)

var phoneRegexp = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phone)
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
