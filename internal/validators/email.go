package validators

import "strings"

// IsEmailShapeValid checks the minimal local@domain.tld shape. Registration
// must not depend on DNS, so the check stays purely syntactic.
func IsEmailShapeValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return strings.Contains(domain, ".")
}
