package validators

import (
	"net"
	"os"
	"strings"
)

// IsEmailDomainValid checks that the domain part of an address actually
// resolves. Set SKIP_EMAIL_DNS_CHECK=true to keep only the syntactic check
// (offline environments, CI).
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if os.Getenv("SKIP_EMAIL_DNS_CHECK") == "true" {
		return strings.Contains(domain, ".")
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
