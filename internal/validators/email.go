package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid vérifie que le domaine de l'adresse résout (MX ou A).
// Les comptes de profil sont créés par un admin ; un refus DNS évite les
// fautes de frappe dans les adresses @anaros.com.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
