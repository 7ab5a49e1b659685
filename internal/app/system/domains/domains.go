// Package domains holds the university email-domain allow-list.
//
// Only students with an institutional email address may submit a card.
// The catalog maps each university's display name to the email domains
// it owns; the flat allow-list is derived from the catalog plus any
// extra domains supplied via Configure at startup.
package domains

import (
	"strings"
	"sync"
)

// Catalog maps university display names to their institutional email
// domains. Names must match the values submitted in card and profile
// forms exactly.
var Catalog = map[string][]string{
	"Ss. Cyril and Methodius University":        {"ukim.edu.mk"},
	"Goce Delcev University":                    {"ugd.edu.mk"},
	"St. Kliment Ohridski University - Bitola":  {"uklo.edu.mk"},
	"University of Tetova":                      {"unite.edu.mk"},
	"University of Information Science and Technology": {"uist.edu.mk"},
	"South East European University":            {"seeu.edu.mk"},
	"International Balkan University":           {"ibu.edu.mk"},
	"FON University":                            {"fon.edu.mk"},
	"University American College Skopje":        {"uacs.edu.mk"},
	"European University":                       {"eurm.edu.mk", "euba.edu.mk", "eust.edu.mk"},
	"MIT University":                            {"mit.edu.mk"},
	"University of Tourism and Management":      {"utms.edu.mk"},
	"ESRA University of Audiovisual Arts":       {"esra.com.mk"},
	"Faculty of Business Economy":               {"fbe.edu.mk"},
	"Eurocollege Kumanovo":                      {"eurocollege.edu.mk"},
}

var (
	mu    sync.RWMutex
	allow = catalogSet()
)

func catalogSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, ds := range Catalog {
		for _, d := range ds {
			set[strings.ToLower(d)] = struct{}{}
		}
	}
	return set
}

// Configure adds extra allowed domains on top of the built-in catalog.
// Called once at startup from config; safe to call with an empty slice.
func Configure(extra []string) {
	mu.Lock()
	defer mu.Unlock()
	allow = catalogSet()
	for _, d := range extra {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			allow[d] = struct{}{}
		}
	}
}

// IsAllowedEmail reports whether the email's domain is on the allow-list.
// The domain is everything after the last '@', case-folded. Emails
// without an '@' are never allowed.
func IsAllowedEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if domain == "" {
		return false
	}
	mu.RLock()
	defer mu.RUnlock()
	_, ok := allow[domain]
	return ok
}

// UniversityDomains returns the email domains owned by the named
// university, or nil when the university is not in the catalog.
func UniversityDomains(name string) []string {
	return Catalog[strings.TrimSpace(name)]
}

// EmailMatchesUniversity reports whether the email's domain belongs to
// the named university.
func EmailMatchesUniversity(email, university string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	for _, d := range UniversityDomains(university) {
		if domain == strings.ToLower(d) {
			return true
		}
	}
	return false
}
