package search

import (
	"net/url"
	"strings"
)

// trustedSources are medical domains whose results are ranked first.
var trustedSources = []string{
	"who.int",
	"diabetes.org",
	"mayoclinic.org",
	"webmd.com",
	"healthline.com",
	"medicalnewstoday.com",
	"ncbi.nlm.nih.gov",
	"cdc.gov",
	"niddk.nih.gov",
	"alodokter.com",
	"halodoc.com",
	"kemenkes.go.id",
}

// ExtractDomain returns the bare host of a URL without the www prefix.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

// IsTrustedSource reports whether the URL belongs to a known medical
// domain (subdomains included).
func IsTrustedSource(rawURL string) bool {
	domain := ExtractDomain(rawURL)
	for _, trusted := range trustedSources {
		if strings.Contains(domain, trusted) {
			return true
		}
	}
	return false
}
