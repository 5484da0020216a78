package checkmx

import (
	"github.com/hbollon/go-edlib"
	"golang.org/x/net/idna"
)

// suggestMinSimilarity is the least similarity a known domain needs to be suggested
const suggestMinSimilarity = 0.8

// freeDomainList holds the most common free mail providers
var freeDomainList = []string{
	"aol.com",
	"gmail.com",
	"gmx.com",
	"gmx.de",
	"googlemail.com",
	"hotmail.com",
	"icloud.com",
	"live.com",
	"mail.com",
	"mail.ru",
	"me.com",
	"msn.com",
	"outlook.com",
	"proton.me",
	"protonmail.com",
	"yahoo.com",
	"yandex.ru",
	"zoho.com",
}

var freeDomains = func() map[string]bool {
	m := make(map[string]bool, len(freeDomainList))
	for _, d := range freeDomainList {
		m[d] = true
	}
	return m
}()

// DomainToASCII converts any internationalized domain names to ASCII
// reference: https://en.wikipedia.org/wiki/Punycode
func DomainToASCII(domain string) string {
	asciiDomain, err := idna.ToASCII(domain)
	if err != nil {
		return domain
	}
	return asciiDomain
}

// IsFreeDomain checks if domain is a free domain
func IsFreeDomain(domain string) bool {
	return freeDomains[domain]
}

// SuggestDomain returns the free mail domain the passed domain is most likely
// a typo of, or an empty string when there is none
func (v *Verifier) SuggestDomain(domain string) string {
	if IsFreeDomain(domain) {
		return ""
	}

	s, err := edlib.FuzzySearchThreshold(domain, freeDomainList, suggestMinSimilarity, edlib.OSADamerauLevenshtein)
	if err != nil {
		return ""
	}
	return s
}
