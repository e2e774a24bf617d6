package netutil

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/idna"
)

const (
	maxDomainNameSize  = 253
	maxDomainLabelSize = 63
)

// ValidateDomainName checks that value is a registrable domain name. A single
// trailing dot is accepted. Internationalized names are checked in their
// punycode form.
func ValidateDomainName(value string) error {
	_, err := NormalizeDomainName(value)
	return err
}

// NormalizeDomainName returns the lower-case ASCII form of value.
func NormalizeDomainName(value string) (string, error) {
	value = strings.ToLower(strings.TrimSuffix(value, "."))
	if len(value) == 0 {
		return "", errors.New("domain name is empty")
	}

	ascii, err := idna.Registration.ToASCII(value)
	if err != nil {
		return "", errors.Wrap(err, "domain name is invalid")
	}

	if len(ascii) > maxDomainNameSize {
		return "", errors.New("domain name length exceeds limit")
	}
	for _, label := range strings.Split(ascii, ".") {
		if len(label) > maxDomainLabelSize {
			return "", errors.Errorf("domain label %q exceeds limit", label)
		}
	}
	return ascii, nil
}
