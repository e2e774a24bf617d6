package currency

import (
	"strings"

	"github.com/pkg/errors"
)

// Code is an upper-case currency code as used on the wire, e.g. "USD".
type Code string

const (
	BTC  Code = "BTC"
	USD  Code = "USD"
	EUR  Code = "EUR"
	GBP  Code = "GBP"
	USDT Code = "USDT"
)

// ErrUnsupportedCode is returned when parsing a code that is not one of the
// known currencies.
var ErrUnsupportedCode = errors.New("unsupported currency code")

var supportedCodes = map[Code]struct{}{
	BTC:  {},
	USD:  {},
	EUR:  {},
	GBP:  {},
	USDT: {},
}

// ParseCode normalizes value and validates it against the supported set.
func ParseCode(value string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := supportedCodes[code]; !ok {
		return "", errors.Wrapf(ErrUnsupportedCode, "%q", value)
	}
	return code, nil
}

func (c Code) String() string {
	return string(c)
}
