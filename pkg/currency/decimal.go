package currency

// GetDecimals returns the number of fractional digits amounts in the currency
// are expressed with.
func GetDecimals(code Code) int {
	switch code {
	case BTC:
		return 8
	case USDT:
		return 6
	}
	return 2
}
