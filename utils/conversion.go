package utils

import (
	"errors"

	"github.com/oraclekit/ergoscan/logging"
	"github.com/shopspring/decimal"
)

var NanoErgConstant = decimal.NewFromInt(1_000_000_000)

// ConvertFloatErgToNanoErg converts a float64 value in ERG to a uint64 value
// in nanoErgs, panics if the value is negative
func ConvertFloatErgToNanoErg(value float64) uint64 {
	valueErg := decimal.NewFromFloat(value)
	resultInDecimal := valueErg.Mul(NanoErgConstant)
	resultInInt := resultInDecimal.IntPart()
	if resultInInt < 0 {
		err := errors.New("value was converted to negative value")
		logging.L.Panic().
			Err(err).Float64("value", value).
			Uint64("result", uint64(resultInInt)).
			Msg("value was converted to negative value")
	}

	return uint64(resultInInt)
}

// FormatNanoErg renders a nanoErg amount as a decimal ERG string,
// e.g. 1_500_000_000 -> "1.5"
func FormatNanoErg(nanoErgs uint64) string {
	return decimal.NewFromUint64(nanoErgs).Div(NanoErgConstant).String()
}
