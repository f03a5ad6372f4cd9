package impl

import (
	"math"
	"strconv"
	"strings"

	"smartlunch/internal/domain/service"
)

// fundingAmounts extracts daily and monthly minor units. A missing or
// malformed field yields nil without affecting the other one.
func fundingAmounts(payload *service.FundingPayload) (daily, monthly *int64) {
	if payload == nil || payload.FundingSetting == nil || payload.FundingSetting.AvailableFundings == nil {
		return nil, nil
	}
	avail := payload.FundingSetting.AvailableFundings

	return minorUnits(avail.DailyCents), minorUnits(avail.MonthlyCents)
}

// minorUnits accepts integral JSON numbers and integer strings.
func minorUnits(v any) *int64 {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n >= math.MaxInt64 || n < math.MinInt64 {
			return nil
		}
		i := int64(n)

		return &i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil
		}

		return &i
	default:
		return nil
	}
}
