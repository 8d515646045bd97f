package services

import (
	"math"
)

// Maximum contribution of each scoring factor. The four maxima sum to 90,
// so the final 100 cap is defensive rather than reachable with
// non-negative inputs.
const (
	energyMax    = 25.0
	transportMax = 25.0
	recyclingMax = 20.0
	waterMax     = 20.0
	totalMax     = 100.0
)

// Transportation modes recognised by the calculator.
const (
	TransportCar             = "car"
	TransportPublicTransport = "public_transport"
	TransportBicycle         = "bicycle"
)

// Car types recognised when the transportation mode is "car".
const (
	CarTypeElectric = "electric"
	CarTypeHybrid   = "hybrid"
)

// ScoreInput holds the raw lifestyle factors. Missing fields keep their
// zero value; there is no rejection path.
type ScoreInput struct {
	EnergyConsumption float64 `json:"energyConsumption"`
	Transportation    string  `json:"transportation"`
	CarType           string  `json:"carType"`
	RecyclingRate     float64 `json:"recyclingRate"`
	WaterUsage        float64 `json:"waterUsage"`
}

// ComputeEcoScore maps lifestyle factors to a single eco score. It is pure
// and deterministic: identical input always yields identical output. With
// non-negative inputs the result lies in [0, 100].
func ComputeEcoScore(input ScoreInput) float64 {
	score := energyScore(input.EnergyConsumption) +
		transportScore(input.Transportation, input.CarType) +
		recyclingScore(input.RecyclingRate) +
		waterScore(input.WaterUsage)

	score = math.Min(score, totalMax)
	return round2(score)
}

// energyScore decreases linearly with consumption and floors at zero.
func energyScore(consumption float64) float64 {
	return math.Max(0, energyMax-consumption/10)
}

// transportScore applies the categorical credit policy. Unrecognised or
// unset modes earn no credit.
func transportScore(mode, carType string) float64 {
	switch mode {
	case TransportCar:
		switch carType {
		case CarTypeElectric:
			return transportMax
		case CarTypeHybrid:
			return transportMax * 0.75
		default:
			return transportMax * 0.5
		}
	case TransportPublicTransport:
		return transportMax * 0.8
	case TransportBicycle:
		return transportMax
	default:
		return 0
	}
}

// recyclingScore is linear in the rate. Rates above 100 clamp down to 100;
// negative rates pass through unclamped and reduce the total, matching the
// established behaviour of this formula.
func recyclingScore(rate float64) float64 {
	return math.Min(rate, 100) / 100 * recyclingMax
}

// waterScore decreases linearly with usage and floors at zero.
func waterScore(usage float64) float64 {
	return math.Max(0, waterMax-usage/10)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
