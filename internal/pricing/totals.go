// Package pricing computes server-side booking totals. All amounts are in
// rupees; GST is applied on the subtotal.
package pricing

import "math"

const GSTRate = 0.18

type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ComputeGST(subtotal float64) Breakdown {
	if subtotal < 0 {
		subtotal = 0
	}
	tax := round2(subtotal * GSTRate)
	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

func HotelTotal(pricePerNight float64, nights, rooms int) Breakdown {
	if nights < 1 {
		nights = 1
	}
	if rooms < 1 {
		rooms = 1
	}
	return ComputeGST(pricePerNight * float64(nights) * float64(rooms))
}

func CarTotal(basePricePerDay float64, days int) Breakdown {
	if days < 1 {
		days = 1
	}
	return ComputeGST(basePricePerDay * float64(days))
}

func CourierTotal(pricePerKg, weightKg float64) Breakdown {
	if weightKg < 0.1 {
		weightKg = 0.1
	}
	return ComputeGST(pricePerKg * weightKg)
}

func TechnicianTotal(baseFee, hours float64) Breakdown {
	if hours < 1 {
		hours = 1
	}
	return ComputeGST(baseFee * hours)
}

func FlightTotal(baseFare float64, passengers int) Breakdown {
	if passengers < 1 {
		passengers = 1
	}
	return ComputeGST(baseFare * float64(passengers))
}
