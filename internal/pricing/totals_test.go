package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGST(t *testing.T) {
	b := ComputeGST(1000)
	assert.Equal(t, 1000.0, b.Subtotal)
	assert.Equal(t, 180.0, b.Tax)
	assert.Equal(t, 1180.0, b.Total)

	// Negative subtotals clamp to zero.
	b = ComputeGST(-500)
	assert.Equal(t, 0.0, b.Subtotal)
	assert.Equal(t, 0.0, b.Tax)
	assert.Equal(t, 0.0, b.Total)
}

func TestHotelTotal(t *testing.T) {
	b := HotelTotal(2500, 2, 2)
	assert.Equal(t, 10000.0, b.Subtotal)
	assert.Equal(t, 1800.0, b.Tax)
	assert.Equal(t, 11800.0, b.Total)

	// Nights and rooms clamp to one.
	b = HotelTotal(2500, 0, -1)
	assert.Equal(t, 2500.0, b.Subtotal)
}

func TestCarTotal(t *testing.T) {
	b := CarTotal(1800, 3)
	assert.Equal(t, 5400.0, b.Subtotal)

	b = CarTotal(1800, 0)
	assert.Equal(t, 1800.0, b.Subtotal)
}

func TestCourierTotal(t *testing.T) {
	b := CourierTotal(150, 2.5)
	assert.Equal(t, 375.0, b.Subtotal)
	assert.Equal(t, 67.5, b.Tax)
	assert.Equal(t, 442.5, b.Total)

	// Weight clamps to a tenth of a kilogram.
	b = CourierTotal(150, 0)
	assert.InDelta(t, 15.0, b.Subtotal, 0.001)
}

func TestTechnicianTotal(t *testing.T) {
	b := TechnicianTotal(800, 2)
	assert.Equal(t, 1600.0, b.Subtotal)

	b = TechnicianTotal(800, 0.5)
	assert.Equal(t, 800.0, b.Subtotal)
}

func TestFlightTotal(t *testing.T) {
	b := FlightTotal(6000, 3)
	assert.Equal(t, 18000.0, b.Subtotal)
	assert.Equal(t, 3240.0, b.Tax)
	assert.Equal(t, 21240.0, b.Total)

	b = FlightTotal(6000, 0)
	assert.Equal(t, 6000.0, b.Subtotal)
}
