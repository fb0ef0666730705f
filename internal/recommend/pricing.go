package recommend

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PriceInfo applies the time-of-day and weekday surcharge rules for a service
// and formats the resulting range for display. It is a pure function of now.
// The returned reason lists the triggered rules with the net percentage
// change, or is empty when no rule fired.
func PriceInfo(serviceType string, baseMin, baseMax int, now time.Time) (string, string) {
	hour := now.Hour()
	weekday := pythonWeekday(now)

	multiplier := 1.0
	var reasons []string

	switch serviceType {
	case ServiceCar, "Luxury Cabs":
		if hour == 8 || hour == 9 || hour == 10 || hour == 17 || hour == 18 || hour == 19 {
			multiplier += 0.4
			reasons = append(reasons, "Peak Traffic")
		} else if hour >= 22 || hour <= 5 {
			multiplier += 0.2
			reasons = append(reasons, "Night Fare")
		}
	case ServiceHotel:
		if weekday >= 4 { // Fri-Sun
			multiplier += 0.3
			reasons = append(reasons, "Weekend Demand")
		} else if hour >= 20 {
			multiplier -= 0.1
			reasons = append(reasons, "Late Night Deal")
		}
	case ServiceFlight:
		if weekday >= 4 {
			multiplier += 0.2
			reasons = append(reasons, "Weekend Travel")
		}
		if hour <= 6 {
			multiplier -= 0.1
			reasons = append(reasons, "Early Bird")
		}
	case ServiceTechnician:
		if weekday == 6 { // Sunday
			multiplier += 0.5
			reasons = append(reasons, "Sunday Service")
		} else if hour >= 18 {
			multiplier += 0.25
			reasons = append(reasons, "After Hours")
		}
	}

	finalMin := int(float64(baseMin) * multiplier)
	finalMax := int(float64(baseMax) * multiplier)

	priceStr := "₹" + formatINR(finalMin) + "-" + formatINR(finalMax)
	lower := strings.ToLower(serviceType)
	if strings.Contains(lower, "night") || serviceType == ServiceHotel {
		priceStr += "/night"
	} else if strings.Contains(lower, "car") || strings.Contains(lower, "cab") {
		priceStr += "/trip"
	}

	reasonStr := ""
	if len(reasons) > 0 && multiplier > 1.0 {
		reasonStr = fmt.Sprintf("%s (+%d%%)", strings.Join(reasons, ", "), int((multiplier-1)*100))
	} else if len(reasons) > 0 && multiplier < 1.0 {
		reasonStr = fmt.Sprintf("%s (%d%%)", strings.Join(reasons, ", "), int((multiplier-1)*100))
	}

	return priceStr, reasonStr
}

// pythonWeekday maps time.Weekday (Sunday=0) to the 0=Monday numbering the
// pricing rules are written against.
func pythonWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// formatINR renders an integer with thousands separators, e.g. 15000 -> "15,000".
func formatINR(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
