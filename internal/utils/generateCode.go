package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateResetCode returns a 6-digit code for password reset emails.
func GenerateResetCode() string {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)
	return fmt.Sprintf("%06d", r.Intn(1000000))
}

// GenerateBookingRef returns a short reference like CNG-3F2A9C1D shown to
// users and printed on tickets.
func GenerateBookingRef() string {
	id := uuid.New()
	return "CNG-" + strings.ToUpper(id.String()[:8])
}
