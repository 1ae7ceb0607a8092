package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOTP returns a 6-digit reset code, uniform over [100000, 999999].
func GenerateOTP() string {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)
	return fmt.Sprintf("%06d", 100000+r.Intn(900000))
}
