package utils

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const bookingIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// overridable in tests
var nowFunc = time.Now

// GenerateBookingID returns a human-readable booking reference like
// BK-MB3K9F2A-7QPZ: uppercase base-36 unix milliseconds plus a four
// character random suffix. Uniqueness is probabilistic only; a collision
// surfaces as a unique violation on insert and is not retried.
func GenerateBookingID() string {

	timestamp := strings.ToUpper(strconv.FormatInt(nowFunc().UnixMilli(), 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = bookingIDAlphabet[rand.IntN(len(bookingIDAlphabet))]
	}

	return fmt.Sprintf("BK-%s-%s", timestamp, suffix)
}

// GenerateMockBookingID returns the synthetic reference used when no
// database is configured and the booking is not persisted.
func GenerateMockBookingID() string {
	return fmt.Sprintf("BK-MOCK-%d", nowFunc().UnixMilli())
}

// GenerateReference builds intake references such as HV1712345678901,
// CONS1712345678901 and CB1712345678901.
func GenerateReference(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, nowFunc().UnixMilli())
}
