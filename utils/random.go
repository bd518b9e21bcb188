package utils

import (
	"fmt"
	"math/rand"
)

// RandomDigits returns a random numeric string of the given length. Used for
// synthetic report ids.
func RandomDigits(length int) string {
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// OrderNo builds a readable order number from a timestamp prefix and a
// random suffix.
func OrderNo(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, RandomDigits(6))
}
