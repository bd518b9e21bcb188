package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 74, RoundPercent(74.228))
	assert.Equal(t, 75, RoundPercent(74.5))
	assert.Equal(t, 0, RoundPercent(0.4))
	assert.Equal(t, -3, RoundPercent(-2.6))
}

func TestRandomDigits(t *testing.T) {
	s := RandomDigits(9)
	assert.Len(t, s, 9)
	for _, r := range s {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestOrderNo(t *testing.T) {
	no := OrderNo("20250301")
	assert.Len(t, no, len("20250301")+1+6)
	assert.Contains(t, no, "20250301-")
}
