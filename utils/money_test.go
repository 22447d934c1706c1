package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLKR(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "LKR 0"},
		{950, "LKR 950"},
		{1000, "LKR 1,000"},
		{14990, "LKR 14,990"},
		{114990, "LKR 114,990"},
		{1149900, "LKR 1,149,900"},
		{-14990, "LKR -14,990"},
		{-950, "LKR -950"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatLKR(tc.amount))
	}
}
