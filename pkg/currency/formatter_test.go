package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	testCases := []struct {
		amount   int
		expected string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{4550, "₹4,550"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{-4550, "-₹4,550"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatINR(tc.amount))
	}
}
