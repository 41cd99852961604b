package zarinpal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	testCases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "+989123456789", want: "09123456789", wantOK: true},
		{in: "09123456789", want: "09123456789", wantOK: true},
		{in: "9123456789", want: "09123456789", wantOK: true},
		{in: "0912 345 6789", want: "09123456789", wantOK: true},
		{in: "12345"},
		{in: ""},
		{in: "+1 555 123 4567"},
		{in: "981234567890"},
		{in: "+98 21 1234 5678"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := NormalizeMobile(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
