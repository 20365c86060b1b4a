package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{name: "unset uses fallback", value: "", fallback: true, want: true},
		{name: "true", value: "true", fallback: false, want: true},
		{name: "padded zero", value: " 0 ", fallback: true, want: false},
		{name: "garbage uses fallback", value: "sometimes", fallback: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WAITLIST_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("WAITLIST_TEST_BOOL", tt.fallback))
		})
	}
}

func TestOTelServiceName(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	assert.Equal(t, "waitlist-relay", OTelServiceName())

	t.Setenv("OTEL_SERVICE_NAME", "  signup-edge ")
	assert.Equal(t, "signup-edge", OTelServiceName())
}
