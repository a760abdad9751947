package server_test

import (
	"testing"

	"line-checker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default", 0, server.DefaultBodyLimitMB * 1024 * 1024},
		{"Negative", -5, server.DefaultBodyLimitMB * 1024 * 1024},
		{"Custom", 4, 4 * 1024 * 1024},
		{"Capped", 10000, server.MaxBodyLimitMB * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}
