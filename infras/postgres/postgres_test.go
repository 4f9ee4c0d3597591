package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/config"
)

func TestTarget_DSN(t *testing.T) {
	tests := []struct {
		name   string
		target target
		want   string
	}{
		{
			name:   "escapes credentials",
			target: target{host: "db", port: "5432", user: "desk", password: "p@ss:word", name: "frontdesk", sslMode: "disable"},
			want:   "postgres://desk:p%40ss%3Aword@db:5432/frontdesk?sslmode=disable",
		},
		{
			name:   "no ssl mode",
			target: target{host: "10.0.0.5", port: "6432", user: "ro", password: "x", name: "test_frontdesk"},
			want:   "postgres://ro:x@10.0.0.5:6432/test_frontdesk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.dsn())
		})
	}
}

func TestNewTarget_AppliesPrefix(t *testing.T) {
	node := config.PostgresNode{Host: "db", Port: "5432", Username: "desk", Password: "x", Name: "frontdesk"}

	got := newTarget("write", "test_", node)

	assert.Equal(t, "write", got.role)
	assert.Equal(t, "postgres://desk:x@db:5432/test_frontdesk", got.dsn())
}
