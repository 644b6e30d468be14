package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolOptionsDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PoolOptions
		want PoolOptions
	}{
		{"zero", PoolOptions{}, PoolOptions{MaxOpenConns: 4, MaxIdleConns: 4, ConnMaxLifetime: 30 * time.Minute}},
		{"idle capped by open", PoolOptions{MaxOpenConns: 2, MaxIdleConns: 8}, PoolOptions{MaxOpenConns: 2, MaxIdleConns: 2, ConnMaxLifetime: 30 * time.Minute}},
		{"kept", PoolOptions{MaxOpenConns: 10, MaxIdleConns: 3, ConnMaxLifetime: time.Hour}, PoolOptions{MaxOpenConns: 10, MaxIdleConns: 3, ConnMaxLifetime: time.Hour}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}
