package adapter

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClock_Now(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	tests := []struct {
		name  string
		clock SystemClock
		want  *time.Location
	}{
		{"zero value reads utc", SystemClock{}, time.UTC},
		{"configured zone", SystemClock{Location: jakarta}, jakarta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			now := tt.clock.Now()

			assert.Equal(t, tt.want, now.Location())
			assert.WithinDuration(t, before, now, time.Second)
		})
	}
}
