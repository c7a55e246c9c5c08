package services_test

import (
	"testing"
	"time"

	"lastmile/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2025, time.March, 12, hour, minute, 0, 0, time.UTC)
}

func TestComputeExpressWindow(t *testing.T) {
	t.Run("should promise two hours from adjusted now during business hours", func(t *testing.T) {
		// 12:00 + 1h lead = 13:00, well within 10-18
		window, err := services.ComputeExpressWindow(dayAt(t, 12, 0))

		require.NoError(t, err)
		assert.Equal(t, dayAt(t, 13, 0), window.Window.Start())
		assert.Equal(t, dayAt(t, 15, 0), window.Window.End())
		assert.False(t, window.AtOpening)
		assert.Equal(t, "Delivery between 13:00-15:00", window.Description)
	})

	t.Run("should clip the window at closing time", func(t *testing.T) {
		// 16:30 + 1h lead = 17:30, so only 30 minutes remain until closing
		window, err := services.ComputeExpressWindow(dayAt(t, 16, 30))

		require.NoError(t, err)
		assert.Equal(t, dayAt(t, 17, 30), window.Window.Start())
		assert.Equal(t, dayAt(t, 18, 0), window.Window.End())
		assert.False(t, window.AtOpening)
	})

	t.Run("should defer to todays opening before business hours", func(t *testing.T) {
		// 07:00 + 1h lead = 08:00, before opening
		window, err := services.ComputeExpressWindow(dayAt(t, 7, 0))

		require.NoError(t, err)
		assert.Equal(t, dayAt(t, 10, 0), window.Window.Start())
		assert.Equal(t, dayAt(t, 12, 0), window.Window.End())
		assert.True(t, window.AtOpening)
		assert.Equal(t, "Delivery at opening (10:00-12:00)", window.Description)
	})

	t.Run("should roll to next day at or after closing", func(t *testing.T) {
		// 20:00 + 1h lead = 21:00, after closing
		window, err := services.ComputeExpressWindow(dayAt(t, 20, 0))

		require.NoError(t, err)
		assert.Equal(t, dayAt(t, 10, 0).AddDate(0, 0, 1), window.Window.Start())
		assert.Equal(t, dayAt(t, 12, 0).AddDate(0, 0, 1), window.Window.End())
		assert.True(t, window.AtOpening)
	})

	t.Run("should treat adjusted instant exactly at closing as after hours", func(t *testing.T) {
		// 17:00 + 1h lead = 18:00, exactly closing
		window, err := services.ComputeExpressWindow(dayAt(t, 17, 0))

		require.NoError(t, err)
		assert.Equal(t, dayAt(t, 10, 0).AddDate(0, 0, 1), window.Window.Start())
		assert.True(t, window.AtOpening)
	})

	t.Run("should treat adjusted instant exactly at opening as business hours", func(t *testing.T) {
		// 09:00 + 1h lead = 10:00, exactly opening
		window, err := services.ComputeExpressWindow(dayAt(t, 9, 0))

		require.NoError(t, err)
		assert.Equal(t, dayAt(t, 10, 0), window.Window.Start())
		assert.Equal(t, dayAt(t, 12, 0), window.Window.End())
		assert.False(t, window.AtOpening)
	})

	t.Run("should never produce an inverted window", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			for _, minute := range []int{0, 15, 30, 59} {
				window, err := services.ComputeExpressWindow(dayAt(t, hour, minute))

				require.NoError(t, err)
				assert.False(t, window.Window.End().Before(window.Window.Start()),
					"window inverted for %02d:%02d", hour, minute)
			}
		}
	})
}
