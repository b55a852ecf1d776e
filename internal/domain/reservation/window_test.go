//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"resbook/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func at(h int) time.Time {
	return base.Add(time.Duration(h) * time.Hour)
}

func mustWindow(t *testing.T, start, end time.Time) reservation.Window {
	t.Helper()
	w, err := reservation.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		w, err := reservation.NewWindow(at(0), at(1))
		require.NoError(t, err)
		end, ok := w.End()
		require.True(t, ok)
		assert.Equal(t, at(1), end)
		assert.False(t, w.IsOpen())
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		_, err := reservation.NewWindow(at(1), at(1))
		require.ErrorIs(t, err, reservation.ErrInvalidWindow)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := reservation.NewWindow(at(2), at(1))
		require.ErrorIs(t, err, reservation.ErrInvalidWindow)
	})

	t.Run("open window has no end", func(t *testing.T) {
		w := reservation.NewOpenWindow(at(0))
		assert.True(t, w.IsOpen())
		_, ok := w.End()
		assert.False(t, ok)
	})
}

func TestWindowOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b reservation.Window
		want bool
	}{
		{
			name: "identical windows overlap",
			a:    mustWindow(t, at(0), at(2)),
			b:    mustWindow(t, at(0), at(2)),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustWindow(t, at(0), at(2)),
			b:    mustWindow(t, at(1), at(3)),
			want: true,
		},
		{
			name: "containment",
			a:    mustWindow(t, at(0), at(4)),
			b:    mustWindow(t, at(1), at(2)),
			want: true,
		},
		{
			name: "touching endpoints do not conflict",
			a:    mustWindow(t, at(0), at(2)),
			b:    mustWindow(t, at(2), at(4)),
			want: false,
		},
		{
			name: "touching endpoints reversed",
			a:    mustWindow(t, at(2), at(4)),
			b:    mustWindow(t, at(0), at(2)),
			want: false,
		},
		{
			name: "disjoint",
			a:    mustWindow(t, at(0), at(1)),
			b:    mustWindow(t, at(3), at(4)),
			want: false,
		},
		{
			name: "open window overlaps any later window",
			a:    reservation.NewOpenWindow(at(0)),
			b:    mustWindow(t, at(5), at(6)),
			want: true,
		},
		{
			name: "open window does not reach backwards",
			a:    reservation.NewOpenWindow(at(5)),
			b:    mustWindow(t, at(0), at(5)),
			want: false,
		},
		{
			name: "two open windows overlap",
			a:    reservation.NewOpenWindow(at(0)),
			b:    reservation.NewOpenWindow(at(10)),
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Overlaps(c.b))
			assert.Equal(t, c.want, c.b.Overlaps(c.a), "overlap must be symmetric")
		})
	}
}

func TestWindowContainsDay(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	assert.True(t, mustWindow(t, at(0), at(1)).ContainsDay(day))
	assert.False(t, mustWindow(t, at(0), at(1)).ContainsDay(day.AddDate(0, 0, 1)))

	overnight := mustWindow(t, at(13), at(15)) // 23:00 to 01:00 next day
	assert.True(t, overnight.ContainsDay(day))
	assert.True(t, overnight.ContainsDay(day.AddDate(0, 0, 1)))
}
