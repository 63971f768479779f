package buildmeta_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tbckr/artifact-info/internal/buildmeta"
	"github.com/tbckr/artifact-info/internal/testutil"
)

func TestHostName_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, buildmeta.HostName())
}

func TestUserName_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { _ = buildmeta.UserName() })
}

func TestBuildTimestamp(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"utc", time.Date(2017, time.February, 8, 14, 5, 9, 0, time.UTC), "2017-02-08 14:05:09 UTC"},
		{"converted to utc", time.Date(2017, time.February, 8, 1, 0, 0, 0, time.FixedZone("CET", 3600)), "2017-02-08 00:00:00 UTC"},
		{"crosses the day boundary", time.Date(2024, time.March, 1, 0, 30, 0, 0, time.FixedZone("CET", 3600)), "2024-02-29 23:30:00 UTC"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildmeta.BuildTimestamp(tc.now))
		})
	}
}

// The day field is the day of the month, not the day of the year: on
// December 31st a day-of-year layout would print 365.
func TestBuildTimestamp_DayOfMonth(t *testing.T) {
	got := buildmeta.BuildTimestamp(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2023-12-31 23:59:59 UTC", got)
	assert.NotContains(t, got, "365")
}

func TestCanonicalHostName(t *testing.T) {
	ctx := context.Background()

	t.Run("resolved", func(t *testing.T) {
		r := &testutil.MockResolver{LookupCNAMEFn: func(_ context.Context, host string) (string, error) {
			assert.Equal(t, "build-01", host)
			return "build-01.ci.example.com.", nil
		}}
		assert.Equal(t, "build-01.ci.example.com", buildmeta.CanonicalHostName(ctx, r, "build-01"))
	})

	t.Run("lookup failure keeps short name", func(t *testing.T) {
		r := &testutil.MockResolver{LookupCNAMEFn: func(context.Context, string) (string, error) {
			return "", errors.New("no such host")
		}}
		assert.Equal(t, "build-01", buildmeta.CanonicalHostName(ctx, r, "build-01"))
	})

	t.Run("empty answer keeps short name", func(t *testing.T) {
		r := &testutil.MockResolver{LookupCNAMEFn: func(context.Context, string) (string, error) {
			return ".", nil
		}}
		assert.Equal(t, "build-01", buildmeta.CanonicalHostName(ctx, r, "build-01"))
	})

	t.Run("unknown host is not looked up", func(t *testing.T) {
		r := &testutil.MockResolver{LookupCNAMEFn: func(context.Context, string) (string, error) {
			t.Fatal("lookup must not be called")
			return "", nil
		}}
		assert.Equal(t, buildmeta.UnknownHost, buildmeta.CanonicalHostName(ctx, r, buildmeta.UnknownHost))
	})

	t.Run("nil lookup", func(t *testing.T) {
		assert.Equal(t, "build-01", buildmeta.CanonicalHostName(ctx, nil, "build-01"))
	})
}
