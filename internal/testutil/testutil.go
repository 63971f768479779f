// Package testutil provides shared test helpers for artifact-info packages.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os/user"
	"time"

	"github.com/tbckr/artifact-info/internal/buildmeta"
)

// MockResolver implements buildmeta.CNAMELookup for testing.
// Leave LookupCNAMEFn nil to echo the host back as its own canonical name.
type MockResolver struct {
	LookupCNAMEFn func(ctx context.Context, host string) (string, error)
}

var _ buildmeta.CNAMELookup = (*MockResolver)(nil)

// LookupCNAME implements buildmeta.CNAMELookup.
func (m *MockResolver) LookupCNAME(ctx context.Context, host string) (string, error) {
	if m.LookupCNAMEFn != nil {
		return m.LookupCNAMEFn(ctx, host)
	}
	return host + ".", nil
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FixedCollector returns a Collector whose every source is deterministic.
func FixedCollector(now time.Time, host, username string) *buildmeta.Collector {
	return &buildmeta.Collector{
		Now:      func() time.Time { return now },
		Hostname: func() (string, error) { return host, nil },
		CurrentUser: func() (*user.User, error) {
			return &user.User{Username: username}, nil
		},
		Getenv: func(string) string { return "" },
	}
}
