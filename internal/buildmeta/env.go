package buildmeta

import (
	"context"
	"os"
	"os/user"
	"strings"
	"time"
)

// UnknownHost is reported when the local hostname cannot be determined.
const UnknownHost = "unknown"

// TimestampLayout renders as "YYYY-MM-DD HH:MM:SS UTC" for UTC times.
// The day is the day of the month.
const TimestampLayout = "2006-01-02 15:04:05 MST"

// HostName returns the local machine's hostname, or UnknownHost on failure.
func HostName() string {
	return hostName(os.Hostname)
}

func hostName(lookup func() (string, error)) string {
	name, err := lookup()
	if err != nil {
		return UnknownHost
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownHost
	}
	return name
}

// CNAMELookup resolves the canonical name of a host. *net.Resolver implements it.
type CNAMELookup interface {
	LookupCNAME(ctx context.Context, host string) (string, error)
}

// CanonicalHostName asks lookup for the fully qualified name of short.
// short is returned unchanged if it is UnknownHost, if the lookup fails or
// if the answer is empty.
func CanonicalHostName(ctx context.Context, lookup CNAMELookup, short string) string {
	if lookup == nil || short == "" || short == UnknownHost {
		return short
	}
	cname, err := lookup.LookupCNAME(ctx, short)
	if err != nil {
		return short
	}
	cname = strings.TrimSuffix(cname, ".")
	if cname == "" {
		return short
	}
	return cname
}

// UserName returns the name of the user running the process. It falls back
// to $USER and then $USERNAME, and returns "" when no identity is available.
func UserName() string {
	return userName(user.Current, os.Getenv)
}

func userName(current func() (*user.User, error), getenv func(string) string) string {
	if u, err := current(); err == nil && u != nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// BuildTimestamp formats now in UTC using TimestampLayout.
func BuildTimestamp(now time.Time) string {
	return now.UTC().Format(TimestampLayout)
}
