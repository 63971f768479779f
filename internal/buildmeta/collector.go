package buildmeta

import (
	"context"
	"os"
	"os/user"
	"time"
)

// DefaultResolveTimeout bounds hostname canonicalisation.
const DefaultResolveTimeout = 2 * time.Second

// Facts are the resolved values of one generation run.
type Facts struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BuiltBy     string `json:"built_by"`
	BuildDate   string `json:"build_date"`
	BuildHost   string `json:"build_host"`
}

// Collector gathers Facts from the environment. Every source is a field so
// tests can replace it; NewCollector wires the real ones.
type Collector struct {
	Now         func() time.Time
	Hostname    func() (string, error)
	CurrentUser func() (*user.User, error)
	Getenv      func(string) string

	// Resolver, when set, is used to canonicalise the hostname.
	Resolver       CNAMELookup
	ResolveTimeout time.Duration
}

// NewCollector returns a Collector reading the system clock, hostname and user.
func NewCollector() *Collector {
	return &Collector{
		Now:            time.Now,
		Hostname:       os.Hostname,
		CurrentUser:    user.Current,
		Getenv:         os.Getenv,
		ResolveTimeout: DefaultResolveTimeout,
	}
}

// Collect resolves all facts for id. It never fails; unavailable facts take
// their fallback values.
func (c *Collector) Collect(ctx context.Context, id Identity) Facts {
	return Facts{
		Name:        ProjectName(id),
		Description: ProjectDescription(id),
		BuiltBy:     userName(c.CurrentUser, c.Getenv),
		BuildDate:   BuildTimestamp(c.Now()),
		BuildHost:   c.buildHost(ctx),
	}
}

func (c *Collector) buildHost(ctx context.Context) string {
	host := hostName(c.Hostname)
	if c.Resolver == nil {
		return host
	}
	timeout := c.ResolveTimeout
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return CanonicalHostName(ctx, c.Resolver, host)
}
