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

var buildTime = time.Date(2017, time.February, 8, 9, 30, 0, 0, time.UTC)

func TestCollector_Collect(t *testing.T) {
	c := testutil.FixedCollector(buildTime, "build-01", "ken")

	facts := c.Collect(context.Background(), buildmeta.Identity{
		GroupID:     "org.bbe",
		ArtifactID:  "demo",
		Description: ptr("A demo"),
	})

	assert.Equal(t, buildmeta.Facts{
		Name:        "demo",
		Description: "A demo",
		BuiltBy:     "ken",
		BuildDate:   "2017-02-08 09:30:00 UTC",
		BuildHost:   "build-01",
	}, facts)
}

func TestCollector_HostFallback(t *testing.T) {
	c := testutil.FixedCollector(buildTime, "", "ken")
	c.Hostname = func() (string, error) { return "", errors.New("boom") }

	facts := c.Collect(context.Background(), buildmeta.Identity{ArtifactID: "demo"})
	assert.Equal(t, buildmeta.UnknownHost, facts.BuildHost)
}

func TestCollector_CanonicalHost(t *testing.T) {
	c := testutil.FixedCollector(buildTime, "build-01", "ken")
	c.ResolveTimeout = 50 * time.Millisecond
	c.Resolver = &testutil.MockResolver{LookupCNAMEFn: func(ctx context.Context, _ string) (string, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "lookup must run under a timeout")
		return "build-01.example.com.", nil
	}}

	facts := c.Collect(context.Background(), buildmeta.Identity{ArtifactID: "demo"})
	assert.Equal(t, "build-01.example.com", facts.BuildHost)
}

func TestCollector_CanonicalHostTimeout(t *testing.T) {
	c := testutil.FixedCollector(buildTime, "build-01", "ken")
	c.ResolveTimeout = 10 * time.Millisecond
	c.Resolver = &testutil.MockResolver{LookupCNAMEFn: func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}

	facts := c.Collect(context.Background(), buildmeta.Identity{ArtifactID: "demo"})
	assert.Equal(t, "build-01", facts.BuildHost)
}

func TestNewCollector(t *testing.T) {
	c := buildmeta.NewCollector()
	facts := c.Collect(context.Background(), buildmeta.Identity{ArtifactID: "demo"})
	assert.Equal(t, "demo", facts.Name)
	assert.NotEmpty(t, facts.BuildHost)
	_, err := time.Parse(buildmeta.TimestampLayout, facts.BuildDate)
	assert.NoError(t, err)
}
