package config_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/tbckr/artifact-info/internal/config"
)

func TestKeyCompletions(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"output", []string{"text", "json", "plain"}},
		{"lang", []string{"go", "java"}},
		{"packaging", []string{"jar", "war", "pom", "ear", "maven-plugin"}},
		{"fqdn", []string{"true", "false"}},
		{"group-id", nil},
		{"unknown", nil},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.ElementsMatch(t, tc.want, config.KeyCompletions(tc.key))
		})
	}
}

func TestRegisterFlagCompletions(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	config.RegisterFlags(cmd.Flags())
	assert.NotPanics(t, func() { config.RegisterFlagCompletions(cmd) })
}
