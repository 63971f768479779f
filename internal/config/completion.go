package config

import "github.com/spf13/cobra"

// RegisterFlagCompletions wires shell completion for flags with a fixed value set.
// Registration errors only occur for unknown flags and are ignored.
func RegisterFlagCompletions(cmd *cobra.Command) {
	for _, key := range []string{KeyOutput, KeyLang, KeyPackaging} {
		_ = cmd.RegisterFlagCompletionFunc(FlagName(key), completeKey(key))
	}
}

func completeKey(key string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return KeyCompletions(key), cobra.ShellCompDirectiveNoFileComp
	}
}
