package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "fieldcheck",
		Short: "Declarative field validation",
		Long:  "fieldcheck validates the fields of a YAML or JSON document against declarative rules.",
		// SilenceUsage prevents printing usage on every error
		SilenceUsage: true,
	}

	root.PersistentFlags().String("lang", cfg.Lang, "Message language (overrides FIELDCHECK_LANG)")
	root.PersistentFlags().String("translations", cfg.TranslationsDir, "Translations directory or file (overrides FIELDCHECK_TRANSLATIONS_DIR)")

	root.Version = version
	root.SetVersionTemplate(fmt.Sprintf("fieldcheck version %s\n", version))

	root.AddCommand(newCheckCmd(cfg))
	root.AddCommand(newFunctionsCmd())
	root.AddCommand(newMessagesCmd(cfg))
	return root
}
