package main

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newMessagesCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages [key]",
		Short: "Print the message table, or one message, for the selected language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("lang")
			translations, _ := cmd.Flags().GetString("translations")

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return exitError(exitConfig, "%v", err)
			}
			msgs, err := loadMessages(cmd.Context(), translations, lang, log)
			if err != nil {
				return exitError(exitConfig, "%v", err)
			}

			if len(args) == 1 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), msgs.Get(args[0]))
				return err
			}

			table, err := msgs.Export()
			if err != nil {
				return exitError(exitConfig, "%v", err)
			}
			var out bytes.Buffer
			if err := json.Indent(&out, []byte(table), "", "  "); err != nil {
				return fmt.Errorf("formatting messages: %w", err)
			}
			out.WriteByte('\n')
			_, err = out.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	return cmd
}
