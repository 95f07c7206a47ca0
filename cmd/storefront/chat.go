package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the support assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			reply, err := newAPIClient(cfg).Chat(ctx, strings.Join(args, " "), nil)
			if err != nil {
				return fmt.Errorf("chat: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}
