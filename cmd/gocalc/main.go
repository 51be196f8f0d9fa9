package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "gocalc [file]",
		Short: "Evaluate unsigned 32-bit integer arithmetic expressions",
		Long: `gocalc evaluates expressions made of unsigned integers and the operators
+, -, * and /, one expression per line. Multiplication and division bind
tighter than addition and subtraction; operators of equal precedence group
from left to right. Arithmetic wraps around at 2^32 unless --checked is set.

With no file and a terminal on stdin, gocalc starts an interactive prompt.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.run(cmd.InOrStdin(), args)
		},
	}
	cfg.bindFlags(cmd.Flags())
	return cmd
}

func main() {
	err := newRootCmd().Execute()
	if errors.Is(err, errFailed) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
