package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hueshift/internal/auth"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a password for METRICS_PASSWORD_HASH",
		Long: `Read a password from the first line of stdin and print its bcrypt hash.
Set the result as METRICS_PASSWORD_HASH to protect the metrics listener.`,
		Example: `  echo -n 's3cret' | hueshift hash-password`,
		Args:    cobra.NoArgs,
		RunE:    runHashPassword,
	}
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		}
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
