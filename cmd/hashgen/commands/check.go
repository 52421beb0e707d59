package commands

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hashgen/internal/crypto"
	"hashgen/internal/domain"
	"hashgen/internal/store"
)

// checkCmd hashes one email the same way the generator does and looks the
// result up in an existing hash file.
func checkCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check <email>",
		Short: "Check whether an email's hash is listed in a hash file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			w := c.wire

			email := domain.Email(strings.TrimSpace(args[0]))
			if !strings.Contains(string(email), "@") {
				return fmt.Errorf("'%s': %w", email, domain.ErrMalformedEmail)
			}
			if file == "" {
				file = w.Config.Output
			}
			listed, err := store.NewHashFileStore(store.Options{Path: file}).Load()
			if err != nil {
				return err
			}

			u := w.Hasher.Username(email)
			h := w.Hasher.Hash(u)
			masked := crypto.Mask(u)
			if !contains(listed, h) {
				return fmt.Errorf("%s in %s: %w", masked, file, domain.ErrHashNotFound)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s -> %s %s\n", masked, h, green.Render("listed"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "hash file to search (default: --output)")
	return cmd
}

// contains compares every entry in constant time so the lookup does not leak
// where a match sits.
func contains(list domain.HashList, h domain.Hash) bool {
	found := 0
	for _, l := range list {
		found |= subtle.ConstantTimeCompare([]byte(l), []byte(h))
	}
	return found == 1
}
