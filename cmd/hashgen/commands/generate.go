package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hashgen/internal/domain"
	"hashgen/internal/services/roster"
	"hashgen/internal/store"
)

// generate collects the roster, prints the masked report and the declaration,
// and saves the hash file. With one argument the roster is read from that
// file, otherwise from stdin until EOF.
func (c *cli) generate(cmd *cobra.Command, args []string) error {
	w := c.wire
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, title.Render("Email Hash Generator for "+w.Config.Label))
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "\nThis tool generates "+w.Config.Algorithm.Title()+" hashes from student emails.")
	fmt.Fprintln(out, "The raw email list should NEVER be committed to git!")
	fmt.Fprintln(out, "\n"+gray.Render("Usage options:"))
	fmt.Fprintln(out, gray.Render("1. Interactive mode: run without arguments and paste emails"))
	fmt.Fprintln(out, gray.Render("2. File mode: hashgen emails.txt"))
	fmt.Fprintln(out, "\n"+rule)

	var (
		emails []domain.Email
		err    error
	)
	if len(args) == 1 {
		emails, err = w.Roster.FromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nRead %d emails from %s\n", len(emails), args[0])
	} else {
		fmt.Fprintln(out, "\nEnter student emails (one per line).")
		fmt.Fprintln(out, "Press Ctrl+D (Unix/Mac) or Ctrl+Z (Windows) when done:")
		fmt.Fprintln(out)
		emails, err = w.Roster.FromReader(cmd.InOrStdin())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n\nProcessing %d emails...\n", len(emails))
	}

	if err := roster.NonEmpty(emails); err != nil {
		fmt.Fprintln(out, red.Render("No emails provided!"))
		return err
	}

	section(out, "Generated Hashes:")
	rep := w.Digest.Process(emails)
	for _, e := range rep.Entries {
		fmt.Fprintf(out, "%-15s -> %s\n", e.Masked, e.Hash)
	}

	section(out, "List format for the test fixture:",
		"Copy and paste this into the "+w.Config.VarName+" list:")
	fmt.Fprint(out, "\n"+store.Declaration(w.Config.VarName, rep.Hashes, "    "))

	if err := w.Hashes.Save(rep.Hashes); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n"+rule)
	fmt.Fprintln(out, green.Render(fmt.Sprintf("✓ Processed %d valid emails", len(rep.Hashes))))
	fmt.Fprintln(out, green.Render("✓ Hashes saved to "+w.Hashes.Path()))
	if n := len(rep.Skipped); n > 0 {
		c.log.Warn("lines skipped", "count", n, "error", domain.ErrMalformedEmail)
	}
	fmt.Fprintln(out, "\nREMINDER: Do NOT commit raw email lists to git!")
	fmt.Fprintln(out, "Only commit the hashed values in the test file.")
	return nil
}
