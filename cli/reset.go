// ABOUTME: State reset subcommand
// ABOUTME: Drops the stored blob so the next run reseeds defaults
package cli

import (
	"flag"
	"fmt"

	"github.com/harperreed/proxvenda/store"
)

// ResetCommand wipes all stored data after confirmation.
func ResetCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	force := fs.Bool("force", false, "Skip confirmation prompt")
	_ = fs.Parse(args)

	if !*force && !confirm("Delete ALL leads, stages, and templates?") {
		return fmt.Errorf("aborted")
	}

	if err := s.Reset(); err != nil {
		return fmt.Errorf("failed to reset state: %w", err)
	}

	fmt.Println("✓ State reset. Default stages and templates will be seeded on next run.")
	return nil
}
