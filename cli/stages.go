// ABOUTME: Funnel stage CLI commands
// ABOUTME: Lists, adds, and removes sales funnel stages
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
)

// ListStagesCommand shows the funnel in order with lead counts.
func ListStagesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-stages", flag.ExitOnError)
	_ = fs.Parse(args)

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tSTAGE\tLEADS\tID")
	_, _ = fmt.Fprintln(w, "-\t-----\t-----\t--")

	for i, stage := range st.Stages {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
			i+1, stage.Name, len(crm.LeadsByStage(st, stage.ID)), stage.ID[:8])
	}
	_ = w.Flush()

	return nil
}

// AddStageCommand appends a stage to the funnel.
func AddStageCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-stage", flag.ExitOnError)
	name := fs.String("name", "", "Stage name (required)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	var id string
	err := s.Mutate(func(st *models.AppState) error {
		stage, err := crm.AddStage(st, *name)
		if err != nil {
			return err
		}
		id = stage.ID
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add stage: %w", err)
	}

	fmt.Printf("✓ Stage created: %s (ID: %s)\n", *name, id)
	return nil
}

// RemoveStageCommand deletes a stage after confirmation. Leads in the stage
// are kept and drop out of the funnel view.
func RemoveStageCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("remove-stage", flag.ExitOnError)
	force := fs.Bool("force", false, "Skip confirmation prompt")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("stage ID or name is required")
	}

	var removed string
	err := s.Mutate(func(st *models.AppState) error {
		arg := fs.Args()[0]
		stage := crm.FindStageByName(st, arg)
		if stage == nil {
			stage = crm.FindStage(st, arg)
		}
		if stage == nil {
			return fmt.Errorf("stage not found: %s", arg)
		}
		inStage := len(crm.LeadsByStage(st, stage.ID))
		if !*force {
			prompt := fmt.Sprintf("Remove stage %q?", stage.Name)
			if inStage > 0 {
				prompt = fmt.Sprintf("Remove stage %q? %d lead(s) will leave the funnel view.", stage.Name, inStage)
			}
			if !confirm(prompt) {
				return fmt.Errorf("aborted")
			}
		}
		removed = stage.Name
		return crm.RemoveStage(st, stage.ID)
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Stage removed: %s\n", removed)
	return nil
}
