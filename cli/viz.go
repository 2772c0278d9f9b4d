// ABOUTME: Visualization CLI commands
// ABOUTME: Handles dashboard rendering and funnel graph generation
package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/harperreed/proxvenda/store"
	"github.com/harperreed/proxvenda/viz"
)

// VizGraphFunnelCommand generates a funnel graph in DOT format.
func VizGraphFunnelCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz graph funnel", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	leads := fs.Bool("leads", false, "Include individual leads in the graph")

	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	generator := viz.NewGraphGenerator(st)
	dot, err := generator.GenerateFunnelGraph(*leads)
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}

// VizDashboardCommand prints the ASCII dashboard.
func VizDashboardCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz dashboard", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	stats := viz.GenerateDashboardStats(st, time.Now())
	fmt.Print(viz.RenderDashboard(stats))
	return nil
}
