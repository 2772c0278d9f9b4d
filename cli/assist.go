// ABOUTME: AI assistant CLI commands
// ABOUTME: Gemini-backed message suggestions and template drafting
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/harperreed/proxvenda/assist"
	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
)

// SuggestCommand asks Gemini for three outreach messages for a lead.
func SuggestCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	model := fs.String("model", "", "Gemini model override")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	lead := findLeadByPrefix(st, fs.Args()[0])
	if lead == nil {
		return fmt.Errorf("lead not found: %s", fs.Args()[0])
	}

	ctx := context.Background()
	client, err := assist.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), *model)
	if err != nil {
		return err
	}

	suggestions, err := client.SuggestMessages(ctx, st, lead)
	if err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}

	fmt.Printf("Suggestions for %s:\n\n", lead.Name)
	for i, suggestion := range suggestions {
		fmt.Printf("%d. %s\n   %s\n\n", i+1, suggestion, crm.WhatsAppURL(lead.WhatsApp, suggestion))
	}

	return nil
}

// DraftTemplateCommand asks Gemini for a message and saves it as a template.
func DraftTemplateCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("draft-template", flag.ExitOnError)
	title := fs.String("title", "Sugestão da IA", "Title for the saved template")
	model := fs.String("model", "", "Gemini model override")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("a request description is required")
	}
	request := strings.Join(fs.Args(), " ")

	ctx := context.Background()
	client, err := assist.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), *model)
	if err != nil {
		return err
	}

	content, err := client.DraftTemplate(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to draft template: %w", err)
	}

	var id string
	err = s.Mutate(func(st *models.AppState) error {
		tpl, err := crm.SaveTemplate(st, *title, content)
		if err != nil {
			return err
		}
		id = tpl.ID
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	fmt.Printf("✓ Template saved: %s (ID: %s)\n\n%s\n", *title, id, content)
	return nil
}
