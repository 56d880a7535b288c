package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"toko-admin/internal/dashboard"
	"toko-admin/internal/dashboard/terminal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	fieldErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// storeFlags are shared by every save and delete command.
type storeFlags struct {
	storeID   string
	entityID  string
	assumeYes bool
}

func (f *storeFlags) register(cmd *cobra.Command, deleting bool) {
	cmd.Flags().StringVar(&f.storeID, "store", "", "Store id")
	_ = cmd.MarkFlagRequired("store")
	if deleting {
		cmd.Flags().StringVar(&f.entityID, "id", "", "Id of the entity to delete")
		_ = cmd.MarkFlagRequired("id")
		cmd.Flags().BoolVarP(&f.assumeYes, "yes", "y", false, "Skip the confirmation dialog")
		return
	}
	cmd.Flags().StringVar(&f.entityID, "id", "", "Id of the entity to edit; empty creates a new one")
}

func newAPIClient() *dashboard.Client {
	return dashboard.NewClient(cfg.APIURL, cfg.APIToken)
}

func newDeps(client *dashboard.Client, out io.Writer, assumeYes bool) dashboard.Deps {
	confirmer := terminal.NewConfirmer(os.Stdin, out)
	confirmer.AssumeYes = assumeYes
	return dashboard.Deps{
		API:       client,
		Navigator: terminal.NewNavigator(client, out),
		Notifier:  terminal.NewNotifier(out),
		Confirmer: confirmer,
	}
}

type heading interface {
	Title() string
	Description() string
	Action() string
}

func printHeading(out io.Writer, h heading) {
	fmt.Fprintln(out, headingStyle.Render(h.Title()))
	fmt.Fprintln(out, descriptionStyle.Render(h.Description()))
	fmt.Fprintln(out)
}

// reportInvalid prints every field violation of a rejected draft.
func reportInvalid(out io.Writer, err error) error {
	var invalid *dashboard.InvalidError
	if !errors.As(err, &invalid) {
		return err
	}
	for _, f := range invalid.Fields {
		fmt.Fprintln(out, fieldErrorStyle.Render(fmt.Sprintf("  %s: %s", f.Field, fieldHint(f.Tag))))
	}
	return errors.New("form is invalid")
}

func fieldHint(tag string) string {
	switch tag {
	case "min":
		return "terlalu pendek"
	case "gte":
		return "minimal 1"
	case "oneof":
		return "tidak ada di daftar"
	case "price":
		return "maksimal 2 desimal dan 99.999.999,99"
	default:
		return "tidak valid"
	}
}
