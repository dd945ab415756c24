package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	certificateDomain "github.com/allisson/certmaker/internal/certificate/domain"
)

// StylesCommand returns the command that lists the available styles.
func StylesCommand() *cli.Command {
	return &cli.Command{
		Name:  "styles",
		Usage: "List the available certificate styles",
		Action: func(_ context.Context, _ *cli.Command) error {
			for _, style := range certificateDomain.Styles() {
				definition, err := certificateDomain.Definition(style)
				if err != nil {
					return err
				}

				dateLine := "with date line"
				if definition.Date == nil {
					dateLine = "no date line"
				}
				fmt.Printf("%-10s %s (%s)\n", style, definition.Background, dateLine)
			}
			return nil
		},
	}
}
