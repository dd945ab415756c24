package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/certmaker/internal/app"
	certificateDomain "github.com/allisson/certmaker/internal/certificate/domain"
	"github.com/allisson/certmaker/internal/config"
)

// RenderCommand returns the command that renders a certificate to a local file,
// bypassing the HTTP layer. Useful for previewing style changes.
func RenderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render a certificate PDF to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "first-name", Usage: "recipient first name", Required: true},
			&cli.StringFlag{Name: "last-name", Usage: "recipient last name", Required: true},
			&cli.StringFlag{Name: "date", Usage: "certification date text (optional)"},
			&cli.StringFlag{Name: "degree", Usage: "degree level", Required: true},
			&cli.StringFlag{Name: "faculty", Usage: "faculty name", Required: true},
			&cli.StringFlag{Name: "achievement", Usage: "achievement text", Required: true},
			&cli.StringFlag{Name: "style", Usage: "certificate style id", Value: "classic"},
			&cli.StringFlag{Name: "output", Usage: "output file path", Value: "certificate.pdf"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			container := app.NewContainer(cfg)

			style, err := certificateDomain.ParseStyle(cmd.String("style"))
			if err != nil {
				return err
			}

			doc, err := container.CertificateUseCase().Render(ctx, &certificateDomain.CertificateRequest{
				FirstName:         cmd.String("first-name"),
				LastName:          cmd.String("last-name"),
				CertificationDate: cmd.String("date"),
				DegreeLevel:       cmd.String("degree"),
				Faculty:           cmd.String("faculty"),
				Achievement:       cmd.String("achievement"),
				Style:             style,
			})
			if err != nil {
				return err
			}

			output := cmd.String("output")
			if err := os.WriteFile(output, doc.Bytes, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			fmt.Printf("wrote %s (%d bytes)\n", output, len(doc.Bytes))
			return nil
		},
	}
}
