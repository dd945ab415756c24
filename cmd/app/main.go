package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/certmaker/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:  "certmaker",
		Usage: "Certificate shop service",
		Commands: []*cli.Command{
			commands.ServerCommand(),
			commands.RenderCommand(),
			commands.StylesCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
