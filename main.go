package main

import (
	"fmt"
	"os"

	"github.com/akasprzok/plot/internal/commands"
	"github.com/akasprzok/plot/internal/logger"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("plot"),
		kong.Description("Plots realtime graphs based on a single number coming from stdin separated by newline."),
		kong.UsageOnError(),
	)

	log := logger.New(logger.Options{Level: cli.LogLevel, File: cli.LogFile})

	err := ctx.Run(&commands.Context{
		Graph:   cli.Graph,
		Timeout: cli.Timeout,
		In:      os.Stdin,
		Out:     os.Stdout,
		Log:     log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "plot: %v\n", err)
		os.Exit(1)
	}
}
