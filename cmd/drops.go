package cmd

import (
	"context"
	"flag"

	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

type dropsCmd struct{}

func (*dropsCmd) Name() string     { return "drops" }
func (*dropsCmd) Synopsis() string { return "list the drop catalog" }
func (*dropsCmd) Usage() string {
	return `compound drops

List the predefined drops usable with -drop <name>:<count>.
`
}

func (c *dropsCmd) SetFlags(f *flag.FlagSet) {}

func (c *dropsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderCatalog(renderer.NewCatalog()))
	return subcommands.ExitSuccess
}
