// Command skrinja tracks items in nested boxes. Local subcommands operate
// on a single-user forest file; serve runs the multi-user web service.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

var forestFile = flag.String("file", "skrinja.json", "forest file used by local commands")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")

	subcommands.Register(&boxAddCmd{}, "boxes")
	subcommands.Register(&boxUpdateCmd{}, "boxes")
	subcommands.Register(&boxRmCmd{}, "boxes")
	subcommands.Register(&boxMvCmd{}, "boxes")

	subcommands.Register(&itemAddCmd{}, "items")
	subcommands.Register(&itemUpdateCmd{}, "items")
	subcommands.Register(&itemRmCmd{}, "items")
	subcommands.Register(&itemMvCmd{}, "items")

	subcommands.Register(&treeCmd{}, "forest")
	subcommands.Register(&searchCmd{}, "forest")
	subcommands.Register(&statsCmd{}, "forest")

	subcommands.Register(&serveCmd{}, "server")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
