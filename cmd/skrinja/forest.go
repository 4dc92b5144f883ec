package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/zigap/skrinja/internal/tree"
)

type treeCmd struct{}

func (*treeCmd) Name() string     { return "tree" }
func (*treeCmd) Synopsis() string { return "print the whole forest" }
func (*treeCmd) Usage() string {
	return `tree

  Prints every box and item, indented by nesting depth.
`
}
func (*treeCmd) SetFlags(*flag.FlagSet) {}

func (*treeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	t, err := loadTracker()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	var walk func(b *tree.Box, depth int)
	walk = func(b *tree.Box, depth int) {
		indent := strings.Repeat("  ", depth)
		fmt.Printf("%s[%s] %s\n", indent, b.ID, b.Name)
		for _, it := range t.ChildItems(b) {
			fmt.Printf("%s  - [%s] %s\n", indent, it.ID, it.Name)
		}
		for _, c := range t.ChildBoxes(b) {
			walk(c, depth+1)
		}
	}
	for _, root := range t.Roots() {
		walk(root, 0)
	}
	return subcommands.ExitSuccess
}

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find boxes and items by name or description" }
func (*searchCmd) Usage() string {
	return `search <query>

  Case-insensitive substring search. Matches are printed with the chain
  of boxes leading to them.
`
}
func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (*searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: search needs exactly one query argument")
		return subcommands.ExitUsageError
	}

	t, err := loadTracker()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	res := t.Search(f.Arg(0))
	for _, m := range res.Boxes {
		fmt.Printf("box  %s%s\n", pathPrefix(m.Path), m.Box.Name)
	}
	for _, m := range res.Items {
		fmt.Printf("item %s%s\n", pathPrefix(m.Path), m.Item.Name)
	}
	if len(res.Boxes) == 0 && len(res.Items) == 0 {
		fmt.Println("no matches")
	}
	return subcommands.ExitSuccess
}

func pathPrefix(path []tree.PathEntry) string {
	var sb strings.Builder
	for _, p := range path {
		sb.WriteString(p.Name)
		sb.WriteString(" / ")
	}
	return sb.String()
}

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "print forest totals" }
func (*statsCmd) Usage() string {
	return `stats
`
}
func (*statsCmd) SetFlags(*flag.FlagSet) {}

func (*statsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	t, err := loadTracker()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	s := t.Stats()
	fmt.Printf("boxes: %d (roots: %d)\nitems: %d\n", s.TotalBoxes, s.RootBoxes, s.TotalItems)
	return subcommands.ExitSuccess
}
