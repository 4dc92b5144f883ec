package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/zigap/skrinja/internal/tree"
)

type boxAddCmd struct {
	name   string
	desc   string
	parent string
}

func (*boxAddCmd) Name() string     { return "box-add" }
func (*boxAddCmd) Synopsis() string { return "create a box, optionally inside another box" }
func (*boxAddCmd) Usage() string {
	return `box-add -name <name> [-desc <text>] [-parent <box-id>]

  Creates a box. Without -parent the box becomes a new forest root.
`
}

func (c *boxAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "box name (required)")
	f.StringVar(&c.desc, "desc", "", "box description")
	f.StringVar(&c.parent, "parent", "", "id of the containing box")
}

func (c *boxAddCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	err := withForest(func(t *tree.Tracker) error {
		box, err := t.CreateBox(c.name, c.desc, c.parent)
		if err != nil {
			return err
		}
		printBox(t, box)
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type boxUpdateCmd struct {
	id   string
	name string
	desc string
}

func (*boxUpdateCmd) Name() string     { return "box-update" }
func (*boxUpdateCmd) Synopsis() string { return "rename a box or edit its description" }
func (*boxUpdateCmd) Usage() string {
	return `box-update -id <box-id> [-name <name>] [-desc <text>]

  Updates only the provided fields.
`
}

func (c *boxUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "box id (required)")
	f.StringVar(&c.name, "name", "", "new name")
	f.StringVar(&c.desc, "desc", "", "new description")
}

func (c *boxUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	var upd tree.BoxUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			upd.Name = &c.name
		case "desc":
			upd.Description = &c.desc
		}
	})

	err := withForest(func(t *tree.Tracker) error {
		box, err := t.UpdateBox(c.id, upd)
		if err != nil {
			return err
		}
		printBox(t, box)
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type boxRmCmd struct {
	id string
}

func (*boxRmCmd) Name() string     { return "box-rm" }
func (*boxRmCmd) Synopsis() string { return "delete a box and everything inside it" }
func (*boxRmCmd) Usage() string {
	return `box-rm -id <box-id>

  Deletes the box with all nested boxes and items.
`
}

func (c *boxRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "box id (required)")
}

func (c *boxRmCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	err := withForest(func(t *tree.Tracker) error {
		if !t.DeleteBox(c.id) {
			return &tree.NotFoundError{Kind: "box", ID: c.id}
		}
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type boxMvCmd struct {
	id     string
	parent string
}

func (*boxMvCmd) Name() string     { return "box-mv" }
func (*boxMvCmd) Synopsis() string { return "move a box (and its contents) elsewhere" }
func (*boxMvCmd) Usage() string {
	return `box-mv -id <box-id> [-parent <box-id>]

  Moves the box under a new parent, or to the forest roots when -parent
  is omitted. A box cannot be moved into its own subtree.
`
}

func (c *boxMvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "box id (required)")
	f.StringVar(&c.parent, "parent", "", "id of the new containing box")
}

func (c *boxMvCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	err := withForest(func(t *tree.Tracker) error {
		box, err := t.MoveBox(c.id, c.parent)
		if err != nil {
			return err
		}
		printBox(t, box)
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
