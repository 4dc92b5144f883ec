package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/zigap/skrinja/internal/tree"
)

type itemAddCmd struct {
	name string
	desc string
	box  string
}

func (*itemAddCmd) Name() string     { return "item-add" }
func (*itemAddCmd) Synopsis() string { return "create an item inside a box" }
func (*itemAddCmd) Usage() string {
	return `item-add -name <name> -box <box-id> [-desc <text>]

  Creates an item. Items always live inside a box.
`
}

func (c *itemAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "item name (required)")
	f.StringVar(&c.desc, "desc", "", "item description")
	f.StringVar(&c.box, "box", "", "id of the containing box (required)")
}

func (c *itemAddCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	err := withForest(func(t *tree.Tracker) error {
		item, err := t.CreateItem(c.name, c.desc, c.box)
		if err != nil {
			return err
		}
		printItem(item)
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type itemUpdateCmd struct {
	id           string
	name         string
	desc         string
	boughtAmount float64
	boughtPrice  float64
	soldAmount   float64
	soldPrice    float64
}

func (*itemUpdateCmd) Name() string     { return "item-update" }
func (*itemUpdateCmd) Synopsis() string { return "edit an item's fields or record purchases/sales" }
func (*itemUpdateCmd) Usage() string {
	return `item-update -id <item-id> [-name <name>] [-desc <text>]
            [-bought-amount <n>] [-bought-price <per-unit>]
            [-sold-amount <n>] [-sold-price <total>]

  Updates only the provided fields. Careful with the price asymmetry:
  -bought-price is per unit, -sold-price is the total revenue.
`
}

func (c *itemUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "item id (required)")
	f.StringVar(&c.name, "name", "", "new name")
	f.StringVar(&c.desc, "desc", "", "new description")
	f.Float64Var(&c.boughtAmount, "bought-amount", 0, "quantity bought")
	f.Float64Var(&c.boughtPrice, "bought-price", 0, "purchase price per unit")
	f.Float64Var(&c.soldAmount, "sold-amount", 0, "quantity sold")
	f.Float64Var(&c.soldPrice, "sold-price", 0, "total sale revenue")
}

func (c *itemUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	// Only flags actually given on the command line become part of the
	// partial update.
	var upd tree.ItemUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			upd.Name = &c.name
		case "desc":
			upd.Description = &c.desc
		case "bought-amount":
			upd.BoughtAmount = &c.boughtAmount
		case "bought-price":
			upd.BoughtPrice = &c.boughtPrice
		case "sold-amount":
			upd.SoldAmount = &c.soldAmount
		case "sold-price":
			upd.SoldPrice = &c.soldPrice
		}
	})

	err := withForest(func(t *tree.Tracker) error {
		item, err := t.UpdateItem(c.id, upd)
		if err != nil {
			return err
		}
		printItem(item)
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type itemRmCmd struct {
	id string
}

func (*itemRmCmd) Name() string     { return "item-rm" }
func (*itemRmCmd) Synopsis() string { return "delete an item" }
func (*itemRmCmd) Usage() string {
	return `item-rm -id <item-id>
`
}

func (c *itemRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "item id (required)")
}

func (c *itemRmCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	err := withForest(func(t *tree.Tracker) error {
		if !t.DeleteItem(c.id) {
			return &tree.NotFoundError{Kind: "item", ID: c.id}
		}
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type itemMvCmd struct {
	id  string
	box string
}

func (*itemMvCmd) Name() string     { return "item-mv" }
func (*itemMvCmd) Synopsis() string { return "move an item into another box" }
func (*itemMvCmd) Usage() string {
	return `item-mv -id <item-id> -box <box-id>
`
}

func (c *itemMvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "item id (required)")
	f.StringVar(&c.box, "box", "", "id of the destination box (required)")
}

func (c *itemMvCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	err := withForest(func(t *tree.Tracker) error {
		item, err := t.MoveItem(c.id, c.box)
		if err != nil {
			return err
		}
		printItem(item)
		return nil
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
