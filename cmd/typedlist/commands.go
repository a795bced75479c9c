package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-typed-collections/collections"
)

type listOp func(c *collections.Collection[any], args []string) (any, error)

// listCmd builds a command that loads the input collection, applies op and
// writes its result.
func listCmd(a *app, use, short string, args cobra.PositionalArgs, op listOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, argv []string) error {
			c, err := a.load(cmd.InOrStdin(), a.cfg.Input)
			if err != nil {
				return err
			}
			out, err := op(c, argv)
			if err != nil {
				return err
			}
			a.logger.Debug("Operation applied", zap.String("command", cmd.Name()))
			return a.write(cmd.OutOrStdout(), out)
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return listCmd(a, "validate", "Check every element against the element type", cobra.NoArgs,
		func(c *collections.Collection[any], _ []string) (any, error) {
			return map[string]any{
				"type":  c.ElementType().Name(),
				"count": c.Count(),
			}, nil
		})
}

func newGetCmd(a *app) *cobra.Command {
	return listCmd(a, "get INDEX", "Print the element at a zero-based index", cobra.ExactArgs(1),
		func(c *collections.Collection[any], args []string) (any, error) {
			index, err := parseInt("index", args[0])
			if err != nil {
				return nil, err
			}
			return c.Get(index)
		})
}

func newSearchCmd(a *app) *cobra.Command {
	return listCmd(a, "search VALUE", "Print the index of the first equal element, or -1", cobra.ExactArgs(1),
		func(c *collections.Collection[any], args []string) (any, error) {
			v, err := a.value(args[0])
			if err != nil {
				return nil, err
			}
			return c.Search(v), nil
		})
}

func newUniqueCmd(a *app) *cobra.Command {
	return listCmd(a, "unique", "Drop repeated elements, keeping first occurrences", cobra.NoArgs,
		func(c *collections.Collection[any], _ []string) (any, error) {
			return c.Unique(), nil
		})
}

func newReverseCmd(a *app) *cobra.Command {
	return listCmd(a, "reverse", "Reverse the element order", cobra.NoArgs,
		func(c *collections.Collection[any], _ []string) (any, error) {
			return c.Reverse(), nil
		})
}

func newShuffleCmd(a *app) *cobra.Command {
	return listCmd(a, "shuffle", "Randomly permute the elements", cobra.NoArgs,
		func(c *collections.Collection[any], _ []string) (any, error) {
			return c.Shuffle(), nil
		})
}

func newSortCmd(a *app) *cobra.Command {
	var desc bool
	cmd := listCmd(a, "sort", "Sort the elements in natural order", cobra.NoArgs,
		func(c *collections.Collection[any], _ []string) (any, error) {
			if desc {
				return c.Sort(func(x, y any) int { return collections.Compare(y, x) }), nil
			}
			return c.Sort(), nil
		})
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	return cmd
}

func newSliceCmd(a *app) *cobra.Command {
	return listCmd(a, "slice OFFSET [LENGTH]", "Print a window of the elements", cobra.RangeArgs(1, 2),
		func(c *collections.Collection[any], args []string) (any, error) {
			ns, err := parseInts(args)
			if err != nil {
				return nil, err
			}
			return c.Slice(ns[0], ns[1:]...), nil
		})
}

func newPadCmd(a *app) *cobra.Command {
	return listCmd(a, "pad SIZE VALUE", "Pad to |SIZE| elements, at the front when SIZE is negative", cobra.ExactArgs(2),
		func(c *collections.Collection[any], args []string) (any, error) {
			size, err := parseInt("size", args[0])
			if err != nil {
				return nil, err
			}
			v, err := a.value(args[1])
			if err != nil {
				return nil, err
			}
			return c.Pad(size, v)
		})
}

func newPushCmd(a *app) *cobra.Command {
	var front bool
	cmd := listCmd(a, "push VALUE...", "Append values, or prepend them with --front", cobra.MinimumNArgs(1),
		func(c *collections.Collection[any], args []string) (any, error) {
			values, err := a.parseValues(args)
			if err != nil {
				return nil, err
			}
			if front {
				err = c.Unshift(values...)
			} else {
				err = c.Push(values...)
			}
			if err != nil {
				return nil, err
			}
			return c, nil
		})
	cmd.Flags().BoolVar(&front, "front", false, "insert at the front")
	return cmd
}

func newSpliceCmd(a *app) *cobra.Command {
	return listCmd(a, "splice OFFSET COUNT [VALUE...]", "Replace a window of elements and print the result", cobra.MinimumNArgs(2),
		func(c *collections.Collection[any], args []string) (any, error) {
			ns, err := parseInts(args[:2])
			if err != nil {
				return nil, err
			}
			values, err := a.parseValues(args[2:])
			if err != nil {
				return nil, err
			}
			removed, err := c.Splice(ns[0], ns[1], values...)
			if err != nil {
				return nil, err
			}
			return map[string]any{"result": c, "removed": removed}, nil
		})
}

func newDiffCmd(a *app) *cobra.Command {
	return listCmd(a, "diff FILE...", "Keep elements absent from every FILE", cobra.MinimumNArgs(1),
		func(c *collections.Collection[any], args []string) (any, error) {
			others, err := a.loadAll(args)
			if err != nil {
				return nil, err
			}
			return c.Diff(others...), nil
		})
}

func newIntersectCmd(a *app) *cobra.Command {
	return listCmd(a, "intersect FILE...", "Keep elements present in every FILE", cobra.MinimumNArgs(1),
		func(c *collections.Collection[any], args []string) (any, error) {
			others, err := a.loadAll(args)
			if err != nil {
				return nil, err
			}
			return c.Intersect(others...), nil
		})
}

func (a *app) loadAll(names []string) ([]*collections.Collection[any], error) {
	cs := make([]*collections.Collection[any], 0, len(names))
	for _, name := range names {
		if name == "" || name == "-" {
			return nil, fmt.Errorf("stdin cannot be used as a comparison input")
		}
		c, err := a.load(nil, name)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func parseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", what, s)
	}
	return n, nil
}

func parseInts(args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, s := range args {
		n, err := parseInt("argument", s)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}
