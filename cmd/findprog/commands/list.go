package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/findprog/cliout"
)

func (c *CLI) newListCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every program on the search path with the path that wins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.cache.Populate()

			entries := c.cache.Entries()
			if prefix != "" {
				filtered := entries[:0]
				for _, e := range entries {
					if strings.HasPrefix(e.Name, prefix) {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			return cliout.Print(entries, func() {
				if len(entries) == 0 {
					cliout.Info("no programs found")
					return
				}
				rows := make([]cliout.TableRow, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, cliout.TableRow{"NAME": e.Name, "PATH": e.Path})
				}
				cliout.Table([]string{"NAME", "PATH"}, rows)
				cliout.Hint(strconv.Itoa(len(entries)) + " programs")
			})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list programs whose name starts with this prefix")
	return cmd
}
