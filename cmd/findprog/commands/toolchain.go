package commands

import (
	"github.com/spf13/cobra"

	"github.com/jongio/findprog/cliout"
	"github.com/jongio/findprog/toolchain"
)

func (c *CLI) newToolchainCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "toolchain",
		Short: "Show which build tools, linkers, and compiler caches are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := toolchain.NewResolver(c.cache)

			kinds := toolchain.Kinds
			var tools []toolchain.Tool
			if kind != "" {
				k, err := toolchain.ParseKind(kind)
				if err != nil {
					return err
				}
				kinds = []toolchain.Kind{k}
				if tools, err = r.ByKind(k); err != nil {
					return err
				}
			} else {
				tools = r.All()
			}

			return cliout.Print(tools, func() {
				rows := make([]cliout.TableRow, 0, len(tools))
				for _, t := range tools {
					path := t.Path
					if !t.Found {
						path = "not found"
					}
					rows = append(rows, cliout.TableRow{
						"KIND":    string(t.Kind),
						"TOOL":    t.Name,
						"PROGRAM": t.Program,
						"PATH":    path,
					})
				}
				cliout.Table([]string{"KIND", "TOOL", "PROGRAM", "PATH"}, rows)

				cliout.Header("Preferred")
				for _, k := range kinds {
					if t, ok := preferredTool(tools, k); ok {
						cliout.Label(string(k), t.Name)
					} else {
						cliout.Label(string(k), "none")
					}
				}
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only show one kind: build-tool, linker, compiler-cache")
	return cmd
}

// preferredTool returns the first installed tool of kind k. tools is already in
// catalog preference order, so this matches Resolver.Preferred without another
// round of cache lookups.
func preferredTool(tools []toolchain.Tool, k toolchain.Kind) (toolchain.Tool, bool) {
	for _, t := range tools {
		if t.Kind == k && t.Found {
			return t, true
		}
	}
	return toolchain.Tool{}, false
}
