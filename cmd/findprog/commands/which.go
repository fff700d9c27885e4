package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/findprog/binpath"
	"github.com/jongio/findprog/cliout"
	"github.com/jongio/findprog/pathutil"
)

type whichResult struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Found bool   `json:"found" yaml:"found"`
}

type whichOutput struct {
	Results []whichResult  `json:"results" yaml:"results"`
	Stats   *binpath.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

func (c *CLI) newWhichCmd() *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "which NAME...",
		Short: "Print the absolute path of each program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := whichOutput{Results: make([]whichResult, 0, len(args))}
			missing := false
			for _, name := range args {
				path, ok := c.cache.Find(name)
				out.Results = append(out.Results, whichResult{Name: name, Path: path, Found: ok})
				if !ok {
					missing = true
				}
			}
			if showStats {
				stats := c.cache.Stats()
				out.Stats = &stats
			}

			err := cliout.Print(out, func() {
				for _, r := range out.Results {
					if r.Found {
						cliout.Success("%s → %s", r.Name, r.Path)
					} else {
						cliout.Error("%s not found", r.Name)
						cliout.Hint(pathutil.GetInstallSuggestion(r.Name))
					}
				}
				if out.Stats != nil {
					printStats(*out.Stats)
				}
			})
			if err != nil {
				return err
			}
			if missing {
				return ErrNotFound
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print cache statistics after resolving")
	return cmd
}

func printStats(s binpath.Stats) {
	cliout.Header("Cache")
	cliout.Label("Hits", strconv.Itoa(s.Hits))
	cliout.Label("Misses", strconv.Itoa(s.Misses))
	cliout.Label("Scans", strconv.Itoa(s.Scans))
	cliout.Label("Entries", strconv.Itoa(s.Entries))
}
