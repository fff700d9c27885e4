// Command findprog locates programs on the executable search path.
package main

import (
	"errors"
	"os"

	"github.com/jongio/findprog/cliout"
	"github.com/jongio/findprog/cmd/findprog/commands"
	"github.com/jongio/findprog/logutil"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli := commands.New()
	cli.SetArgs(args)

	if err := cli.Execute(); err != nil {
		if errors.Is(err, commands.ErrNotFound) {
			return 1
		}
		logutil.Debug("command failed", "error", err)
		if cliout.IsStructured() {
			logutil.Error("command failed", "error", err)
		} else {
			cliout.Error("%v", err)
		}
		return 1
	}
	return 0
}
