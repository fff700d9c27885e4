// Package cliout provides structured output formatting for CLI commands.
//
// Commands call Print with both a data value and a formatter. In the default
// format the formatter renders human-readable text with the styled helpers
// (Header, Success, Error, Label, Table); with --output json or --output yaml
// the data value is encoded instead.
//
//	if err := cliout.SetFormat(output); err != nil {
//	    return err
//	}
//	return cliout.Print(result, func() {
//	    cliout.Success("%s → %s", result.Name, result.Path)
//	})
//
// Color is emitted only when stdout is a terminal and NO_COLOR is unset,
// unless ForceColor or NoColor override the detection.
package cliout
