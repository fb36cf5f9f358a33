package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/attrread/pkg/attrread"
)

// OptionalInputPath accepts zero or one input path argument.
func OptionalInputPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`%w: accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s data/business.csv`, attrread.ErrUsage, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
