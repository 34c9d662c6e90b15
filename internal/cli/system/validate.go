package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daydial/internal/cli"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	result, err := ctx.Planner().Validate()
	if err != nil {
		return err
	}

	fmt.Println(strings.TrimRight(result.FormatReport(), "\n"))
	if result.HasErrors() {
		return fmt.Errorf("activity catalog has errors")
	}
	return nil
}
