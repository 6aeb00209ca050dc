package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wbrown/img2sketch"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the sketch style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := printer{w: cmd.OutOrStdout()}
			out.title("Style presets")
			for _, s := range img2sketch.Styles() {
				out.keyValue(strings.ToLower(s.String()),
					fmt.Sprintf("sigma=%g sharpen=%d  %s", s.Sigma(), s.SharpenStrength(), s.Summary()))
			}
			return nil
		},
	}
}
