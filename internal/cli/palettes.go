package cli

import (
	"github.com/spf13/cobra"

	"github.com/arcplot/arcplot/pkg/render"
)

// newPalettesCmd creates the palettes command listing available palettes.
func newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List available helix color palettes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo("available palettes:")
			for _, name := range render.PaletteNames() {
				marker := "  "
				if name == render.DefaultPalette {
					marker = "* "
				}
				printDetail("%s%s", marker, stylePaletteName.Render(name))
			}
			printDetail("")
			printDetail("* default; add custom palettes via the config file")
		},
	}
}
