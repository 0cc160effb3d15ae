/*
PURPOSE:
  Defines the 'plot' subcommand.
  Charts a single report given on the command line.

REQUIREMENTS:
  User-specified:
  - Plot an arbitrary report without writing a config file.
  - Title per chart (e.g. compiler name and version).

  Implementation-discovered:
  - Need to load config first so geometry and pinned colours still apply.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunJob()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load, report load or rendering fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> engine.RunJob.

USAGE:
  benchplot plot clang.yml -t "clang 17"

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/benchplot/internal/config"
	"github.com/daryltucker/benchplot/internal/engine"
)

var (
	outputOverride  string
	titleOverride   string
	widthOverride   int
	heightOverride  int
	dpiOverride     int
	paletteOverride string
	pinOverride     map[string]int
)

var plotCmd = &cobra.Command{
	Use:   "plot [report.yml]",
	Short: "Chart a single benchmark report",
	Long: `Renders one report into a grouped horizontal bar chart.
The output defaults to the report path with a .png extension; the image
format follows the output extension (png, jpg, tiff).`,
	Example: `  # bench_result.yml -> bench_result.png
  benchplot plot

  # Title the chart and pick the output
  benchplot plot gcc.yml -t "gcc 13.2" -o charts/gcc.png

  # Keep sayhisort in the first palette colour
  benchplot plot clang.yml --pin sayhisort=0`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		job := config.Job{Input: "bench_result.yml"}
		if len(args) == 1 {
			job.Input = args[0]
		}
		job.Output = outputOverride
		job.Title = titleOverride

		if widthOverride > 0 {
			cfg.Width = widthOverride
		}
		if heightOverride > 0 {
			cfg.Height = heightOverride
		}
		if dpiOverride > 0 {
			cfg.DPI = dpiOverride
		}
		if paletteOverride != "" {
			cfg.Palette = paletteOverride
		}
		if len(pinOverride) > 0 {
			cfg.PinnedColors = pinOverride
		}
		cfg.Jobs = []config.Job{job}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// 3. Execution
		return engine.RunJob(cfg, job)
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&outputOverride, "output", "o", "", "Output image (default: report path with .png)")
	plotCmd.Flags().StringVarP(&titleOverride, "title", "t", "", "Chart title")
	plotCmd.Flags().IntVar(&widthOverride, "width", 0, "Image width in pixels")
	plotCmd.Flags().IntVar(&heightOverride, "height", 0, "Image height in pixels")
	plotCmd.Flags().IntVar(&dpiOverride, "dpi", 0, "Image resolution")
	plotCmd.Flags().StringVar(&paletteOverride, "palette", "", "Palette: tableau-colorblind10 or a ColorBrewer qualitative scheme")
	plotCmd.Flags().StringToIntVar(&pinOverride, "pin", nil, "Pin libraries to palette slots (name=slot,...)")
}
