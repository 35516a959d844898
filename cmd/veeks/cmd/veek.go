package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/veeks/foundation/core/log"
	"github.com/msto63/veeks/foundation/utils/veekx"
	"github.com/msto63/veeks/internal/render"
)

var veekCmd = &cobra.Command{
	Use:   `veek "YYYYc WWv Dd"`,
	Short: "Converts a veek-date to a calendar date",
	Long: `Converts a veek-date "YYYYc WWv Dd" to its calendar date.

The format is exact: four digit year, two digit veek, one digit day
(1 = Monday ... 7 = Sunday), separated by single spaces. Veek 53 is only
accepted in years that have 53 veeks.`,
	Args: cobra.ExactArgs(1),
	RunE: runVeek,
}

func init() {
	rootCmd.AddCommand(veekCmd)
}

func runVeek(cmd *cobra.Command, args []string) error {
	vd, err := veekx.ParseVeekDate(args[0])
	if err != nil {
		return reject(err, args)
	}

	d := vd.Date()
	logger.Debug("veek converted", log.Fields{"veek": vd.String(), "date": d.Format(dateLayout)})

	return output(cmd, render.NewResult("Calendar Date").
		Add("veek", vd.String()).
		Add("date", d.Format(dateLayout)).
		Add("weekday", vd.Weekday().String()).
		Add("veeks_in_year", veekx.WeeksInYear(vd.Year())))
}
