package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/veeks/foundation/utils/veekx"
	"github.com/msto63/veeks/internal/render"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Shows the current veek-date and millis-of-day",
	Args:  cobra.NoArgs,
	RunE:  runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	now := clock()
	tod := veekx.TimeOfDayOf(now)

	return output(cmd, render.NewResult("Now").
		Add("date", now.Format(dateLayout)).
		Add("veek", veekx.DateToVeekDate(now)).
		Add("time", tod.String()).
		Add("millis", veekx.FormatTimeMillis(tod, withUnit)))
}
