package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/veeks/foundation/core/log"
	"github.com/msto63/veeks/foundation/utils/veekx"
	"github.com/msto63/veeks/internal/render"
)

var millisCmd = &cobra.Command{
	Use:   "millis [HH:MM[:SS[.fff]]]",
	Short: "Converts a time of day to millis-of-day",
	Long: `Converts a time of day to the milliseconds elapsed since midnight.

Without an argument the current time is converted. The result is rounded
to a whole millisecond.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMillis,
}

func init() {
	rootCmd.AddCommand(millisCmd)
}

func runMillis(cmd *cobra.Command, args []string) error {
	tod := veekx.TimeOfDayOf(clock())
	if len(args) == 1 {
		parsed, err := veekx.ParseTimeOfDay(args[0])
		if err != nil {
			return reject(err, args)
		}
		tod = parsed
	}

	millis := veekx.FormatTimeMillis(tod, withUnit)
	logger.Debug("time converted", log.Fields{"time": tod.String(), "millis": millis})

	return output(cmd, render.NewResult("Millis-of-Day").
		Add("time", tod.String()).
		Add("millis", millis))
}
