package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/veeks/foundation/core/log"
	"github.com/msto63/veeks/foundation/utils/veekx"
	"github.com/msto63/veeks/internal/render"
)

var timeCmd = &cobra.Command{
	Use:   "time <millis>",
	Short: "Converts millis-of-day to a time of day",
	Long: `Converts milliseconds since midnight to a time of day.

The value may carry the "md" suffix. It is rounded half away from zero and
must then lie in [0, 86399999].`,
	Args: cobra.ExactArgs(1),
	RunE: runTime,
}

func init() {
	rootCmd.AddCommand(timeCmd)
}

func runTime(cmd *cobra.Command, args []string) error {
	millis, err := veekx.ParseMillis(args[0])
	if err != nil {
		return reject(err, args)
	}
	tod, err := veekx.MillisToTime(millis)
	if err != nil {
		return reject(err, args)
	}

	logger.Debug("millis converted", log.Fields{"millis": millis, "time": tod.String()})

	return output(cmd, render.NewResult("Time of Day").
		Add("millis", veekx.FormatMillis(millis, withUnit)).
		Add("time", tod.String()))
}
