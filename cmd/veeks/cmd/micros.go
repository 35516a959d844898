package cmd

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
	"github.com/msto63/veeks/foundation/core/log"
	"github.com/msto63/veeks/foundation/utils/veekx"
	"github.com/msto63/veeks/internal/render"
)

var microsCmd = &cobra.Command{
	Use:   "micros <seconds>",
	Short: "Converts seconds-of-day to micros-of-day",
	Args:  cobra.ExactArgs(1),
	RunE:  runMicros,
}

var secondsCmd = &cobra.Command{
	Use:   "seconds <micros>",
	Short: "Converts micros-of-day to seconds-of-day",
	Long: `Converts micros-of-day back to seconds-of-day.

The value may carry the "μd" or "ud" suffix.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeconds,
}

func init() {
	rootCmd.AddCommand(microsCmd)
	rootCmd.AddCommand(secondsCmd)
}

func runMicros(cmd *cobra.Command, args []string) error {
	seconds, err := parseSeconds(args[0])
	if err != nil {
		return reject(err, args)
	}

	micros := veekx.SecondsToMicros(seconds)
	logger.Debug("seconds converted", log.Fields{"seconds": seconds, "micros": micros})

	result := render.NewResult("Micros-of-Day").
		Add("seconds", formatFloat(seconds)).
		Add("micros", veekx.FormatMicros(micros, withUnit))
	if tod, ok := veekx.MicrosToTimeOpt(micros); ok {
		result.Add("time", tod.String())
	}
	return output(cmd, result)
}

func runSeconds(cmd *cobra.Command, args []string) error {
	micros, err := veekx.ParseMicros(args[0])
	if err != nil {
		return reject(err, args)
	}

	seconds := veekx.MicrosToSeconds(micros)
	logger.Debug("micros converted", log.Fields{"micros": micros, "seconds": seconds})

	return output(cmd, render.NewResult("Seconds-of-Day").
		Add("micros", formatFloat(micros)).
		Add("seconds", formatFloat(seconds)))
}

// parseSeconds accepts any finite decimal number
func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, mdwerror.Newf("invalid seconds %q, expected a finite decimal number", s).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("cmd.parseSeconds").
			WithDetail("input", s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
