package cmd

import (
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
	"github.com/msto63/veeks/foundation/core/log"
	"github.com/msto63/veeks/foundation/utils/veekx"
	"github.com/msto63/veeks/internal/render"
)

// dateLayout is the calendar date format accepted and printed by the CLI
const dateLayout = "2006-01-02"

var dateCmd = &cobra.Command{
	Use:   "date [YYYY-MM-DD]",
	Short: "Converts a calendar date to a veek-date",
	Long: `Converts a calendar date to its veek-date "YYYYc WWv Dd".

Without an argument today's date is converted. The veek-year is the ISO
week-year, so dates around New Year can belong to the neighbouring year.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDate,
}

func init() {
	rootCmd.AddCommand(dateCmd)
}

func runDate(cmd *cobra.Command, args []string) error {
	d := clock()
	if len(args) == 1 {
		parsed, err := parseCalendarDate(args[0])
		if err != nil {
			return reject(err, args)
		}
		d = parsed
	}

	veek := veekx.DateToVeekDate(d)
	logger.Debug("date converted", log.Fields{"date": d.Format(dateLayout), "veek": veek})

	return output(cmd, render.NewResult("Veek-Date").
		Add("date", d.Format(dateLayout)).
		Add("veek", veek).
		Add("weekday", d.Weekday().String()))
}

// parseCalendarDate parses YYYY-MM-DD within the four digit year range
func parseCalendarDate(s string) (time.Time, error) {
	const op = "cmd.parseCalendarDate"
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, mdwerror.Wrap(err, "invalid date, expected YYYY-MM-DD").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation(op).
			WithDetail("input", s)
	}
	if d.Year() < veekx.MinYear || d.Year() > veekx.MaxYear {
		return time.Time{}, mdwerror.Newf("year %d out of range [%d, %d]", d.Year(), veekx.MinYear, veekx.MaxYear).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(op).
			WithDetail("input", s)
	}
	return d, nil
}
