package cli

import (
	"bufio"
	"fmt"
	"great-circle-service/internal/domain"
	"great-circle-service/internal/services"
	"io"
	"strconv"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const (
	msgInvalidLatitude  = "Invalid latitude. Must be between -90 and 90 degrees."
	msgInvalidLongitude = "Invalid longitude. Must be between -180 and 180 degrees."
	msgInvalidNumber    = "Invalid input. Expected a number in decimal degrees."
	usage               = "usage: greatcircle [lat1 lon1 lat2 lon2]"
)

type prompt struct {
	field domain.Field
	text  string
}

var prompts = [4]prompt{
	{domain.FirstLatitude, "Enter latitude of first location (in decimal degrees):"},
	{domain.FirstLongitude, "Enter longitude of first location (in decimal degrees):"},
	{domain.SecondLatitude, "Enter latitude of second location (in decimal degrees):"},
	{domain.SecondLongitude, "Enter longitude of second location (in decimal degrees):"},
}

// Run computes one distance and returns the process exit code.
//
// With four positional args the values are taken from args; with none the
// user is prompted for each value on in. Every value is validated as soon as
// it is read, and the first failure aborts before any distance is computed.
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	var vals [4]float64

	switch len(args) {
	case 0:
		scanner := bufio.NewScanner(in)
		scanner.Split(bufio.ScanWords)

		for i, p := range prompts {
			fmt.Fprintln(out, p.text)
			if !scanner.Scan() {
				fmt.Fprintln(errOut, msgInvalidNumber)
				return ExitError
			}
			v, ok := readComponent(p.field, scanner.Text(), errOut)
			if !ok {
				return ExitError
			}
			vals[i] = v
		}
	case 4:
		for i, p := range prompts {
			v, ok := readComponent(p.field, args[i], errOut)
			if !ok {
				return ExitError
			}
			vals[i] = v
		}
	default:
		fmt.Fprintln(errOut, usage)
		return ExitUsage
	}

	result := services.GreatCircleDistance(vals[0], vals[1], vals[2], vals[3])
	fmt.Fprintln(out, result.String())
	return ExitOK
}

func readComponent(field domain.Field, raw string, errOut io.Writer) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(errOut, msgInvalidNumber)
		return 0, false
	}

	if err := domain.ValidateComponent(field, v); err != nil {
		if field.IsLatitude() {
			fmt.Fprintln(errOut, msgInvalidLatitude)
		} else {
			fmt.Fprintln(errOut, msgInvalidLongitude)
		}
		return 0, false
	}

	return v, true
}
