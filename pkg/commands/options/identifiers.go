package options

import (
	"fmt"
	"strconv"
)

// ParseTimestamp reads an entry identifier as given on the command line.
func ParseTimestamp(arg string) (int64, error) {
	ts, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q: expected a millisecond timestamp", arg)
	}
	return ts, nil
}
