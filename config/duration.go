package config

import (
	"encoding/json"
	"strconv"
	"time"
)

// Duration is a time.Duration read from and written to JSON as a string
// such as "10s".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsedDuration, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(parsedDuration)

	return nil
}
