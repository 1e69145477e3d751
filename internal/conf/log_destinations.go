package conf

import (
	"fmt"
	"strings"

	"github.com/pnghide/pnghide/internal/logger"
)

// LogDestinations is the logDestinations parameter.
type LogDestinations []logger.Destination

func (d *LogDestinations) set(in []string) error {
	dests := make(LogDestinations, 0, len(in))

	for _, v := range in {
		switch v {
		case "stdout":
			dests = append(dests, logger.DestinationStdout)

		case "file":
			dests = append(dests, logger.DestinationFile)

		default:
			return fmt.Errorf("invalid log destination: '%s'", v)
		}
	}

	*d = dests
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *LogDestinations) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var in []string
	if err := unmarshal(&in); err != nil {
		return err
	}
	return d.set(in)
}

// UnmarshalEnv implements env.Unmarshaler.
func (d *LogDestinations) UnmarshalEnv(_ string, v string) error {
	return d.set(strings.Split(v, ","))
}
