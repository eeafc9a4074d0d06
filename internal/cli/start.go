package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/beamgridgo/internal/config"
	"github.com/specialistvlad/beamgridgo/internal/optics"
)

// startList is a repeatable flag.Value of x,y,heading triples. A value may
// carry several triples separated by ';', which is how BEAMGRID_START lists
// more than one.
type startList struct {
	starts []config.Start
}

func (s *startList) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(s.starts))
	for i, st := range s.starts {
		parts[i] = st.Name
	}
	return strings.Join(parts, ";")
}

func (s *startList) Set(value string) error {
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st, err := ParseStart(part)
		if err != nil {
			return err
		}
		s.starts = append(s.starts, st)
	}
	return nil
}

// ParseStart parses "x,y,heading" into a start named after the input.
func ParseStart(s string) (config.Start, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return config.Start{}, fmt.Errorf("start %q: expected x,y,heading", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return config.Start{}, fmt.Errorf("start %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return config.Start{}, fmt.Errorf("start %q: bad y: %w", s, err)
	}
	heading := strings.TrimSpace(fields[2])
	if _, err := optics.ParseDirection(heading); err != nil {
		return config.Start{}, fmt.Errorf("start %q: %w", s, err)
	}
	return config.Start{Name: s, X: x, Y: y, Heading: heading}, nil
}
