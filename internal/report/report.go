// Package report writes the outcome of a search for humans (text) or for
// other programs (json).
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/beamgridgo/internal/search"
)

// ErrUnknownFormat is returned by ForFormat for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Summary is everything a report needs about one finished search.
type Summary struct {
	Name   string
	Width  int
	Height int
	Runs   []search.Run
	Best   search.Run
	// BestMap is the rendered energized map of the best run. Empty when
	// rendering was not requested.
	BestMap string
}

// Writer renders a Summary.
type Writer interface {
	Write(w io.Writer, s Summary) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(w io.Writer, s Summary) error

// Write calls f(w, s).
func (f WriterFunc) Write(w io.Writer, s Summary) error {
	return f(w, s)
}

var writers = map[string]Writer{
	"text": WriterFunc(writeText),
	"json": WriterFunc(writeJSON),
}

// ForFormat returns the writer registered under name. An empty name selects
// text.
func ForFormat(name string) (Writer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "text"
	}
	w, ok := writers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return w, nil
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeText(w io.Writer, s Summary) error {
	var b strings.Builder
	if s.Name != "" {
		fmt.Fprintf(&b, "Contraption %s: width=%d height=%d\n", s.Name, s.Width, s.Height)
	} else {
		fmt.Fprintf(&b, "Contraption: width=%d height=%d\n", s.Width, s.Height)
	}
	b.WriteString("\nSUMMARY\n\n")
	for _, run := range s.Runs {
		fmt.Fprintf(&b, "For %s: energized tiles: %d\n", run.Start, run.Energized)
	}
	fmt.Fprintf(&b, "\nMaximum energized: %d\n", s.Best.Energized)
	if len(s.Runs) > 0 {
		fmt.Fprintf(&b, "Best start: %s\n", s.Best.Start)
	}
	if s.BestMap != "" {
		b.WriteString("\n")
		b.WriteString(s.BestMap)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type jsonRun struct {
	Index     int    `json:"index"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Heading   string `json:"heading"`
	Energized int    `json:"energized"`
}

type jsonReport struct {
	Name    string    `json:"name,omitempty"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Runs    []jsonRun `json:"runs"`
	Best    jsonRun   `json:"best"`
	BestMap []string  `json:"best_map,omitempty"`
}

func toJSONRun(r search.Run) jsonRun {
	return jsonRun{
		Index:     r.Index,
		X:         r.Start.Pos.X,
		Y:         r.Start.Pos.Y,
		Heading:   r.Start.Heading.String(),
		Energized: r.Energized,
	}
}

func writeJSON(w io.Writer, s Summary) error {
	doc := jsonReport{
		Name:   s.Name,
		Width:  s.Width,
		Height: s.Height,
		Runs:   make([]jsonRun, 0, len(s.Runs)),
		Best:   toJSONRun(s.Best),
	}
	for _, r := range s.Runs {
		doc.Runs = append(doc.Runs, toJSONRun(r))
	}
	if s.BestMap != "" {
		doc.BestMap = strings.Split(strings.TrimRight(s.BestMap, "\n"), "\n")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return nil
}
