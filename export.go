package shos

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// State is the position of the body in the caller's frame after a given tick.
type State struct {
	Tick int
	X, Y float64
}

// ToCSV returns the CSV record of this state.
func (s State) ToCSV() []string {
	return []string{strconv.Itoa(s.Tick), strconv.FormatFloat(s.X, 'f', 6, 64), strconv.FormatFloat(s.Y, 'f', 6, 64)}
}

// ExportConfig configures the export of the states.
type ExportConfig struct {
	Filename string
}

// IsUseless returns whether nothing would be exported.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

// StreamStates writes the states received on the channel as CSV until the channel is closed.
// The channel is always drained, even after a write error.
func StreamStates(w io.Writer, states <-chan State) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"tick", "x", "y"}); err != nil {
		for range states {
		}
		return err
	}
	for state := range states {
		if err != nil {
			continue
		}
		err = cw.Write(state.ToCSV())
	}
	cw.Flush()
	if err == nil {
		err = cw.Error()
	}
	return err
}

// streamToFile creates the export file and streams the states to it.
func streamToFile(conf ExportConfig, states <-chan State) error {
	f, err := os.Create(conf.Filename)
	if err != nil {
		for range states {
		}
		return fmt.Errorf("could not create %s: %w", conf.Filename, err)
	}
	if err = StreamStates(f, states); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
