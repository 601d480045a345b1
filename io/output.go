package io

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/spectators"
)

// Event is one document of an event stream.
type Event struct {
	Header          spectators.EventHeader    `yaml:"header"`
	ImpactParameter float64                   `yaml:"impact_parameter"`
	Particles       []spectators.HostParticle `yaml:"particles"`
}

// EventWriter writes events as a stream of YAML documents.
type EventWriter struct {
	enc    *yaml.Encoder
	closer io.Closer
	n      int
}

// NewEventWriter creates a writer which encodes events to w.
func NewEventWriter(w io.Writer) *EventWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &EventWriter{enc: enc}
}

// CreateEventWriter creates the file fname and returns a writer to it. Close
// closes the file.
func CreateEventWriter(fname string) (*EventWriter, error) {
	f, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("Could not create event file %s: %w", fname, err)
	}
	wr := NewEventWriter(f)
	wr.closer = f
	return wr, nil
}

// Write encodes a single event.
func (wr *EventWriter) Write(ev *Event) error {
	if err := wr.enc.Encode(ev); err != nil {
		return fmt.Errorf("Could not write event %d: %w", ev.Header.Event, err)
	}
	wr.n++
	return nil
}

// Events returns the number of events written so far.
func (wr *EventWriter) Events() int { return wr.n }

// Close flushes the stream and closes the underlying file, if the writer
// owns one.
func (wr *EventWriter) Close() error {
	err := wr.enc.Close()
	if wr.closer != nil {
		if cerr := wr.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// ReadEvents decodes every event in a stream.
func ReadEvents(r io.Reader) ([]Event, error) {
	dec := yaml.NewDecoder(r)
	events := []Event{}
	for {
		ev := Event{}
		err := dec.Decode(&ev)
		if err == io.EOF {
			return events, nil
		} else if err != nil {
			return nil, fmt.Errorf("Could not read event %d: %w",
				len(events), err)
		}
		events = append(events, ev)
	}
}
