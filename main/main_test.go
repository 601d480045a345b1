package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModeName(t *testing.T) {
	table := []struct {
		generate, example, plot string
		mode                    string
		ok                      bool
	}{
		{"", "", "", "", false},
		{"cfg.ini", "", "", "Generate", true},
		{"", "Neutrons", "", "ExampleConfig", true},
		{"", "", "plots", "Plot", true},
		{"cfg.ini", "", "plots", "", false},
	}

	for i, test := range table {
		vars := map[string]*string{
			"Generate":      &test.generate,
			"ExampleConfig": &test.example,
			"Plot":          &test.plot,
		}
		mode, err := getModeName(vars)
		if (err == nil) != test.ok || mode != test.mode {
			t.Errorf("%d) expected mode '%s' (ok = %v), got '%s' (%v)",
				i+1, test.mode, test.ok, mode, err)
		}
	}
}

func TestExampleNames(t *testing.T) {
	assert.Equal(t,
		"'Neutrons', 'Protons', 'SingleNeutron', 'SingleProton', 'Spectators'",
		exampleNames(),
	)
}
