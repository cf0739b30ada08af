// Package monitor reports calibration changes made through the interactive
// demo, styled for the terminal.
package monitor

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Monitor struct {
	name  lipgloss.Style
	value lipgloss.Style
	note  lipgloss.Style
	err   lipgloss.Style
}

func New() *Monitor {
	return &Monitor{
		name:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		value: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		note:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

// Report prints a calibration value that has just changed
func (m *Monitor) Report(name string, value int) {
	fmt.Printf("%s %s\n", m.name.Render(name), m.value.Render(fmt.Sprintf("%d", value)))
}

// Toggle prints an on/off setting that has just changed
func (m *Monitor) Toggle(name string, on bool) {
	v := "off"
	if on {
		v = "on"
	}
	fmt.Printf("%s %s\n", m.name.Render(name), m.value.Render(v))
}

// Note prints a one-off message
func (m *Monitor) Note(s string) {
	fmt.Println(m.note.Render(s))
}

// Error prints an error message
func (m *Monitor) Error(err error) {
	fmt.Println(m.err.Render(fmt.Sprintf("*** %s", err)))
}
