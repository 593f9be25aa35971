// Package ui draws the viewer's side panel and overlays.
package ui

import (
	"fmt"
	"strings"

	"alife/pkg/core"
)

// PanelLines returns the text shown in the side panel: the title, loop
// counters and the simulation's parameters when it exposes them.
func PanelLines(sim core.Simulation, paused bool) []string {
	if sim == nil {
		return []string{"No simulation"}
	}
	st := sim.State()
	status := core.PhaseOf(sim).String()
	if paused {
		status = "paused"
	}
	lines := []string{
		title(sim.Name()),
		fmt.Sprintf("Step: %d", st.Step),
		fmt.Sprintf("Population: %d", st.Population()),
		fmt.Sprintf("Agents: %d", len(st.Agents)),
		"Status: " + status,
	}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, g := range provider.Parameters().Groups {
		header := g.Name
		if g.Summary != "" {
			header += " (" + g.Summary + ")"
		}
		lines = append(lines, "", header)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

func title(name string) string {
	if name == "" {
		return "Simulation"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
