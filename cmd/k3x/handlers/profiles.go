package handlers

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/k3xlab/k3x/internal/profiles"
)

// ProfilesList prints the catalog presets with their topology mode and node
// count.
func ProfilesList() error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle().Render("  Topology profiles"))
	b.WriteString("\n")
	b.WriteString(dimStyle().Render("  " + strings.Repeat("─", 60)))
	b.WriteString("\n")

	for _, desc := range profiles.Describe() {
		topo, err := getProfile(desc.Name)
		if err != nil {
			return err
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			nameStyle().Render(fmt.Sprintf("%-12s", desc.Name)),
			dimStyle().Render(fmt.Sprintf("mode=%-13s nodes=%d", topo.Mode(), len(topo.Nodes)))))
		b.WriteString(fmt.Sprintf("    %s\n", desc.Summary))
	}

	fmt.Fprint(stdout, b.String())
	return nil
}

// ProfilesShow prints one preset's full topology as YAML.
func ProfilesShow(name string) error {
	topo, err := getProfile(name)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(topo)
	if err != nil {
		return fmt.Errorf("failed to marshal topology: %w", err)
	}

	fmt.Fprintf(stdout, "# profile: %s (mode: %s)\n%s", name, topo.Mode(), data)
	return nil
}
