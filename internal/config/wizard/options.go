package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/k3xlab/k3x/internal/profiles"
)

// ProfileOptions converts the catalog into huh select options.
func ProfileOptions() []huh.Option[string] {
	descs := profiles.Describe()
	opts := make([]huh.Option[string], 0, len(descs))
	for _, d := range descs {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", d.Name, d.Summary), d.Name))
	}
	return opts
}
