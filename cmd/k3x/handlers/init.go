package handlers

import (
	"context"
	"fmt"

	"github.com/k3xlab/k3x/internal/config/wizard"
)

// Factory function variables for init - replaced in tests.
var (
	runWizard   = wizard.Run
	writeConfig = wizard.Write
)

// Init runs the interactive wizard and writes the resulting configuration.
func Init(ctx context.Context, advanced, force bool, output string) error {
	result, err := runWizard(ctx, advanced)
	if err != nil {
		return fmt.Errorf("wizard aborted: %w", err)
	}

	cfg := result.ToConfig()
	if err := cfg.ApplyDefaults(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}

	if err := writeConfig(cfg, output, force); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s\n", output)
	fmt.Fprintf(stdout, "Next: review the file, then run 'k3x validate --equivalence'\n")
	return nil
}
