package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3xlab/k3x/internal/config"
	"github.com/k3xlab/k3x/internal/config/wizard"
	"github.com/k3xlab/k3x/internal/profiles"
)

func TestInit(t *testing.T) {
	buf := captureStdout(t)

	origRun, origWrite := runWizard, writeConfig
	t.Cleanup(func() { runWizard, writeConfig = origRun, origWrite })

	runWizard = func(ctx context.Context, advanced bool) (*wizard.Result, error) {
		assert.True(t, advanced)
		return &wizard.Result{
			ClusterName: "dev",
			Profile:     profiles.VLAN,
			Advanced:    &wizard.AdvancedOptions{BaseCIDR: "10.0.0.0/16"},
		}, nil
	}

	var written *config.Config
	writeConfig = func(cfg *config.Config, path string, force bool) error {
		written = cfg
		assert.Equal(t, "k3x.yaml", path)
		assert.False(t, force)
		return nil
	}

	err := Init(context.Background(), true, false, "k3x.yaml")
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.Equal(t, "dev", written.ClusterName)
	assert.Equal(t, profiles.VLAN, written.Profile)
	// Defaults ran before the write: subnets derived from the base CIDR.
	assert.Equal(t, "10.0.128.0/17", written.Network.PodIPv4CIDR)
	assert.Equal(t, "10.0.96.0/19", written.Network.ServiceIPv4CIDR)

	assert.Contains(t, buf.String(), "Wrote k3x.yaml")
}

func TestInitWizardAborted(t *testing.T) {
	captureStdout(t)

	origRun := runWizard
	t.Cleanup(func() { runWizard = origRun })
	runWizard = func(ctx context.Context, advanced bool) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), false, false, "k3x.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard aborted")
}

func TestInitInvalidWizardResult(t *testing.T) {
	captureStdout(t)

	origRun, origWrite := runWizard, writeConfig
	t.Cleanup(func() { runWizard, writeConfig = origRun, origWrite })

	runWizard = func(ctx context.Context, advanced bool) (*wizard.Result, error) {
		return &wizard.Result{ClusterName: "Not Valid", Profile: profiles.Flat}, nil
	}
	writeConfig = func(cfg *config.Config, path string, force bool) error {
		t.Fatal("invalid config must not be written")
		return nil
	}

	err := Init(context.Background(), false, false, "k3x.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generated configuration is invalid")
}
