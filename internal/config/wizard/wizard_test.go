package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3xlab/k3x/internal/config"
	"github.com/k3xlab/k3x/internal/profiles"
)

func TestValidateClusterName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid simple", input: "dev"},
		{name: "valid with hyphens", input: "my-test-cluster"},
		{name: "single character", input: "a"},
		{name: "empty", input: "", wantErr: errClusterNameRequired},
		{name: "whitespace only", input: "   ", wantErr: errClusterNameRequired},
		{name: "uppercase", input: "Dev", wantErr: errClusterNameInvalid},
		{name: "leading hyphen", input: "-dev", wantErr: errClusterNameInvalid},
		{name: "trailing hyphen", input: "dev-", wantErr: errClusterNameInvalid},
		{name: "too long", input: strings.Repeat("a", 33), wantErr: errClusterNameInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateClusterName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateVersion(t *testing.T) {
	assert.NoError(t, validateVersion(""))
	assert.NoError(t, validateVersion("v1.30.2+k3s1"))
	assert.ErrorIs(t, validateVersion("1.30.2"), errVersionInvalid)
}

func TestValidateOptionalCIDR(t *testing.T) {
	assert.NoError(t, validateOptionalCIDR(""))
	assert.NoError(t, validateOptionalCIDR("10.0.0.0/16"))
	assert.ErrorIs(t, validateOptionalCIDR("10.0.0.0"), errCIDRInvalid)
}

func TestProfileOptions(t *testing.T) {
	opts := ProfileOptions()
	require.Len(t, opts, len(profiles.Names()))

	// Option values are the raw preset names; labels carry the summary.
	assert.Equal(t, profiles.BondedVLAN, opts[0].Value)
	assert.Contains(t, opts[0].Key, profiles.BondedVLAN)
}

func TestToConfig(t *testing.T) {
	r := &Result{
		ClusterName: "dev",
		Profile:     profiles.VLAN,
		K3sVersion:  "v1.30.2+k3s1",
	}

	cfg := r.ToConfig()
	assert.Equal(t, "dev", cfg.ClusterName)
	assert.Equal(t, profiles.VLAN, cfg.Profile)
	assert.Equal(t, "v1.30.2+k3s1", cfg.K3s.Version)
	assert.Empty(t, cfg.Network.IPv4CIDR)
}

func TestToConfigAdvanced(t *testing.T) {
	r := &Result{
		ClusterName: "dev",
		Profile:     profiles.Flat,
		Advanced: &AdvancedOptions{
			BaseCIDR: "10.0.0.0/16",
			PodCIDR:  "10.42.0.0/16",
		},
	}

	cfg := r.ToConfig()
	assert.Equal(t, "10.0.0.0/16", cfg.Network.IPv4CIDR)
	assert.Equal(t, "10.42.0.0/16", cfg.Network.PodIPv4CIDR)
	assert.Empty(t, cfg.Network.ServiceIPv4CIDR)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k3x.yaml")
	cfg := &config.Config{ClusterName: "dev", Profile: profiles.Flat}

	require.NoError(t, Write(cfg, path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# k3x cluster configuration"))

	// The written file loads back cleanly.
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", loaded.ClusterName)
	assert.Equal(t, profiles.Flat, loaded.Profile)
}

func TestWriteRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k3x.yaml")
	cfg := &config.Config{ClusterName: "dev", Profile: profiles.Flat}

	require.NoError(t, Write(cfg, path, false))

	err := Write(cfg, path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.NoError(t, Write(cfg, path, true))
}
