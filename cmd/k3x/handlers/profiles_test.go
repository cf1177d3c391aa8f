package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3xlab/k3x/internal/profiles"
)

func TestProfilesList(t *testing.T) {
	buf := captureStdout(t)

	require.NoError(t, ProfilesList())

	out := buf.String()
	for _, name := range profiles.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "mode=bonded-vlan")
	assert.Contains(t, out, "nodes=3")
}

func TestProfilesShow(t *testing.T) {
	buf := captureStdout(t)

	require.NoError(t, ProfilesShow(profiles.VLAN))

	out := buf.String()
	assert.Contains(t, out, "# profile: vlan (mode: vlan)")
	assert.Contains(t, out, "nodes:")
	assert.Contains(t, out, "trunk: eth1")
	assert.Contains(t, out, "vlan_tags:")
}

func TestProfilesShowUnknown(t *testing.T) {
	captureStdout(t)

	err := ProfilesShow("mesh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "mesh"`)
}
