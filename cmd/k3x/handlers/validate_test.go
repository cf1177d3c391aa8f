package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3xlab/k3x/internal/profiles"
)

func TestValidateProfile(t *testing.T) {
	buf := captureStdout(t)

	err := Validate(ValidateOptions{Profile: profiles.BondedVLAN})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Topology valid (mode: bonded-vlan, 3 nodes)")
}

func TestValidateEquivalence(t *testing.T) {
	// Every catalog preset must pass the cross-backend check, including the
	// deliberately inconsistent one: each of its nodes still renders the same
	// graph through both backends.
	for _, name := range profiles.Names() {
		t.Run(name, func(t *testing.T) {
			buf := captureStdout(t)

			err := Validate(ValidateOptions{Profile: name, Equivalence: true})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "backends equivalent")
		})
	}
}

func TestValidateUnknownProfile(t *testing.T) {
	captureStdout(t)

	err := Validate(ValidateOptions{Profile: "mesh"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "mesh"`)
}
