package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3xlab/k3x/internal/topology"
)

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{BondedVLAN, DHCP, Flat, SplitVLAN, VLAN}, Names())
}

func TestDescribeCoversEveryPreset(t *testing.T) {
	descs := Describe()
	require.Len(t, descs, len(Names()))
	for _, desc := range descs {
		assert.NotEmpty(t, desc.Summary, "preset %s has no summary", desc.Name)
	}
}

func TestGetUnknownProfile(t *testing.T) {
	_, err := Get("mesh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "mesh"`)
}

func TestEveryPresetValidates(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			topo, err := Get(name)
			require.NoError(t, err)
			assert.NotEmpty(t, topo.Nodes)
			assert.NotEmpty(t, topo.ServiceEndpoint)
			assert.Equal(t, "10.42.0.0/16", topo.PodNetworkCIDR)
			assert.Equal(t, "10.43.0.0/16", topo.ServiceNetworkCIDR)
		})
	}
}

func TestPresetModes(t *testing.T) {
	tests := []struct {
		profile string
		want    topology.Mode
	}{
		{Flat, topology.ModeFlat},
		{VLAN, topology.ModeVLAN},
		{BondedVLAN, topology.ModeBondedVLAN},
		{DHCP, topology.ModeDHCPAssigned},
		{SplitVLAN, topology.ModeInconsistent},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			topo, err := Get(tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, topo.Mode())
		})
	}
}

func TestGetReturnsFreshCopies(t *testing.T) {
	first, err := Get(Flat)
	require.NoError(t, err)
	first.Nodes["server-1"][topology.RoleCluster] = "10.0.0.1"

	second, err := Get(Flat)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", second.Nodes["server-1"][topology.RoleCluster])
}

func TestSplitVLANDisagreesAcrossNodes(t *testing.T) {
	topo, err := Get(SplitVLAN)
	require.NoError(t, err)

	iface1, err := topo.InterfaceFor("server-1", topology.RoleCluster)
	require.NoError(t, err)
	iface2, err := topo.InterfaceFor("server-2", topology.RoleCluster)
	require.NoError(t, err)
	assert.NotEqual(t, iface1, iface2)
}

func TestBondedPresetPrimaryIsAMember(t *testing.T) {
	topo, err := Get(BondedVLAN)
	require.NoError(t, err)

	require.NotNil(t, topo.Bond)
	assert.Contains(t, topo.BondMembers, topo.Bond.PrimaryMember)
	assert.Equal(t, topology.BondModeActiveBackup, topo.Bond.Mode)
}
