package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConnect(t *testing.T) {
	var s PanelState

	failed := s.Apply(ActionResult{Action: ActionConnect, Kind: KindProviderAbsent})
	assert.False(t, failed.Connection.Connected)
	require.NotNil(t, failed.LastResult)
	assert.Equal(t, KindProviderAbsent, failed.LastResult.Kind)

	ok := s.Apply(ActionResult{
		Action:     ActionConnect,
		OK:         true,
		Connection: &Connection{Address: "0xABC", ChainID: 1, Connected: true},
	})
	assert.True(t, ok.Connection.Connected)
	assert.Equal(t, "0xABC", ok.Connection.Address)
	assert.False(t, s.Connection.Connected, "Apply must not mutate the receiver")
}

func TestApplyDetailsMarksStaleOnFailure(t *testing.T) {
	var s PanelState
	s = s.Apply(ActionResult{
		Action:  ActionGetDetails,
		OK:      true,
		Details: &BeneficiaryDetails{Allocation: "100.5", Claimed: "0.0", Role: RolePartner},
	})
	require.NotNil(t, s.Details)
	assert.False(t, s.DetailsStale)

	s = s.Apply(ActionResult{Action: ActionGetDetails, Kind: KindCallFailed})
	require.NotNil(t, s.Details)
	assert.Equal(t, "100.5", s.Details.Allocation)
	assert.True(t, s.DetailsStale)

	s = s.Apply(ActionResult{
		Action:  ActionGetDetails,
		OK:      true,
		Details: &BeneficiaryDetails{Allocation: "1.0", Claimed: "0.0"},
	})
	assert.False(t, s.DetailsStale)
	assert.Equal(t, "1.0", s.Details.Allocation)
}

func TestApplyStartVestingKeepsConfirmedWrite(t *testing.T) {
	var s PanelState
	s = s.Apply(ActionResult{
		Action:  ActionStartVesting,
		OK:      true,
		TxHash:  "0x01",
		Warning: "status read failed",
		Status:  &VestingStatus{Started: true},
	})
	require.NotNil(t, s.Vesting)
	assert.True(t, s.Vesting.Started)
	assert.Zero(t, s.Vesting.StartTimestamp)
	assert.True(t, s.LastResult.OK)
}

func TestPanelStateJSON(t *testing.T) {
	s := PanelState{
		Connection: Connection{Address: "0xABC", ChainID: 5, Connected: true},
		Input:      BeneficiaryInput{Address: "0xDEF", Amount: "100.5", Role: RoleTeam},
	}
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back PanelState
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s, back)
}
