package model

import "time"

// Action names one user-triggered panel operation.
type Action string

const (
	ActionConnect        Action = "connect"
	ActionAddBeneficiary Action = "add_beneficiary"
	ActionClaimTokens    Action = "claim_tokens"
	ActionStartVesting   Action = "start_vesting"
	ActionGetDetails     Action = "get_beneficiary_details"
	ActionRefreshStatus  Action = "refresh_status"
)

// ActionResult is returned by every panel action.
// OK reports whether the action's primary effect happened; Warning carries a
// secondary failure that did not undo it (e.g. a status read after a confirmed write).
type ActionResult struct {
	ID         string              `json:"id"`
	Action     Action              `json:"action"`
	OK         bool                `json:"ok"`
	Kind       ErrorKind           `json:"kind,omitempty"`
	Message    string              `json:"message"`
	Warning    string              `json:"warning,omitempty"`
	TxHash     string              `json:"txHash,omitempty"`
	Connection *Connection         `json:"connection,omitempty"`
	Details    *BeneficiaryDetails `json:"details,omitempty"`
	Status     *VestingStatus      `json:"status,omitempty"`
	FinishedAt time.Time           `json:"finishedAt"`
}
