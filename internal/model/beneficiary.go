package model

// BeneficiaryInput is the form state: what the user typed and selected.
type BeneficiaryInput struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Role    Role   `json:"role"`
}

// BeneficiaryDetails is the decoded result of getBeneficiaryDetails.
type BeneficiaryDetails struct {
	Address    string `json:"address"`
	Allocation string `json:"allocation"`
	Claimed    string `json:"claimed"`
	Role       Role   `json:"role"`
	RoleName   string `json:"roleName"`
}

// AddBeneficiaryRequest represents request for POST /vesting/beneficiary.
// All fields are required.
type AddBeneficiaryRequest struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Role    string `json:"role"` // index "0".."2" or name
}

// VestingStatus mirrors startTimestamp() and vestingStarted().
// StartTimestamp is zero when it could not be read.
type VestingStatus struct {
	StartTimestamp int64 `json:"startTimestamp"`
	Started        bool  `json:"started"`
	ElapsedSeconds int64 `json:"elapsedSeconds"`
}

// Connection is the serializable part of a wallet connection.
type Connection struct {
	Address   string `json:"address"`
	ChainID   int64  `json:"chainId"`
	Connected bool   `json:"connected"`
}
