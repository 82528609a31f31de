package client

// vestingABI is the subset of the vesting contract the panel calls.
//
//	addBeneficiary(address,uint8,uint256)
//	claimTokens()
//	startVesting()
//	getBeneficiaryDetails(address) -> (uint256,uint256,uint8)
//	startTimestamp() -> uint256
//	vestingStarted() -> bool
const vestingABI = `[
	{
		"type": "function",
		"name": "addBeneficiary",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "beneficiary", "type": "address"},
			{"name": "role", "type": "uint8"},
			{"name": "allocation", "type": "uint256"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "claimTokens",
		"stateMutability": "nonpayable",
		"inputs": [],
		"outputs": []
	},
	{
		"type": "function",
		"name": "startVesting",
		"stateMutability": "nonpayable",
		"inputs": [],
		"outputs": []
	},
	{
		"type": "function",
		"name": "getBeneficiaryDetails",
		"stateMutability": "view",
		"inputs": [{"name": "beneficiary", "type": "address"}],
		"outputs": [
			{"name": "allocation", "type": "uint256"},
			{"name": "claimed", "type": "uint256"},
			{"name": "role", "type": "uint8"}
		]
	},
	{
		"type": "function",
		"name": "startTimestamp",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "vestingStarted",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "bool"}]
	}
]`
