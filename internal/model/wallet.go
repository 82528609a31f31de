package model

// KeyFile represents .vkey file structure
type KeyFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 32 bytes secp256k1 scalar (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}

// GenerateResponse represents response for POST /wallet/generate
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}

// WalletResponse represents response for GET /wallet
type WalletResponse struct {
	Network string `json:"network"`
	Address string `json:"address"`
	QR      string `json:"qr"` // base64 PNG
}
