package request

// LoginRequest carries the plaintext credential pair checked against the
// usuario table. Field names follow the store's column spellings.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"senha" binding:"required"`
}
