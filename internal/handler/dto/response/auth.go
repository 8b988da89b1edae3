package response

import "hotel-admin/internal/usecase/commands"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func FromLoginResult(r *commands.LoginResult) *TokenResponse {
	return &TokenResponse{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
	}
}
