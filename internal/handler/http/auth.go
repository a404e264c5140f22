package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/ANDREYDEN/acacio-sub000/internal/handler/http/response"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/jwt"
)

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService      jwt.Service
	dashboardAPIKey string
}

func NewAuthHandler(jwtService jwt.Service, dashboardAPIKey string) AuthHandler {
	return &authHandlerImpl{jwtService: jwtService, dashboardAPIKey: dashboardAPIKey}
}

type issueTokenRequest struct {
	APIKey string `json:"api_key"`
}

type issueTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// IssueToken exchanges the dashboard's configured API key for a session
// token. User management proper lives outside this service.
func (h *authHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.dashboardAPIKey)) != 1 {
		response.Unauthorized(w, "Invalid API key")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken("dashboard")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, issueTokenResponse{AccessToken: token, ExpiresAt: expiresAt})
}
