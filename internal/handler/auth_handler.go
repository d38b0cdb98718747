package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/invoicegen/invoice-generator-service/internal/service"
)

// TokenRequest represents a token issuance request
type TokenRequest struct {
	Subject string `json:"subject"`
}

// AuthHandler handles token issuance. Tokens are optional; no invoice route
// enforces them.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/auth/token", h.IssueToken)
}

// IssueToken handles the POST /v1/auth/token endpoint
// @Summary Issue an access token
// @Description Issue a signed JWT for the given subject
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handler.TokenRequest true "Token request"
// @Success 200 {object} service.Token "Issued token"
// @Failure 400 {object} model.ErrorResponse "Missing subject"
// @Failure 500 {object} model.ErrorResponse "Signing failure"
// @Router /v1/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	if req.Subject == "" {
		respondBadRequest(c, "Subject is required", newErrorDetail("subject", "Subject is required"))
		return
	}

	token, err := h.authService.GenerateToken(req.Subject)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, token)
}
