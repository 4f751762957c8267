package handler

import (
	"time"

	"mintology-gateway/internal/adapter/http/dto"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// walletSessionCookie names the cookie carrying the wallet session JWT.
const walletSessionCookie = "wallet_session"

// WalletHandler handles wallet authorization endpoints.
type WalletHandler struct {
	wallets  ports.WalletAPI
	tokenSvc ports.TokenService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets ports.WalletAPI, tokenSvc ports.TokenService) *WalletHandler {
	return &WalletHandler{wallets: wallets, tokenSvc: tokenSvc}
}

// Authorize handles POST /api/v1/wallets/authorize. The wallet address
// can be given directly or resolved from a Mintable bearer token. On
// success a wallet session cookie scoped to the project is issued.
func (h *WalletHandler) Authorize(c *gin.Context) {
	var req dto.WalletAuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	address := req.WalletAddress
	if address == "" && req.MintableToken != "" {
		resolved, err := h.wallets.MintableWalletAddress(c.Request.Context(), req.MintableToken)
		if err != nil {
			response.Error(c, err)
			return
		}
		address = resolved
	}
	if address == "" {
		response.Error(c, apperror.Validation("wallet address or mintable token is required"))
		return
	}

	auth, err := h.wallets.AuthorizeWallet(c.Request.Context(), req.ProjectID, address)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, expiry, err := h.tokenSvc.GenerateWalletSession(auth.WalletAddress, auth.ProjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	maxAge := int(time.Until(expiry).Seconds())
	c.SetCookie(walletSessionCookie, session, maxAge, "/", "", false, true)

	response.OK(c, dto.WalletAuthorizeResponse{
		ProjectID:     auth.ProjectID,
		WalletAddress: auth.WalletAddress,
	})
}
