package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pi-verify.backend/internal/domain/entities"
	domainerrors "pi-verify.backend/internal/domain/errors"
	"pi-verify.backend/internal/interfaces/http/response"
	"pi-verify.backend/internal/usecases"
	"pi-verify.backend/pkg/logger"
	"pi-verify.backend/pkg/utils"
)

type verificationService interface {
	VerifyBusiness(ctx context.Context, input *entities.VerifyBusinessInput) (*entities.BusinessVerification, error)
	GetVerification(ctx context.Context, walletAddress string) (*entities.BusinessVerification, error)
	ListVerifications(ctx context.Context, page, limit int) ([]*entities.BusinessVerification, utils.PaginationMeta, error)
}

// VerificationHandler handles business verification endpoints
type VerificationHandler struct {
	verificationUsecase verificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// VerifyBusiness verifies a business wallet and persists the verdict
// POST /api/v1/verify-business
func (h *VerificationHandler) VerifyBusiness(c *gin.Context) {
	var input entities.VerifyBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request body"))
		return
	}

	verification, err := h.verificationUsecase.VerifyBusiness(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "business verification failed")
		return
	}

	logger.Info(c.Request.Context(), "business verification stored",
		zap.String("wallet_address", verification.WalletAddress),
		zap.String("status", string(verification.Status)),
	)
	response.Success(c, http.StatusOK, verification)
}

// GetVerification returns the stored verification for a wallet
// GET /api/v1/verifications/:walletAddress
func (h *VerificationHandler) GetVerification(c *gin.Context) {
	verification, err := h.verificationUsecase.GetVerification(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		h.respondError(c, err, "verification lookup failed")
		return
	}

	response.Success(c, http.StatusOK, verification)
}

// ListVerifications returns a page of stored verifications
// GET /api/v1/verifications?page=&limit=
func (h *VerificationHandler) ListVerifications(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid pagination parameters"))
		return
	}

	verifications, meta, err := h.verificationUsecase.ListVerifications(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		h.respondError(c, err, "verification list failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"verifications": verifications,
		"pagination":    meta,
	})
}

// respondError logs full detail for operators and sends the envelope. The
// caller only ever sees the AppError message, never driver errors.
func (h *VerificationHandler) respondError(c *gin.Context, err error, msg string) {
	logger.Error(c.Request.Context(), msg, zap.Error(err))
	response.Error(c, err)
}
