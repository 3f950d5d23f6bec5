package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for transforming text with stored key pairs
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService keys.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService keys.CipherService) CipherHandler {
	return &cipherHandler{cipherService: cipherService}
}

// Encrypt handles the POST request to encrypt text with a stored public key
// @Summary Encrypt text character by character
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body EncryptRequest true "Text to encrypt"
// @Success 200 {object} CipherTextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	cipherText, err := handler.cipherService.Encrypt(ctx.Request.Context(), keyID, request.PlainText)
	if err != nil {
		respondCipherError(ctx, keyID, err)
		return
	}

	ctx.JSON(http.StatusOK, CipherTextResponse{CipherText: cipherText})
}

// Decrypt handles the POST request to decrypt text with a stored private key
// @Summary Decrypt space-separated decimal ciphertext
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DecryptRequest true "Ciphertext to decrypt"
// @Success 200 {object} PlainTextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	plainText, err := handler.cipherService.Decrypt(ctx.Request.Context(), keyID, request.CipherText)
	if err != nil {
		respondCipherError(ctx, keyID, err)
		return
	}

	ctx.JSON(http.StatusOK, PlainTextResponse{PlainText: plainText})
}

func respondCipherError(ctx *gin.Context, keyID string, err error) {
	switch {
	case errors.Is(err, cryptography.ErrMalformedCiphertext), errors.Is(err, cryptography.ErrCodePointOutOfRange):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	default:
		respondLookupError(ctx, keyID, err)
	}
}
