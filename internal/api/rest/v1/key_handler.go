package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	GetPrivateKeyByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type keyHandler struct {
	keyPairGenerationService keys.KeyPairGenerationService
	keyPairMetadataService   keys.KeyPairMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairGenerationService keys.KeyPairGenerationService, keyPairMetadataService keys.KeyPairMetadataService) KeyHandler {
	return &keyHandler{
		keyPairGenerationService: keyPairGenerationService,
		keyPairMetadataService:   keyPairMetadataService,
	}
}

// Generate handles the POST request to generate and store a key pair
// @Summary Generate a textbook RSA key pair
// @Description Generate a key pair whose primes have the requested bit length and store it.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyPairRequest true "Key generation parameters"
// @Success 201 {object} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	meta, err := handler.keyPairGenerationService.Generate(ctx.Request.Context(), request.BitLength)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error generating key pair: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newKeyPairMetaResponse(meta))
}

// ListMetadata handles the GET request to list stored key pairs
// @Summary List stored key pairs
// @Description Fetch stored key pairs filtered by bit length and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param bitLength query int false "Prime bit length"
// @Param dateTimeCreated query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by date_time_created, bit_length or id"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	ints := map[string]*int{
		"bitLength": &query.BitLength,
		"limit":     &query.Limit,
		"offset":    &query.Offset,
	}
	for name, target := range ints {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("query parameter %s must be an integer", name)})
			return
		}
		*target = v
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "query parameter dateTimeCreated must be RFC3339"})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	keyPairs, err := handler.keyPairMetadataService.List(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := []KeyPairMetaResponse{}
	for _, keyPair := range keyPairs {
		listResponse = append(listResponse, newKeyPairMetaResponse(keyPair))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve a stored public key by ID
// @Summary Retrieve a stored key pair by ID
// @Description Fetch the public exponent, modulus and fingerprint of a stored key pair.
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} KeyPairMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	meta, err := handler.keyPairMetadataService.GetByID(ctx.Request.Context(), keyID)
	if err != nil {
		respondLookupError(ctx, keyID, err)
		return
	}

	ctx.JSON(http.StatusOK, newKeyPairMetaResponse(meta))
}

// GetPrivateKeyByID handles the GET request to retrieve the private half of a key pair
// @Summary Retrieve the private key of a stored key pair
// @Description Fetch the private exponent and modulus of a stored key pair.
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} PrivateKeyResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/private [get]
func (handler *keyHandler) GetPrivateKeyByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	meta, err := handler.keyPairMetadataService.GetByID(ctx.Request.Context(), keyID)
	if err != nil {
		respondLookupError(ctx, keyID, err)
		return
	}

	ctx.JSON(http.StatusOK, PrivateKeyResponse{
		ID:              meta.ID,
		PrivateExponent: meta.KeyPair.PrivateExponent.String(),
		Modulus:         meta.KeyPair.Modulus.String(),
	})
}

// DeleteByID handles the DELETE request to delete a key pair by ID
// @Summary Delete a stored key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyPairMetadataService.DeleteByID(ctx.Request.Context(), keyID); err != nil {
		respondLookupError(ctx, keyID, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func respondLookupError(ctx *gin.Context, keyID string, err error) {
	if errors.Is(err, keys.ErrKeyPairNotFound) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key pair with id %s not found", keyID)})
		return
	}
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
}
