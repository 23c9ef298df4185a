package handlers

import (
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hxudev/currency_exchange_api/internal/apperrors"
	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// Error codes of the public taxonomy.
const (
	codeValidation    = "VALIDATION_ERROR"
	codeNotFound      = "NOT_FOUND"
	codeRouteNotFound = "ROUTE_NOT_FOUND"
	codeDuplicate     = "DUPLICATE_ENTRY"
	codeForeignKey    = "FOREIGN_KEY_CONSTRAINT"
	codeReferenced    = "REFERENCED_DATA"
	codeDataTooLong   = "DATA_TOO_LONG"
	codeNullValue     = "NULL_VALUE_ERROR"
	codeDBConnection  = "DATABASE_CONNECTION_ERROR"
	codeUnauthorized  = "UNAUTHORIZED"
	codeInternal      = "INTERNAL_ERROR"
)

// exposeErrorDetail controls whether unclassified errors echo their message.
// Set once at route registration; true outside production.
var exposeErrorDetail bool

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.APIResponse{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, dto.APIResponse{Success: true, Data: data, Message: message})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.APIResponse{Success: true, Message: message})
}

func respondErrorCode(c *gin.Context, status int, message, code string) {
	c.JSON(status, dto.APIResponse{Success: false, Message: message, ErrorCode: code})
}

func respondValidationDetails(c *gin.Context, details []dto.ValidationErrorDetail) {
	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Success:   false,
		Message:   "Input validation failed",
		ErrorCode: codeValidation,
		Details:   details,
	})
}

// respondError classifies a propagated error into the HTTP taxonomy. Domain
// sentinels are checked first, then database error codes, then connectivity.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondErrorCode(c, http.StatusBadRequest, err.Error(), codeValidation)
	case errors.Is(err, apperrors.ErrNotFound):
		respondErrorCode(c, http.StatusNotFound, "Resource not found", codeNotFound)
	case errors.Is(err, apperrors.ErrDuplicate):
		respondErrorCode(c, http.StatusConflict, "Data already exists and cannot be created again", codeDuplicate)
	case errors.Is(err, apperrors.ErrReferenced):
		respondErrorCode(c, http.StatusBadRequest, "Data is still in use and cannot be deleted", codeReferenced)
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondErrorCode(c, http.StatusUnauthorized, "Invalid credentials", codeUnauthorized)
	default:
		respondStorageError(c, err)
	}
}

// respondStorageError maps Postgres SQLSTATE and connectivity failures.
func respondStorageError(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			respondErrorCode(c, http.StatusConflict, "Data already exists and cannot be created again", codeDuplicate)
			return
		case "23503":
			respondErrorCode(c, http.StatusBadRequest, "Referenced data does not exist", codeForeignKey)
			return
		case "22001":
			respondErrorCode(c, http.StatusBadRequest, "Data exceeds the column length limit", codeDataTooLong)
			return
		case "23502":
			respondErrorCode(c, http.StatusBadRequest, "Required field must not be null", codeNullValue)
			return
		}
	}

	if isConnectionError(err) {
		respondErrorCode(c, http.StatusServiceUnavailable, "Database connection failed", codeDBConnection)
		return
	}

	message := "Internal server error"
	if exposeErrorDetail {
		message = err.Error()
	}
	respondErrorCode(c, http.StatusInternalServerError, message, codeInternal)
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
