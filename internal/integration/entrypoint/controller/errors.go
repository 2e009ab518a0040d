package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
)

// statusForKind maps an error kind to its HTTP status code.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindAmbiguousLink:
		return http.StatusConflict
	case domainerror.KindUnauthorized:
		return http.StatusUnauthorized
	case domainerror.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the error response for err. Uncoded errors and storage
// failures are logged and reported without internal details.
func handleError(ctx *gin.Context, err error) {
	kind := domainerror.KindOf(err)
	status := statusForKind(kind)

	var coded domainerror.Coded
	if !errors.As(err, &coded) || kind == domainerror.KindStorageFailure {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(status, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  domainerror.CodeOf(err),
		})
		return
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: coded.Error(),
		Code:  coded.ErrorCode(),
	})
}

// badRequest writes a 400 response with the given code.
func badRequest(ctx *gin.Context, msg, code string, err error) {
	response := dto.ErrorResponse{Error: msg, Code: code}
	if err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, response)
}

// parseID parses the :id path parameter. It writes a 404 with notFoundCode
// and returns false when the parameter is not a UUID.
func parseID(ctx *gin.Context, notFoundCode string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Resource not found",
			Code:  notFoundCode,
		})
		return uuid.Nil, false
	}
	return id, true
}

// sendArtifact writes a rendered file as an attachment.
func sendArtifact(ctx *gin.Context, filename, contentType string, body []byte) {
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, contentType, body)
}
