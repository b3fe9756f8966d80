package controllers

import (
	"vhts/errors"
	"vhts/response"
	"vhts/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError memetakan AppError dari service ke response HTTP
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		utils.LogError("kesalahan tak terduga: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeUserExists, errors.ErrCodeDuplicatePeriod, errors.ErrCodeDBDuplicate:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeMissingColumns, errors.ErrCodeInvalidNumber, errors.ErrCodeEmptySheet,
		errors.ErrCodeInvalidFile, errors.ErrCodeInvalidPeriod, errors.ErrCodeInvalidPolicy,
		errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidRole, errors.ErrCodeInvalidTable:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeUserNotFound, errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		utils.LogError("kesalahan service: %v", err)
		response.ServerError(c)
	}
}
