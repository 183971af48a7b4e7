package handler

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/usecase"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/response"
	"kuchikomi/pkg/utils"
)

type VerificationHandler struct {
	verificationUseCase *usecase.VerificationUseCase
}

func NewVerificationHandler(verificationUseCase *usecase.VerificationUseCase) *VerificationHandler {
	return &VerificationHandler{
		verificationUseCase: verificationUseCase,
	}
}

// SubmitVerification accepts a multipart form with a "file" part plus
// product_id and verification_type fields.
func (h *VerificationHandler) SubmitVerification(c echo.Context) error {
	userID := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	verification, err := h.verificationUseCase.Submit(c.Request().Context(), userID, usecase.SubmitVerificationInput{
		ProductID:        c.FormValue("product_id"),
		VerificationType: c.FormValue("verification_type"),
		FileName:         fileHeader.Filename,
		ContentType:      fileHeader.Header.Get("Content-Type"),
		FileSize:         fileHeader.Size,
		File:             src,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, verification)
}

func (h *VerificationHandler) ListMyVerifications(c echo.Context) error {
	userID := c.Get("uid").(string)

	verifications, err := h.verificationUseCase.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, verifications)
}

func (h *VerificationHandler) ListPendingVerifications(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	verifications, total, err := h.verificationUseCase.ListPending(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, verifications, total, pagination.Page, pagination.PageSize)
}

type updateVerificationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *VerificationHandler) UpdateVerificationStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Verification ID is required", nil))
	}

	var req updateVerificationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	verification, err := h.verificationUseCase.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, verification)
}
