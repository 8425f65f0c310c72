package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/internal/models"
)

// CompanyHandler serves the company endpoints.
type CompanyHandler struct {
	companyService core.CompanyService
	logger         *zap.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(cs core.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companyService: cs, logger: logger}
}

// CreateCompany handles POST /create-company
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req models.CreateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errCreateCompany)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: company, Message: msgCompanyCreated})
}

// ListCompanies handles GET /get-company
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetch)
		return
	}
	if len(companies) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNoCompanies})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: companies, Message: msgFetched})
}

// GetCompany handles GET /getOne-company/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errQueryCompany)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: company, Message: msgFetched})
}

// UpdateCompany handles POST /update-company/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req models.UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.companyService.UpdateCompany(c.Request.Context(), c.Param("id"), req); err != nil {
		mapErrorToStatus(c, h.logger, err, errUpdateCompany)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: req, Message: msgCompanyUpdated})
}

// DeleteCompany handles DELETE /delete-company/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		mapErrorToStatus(c, h.logger, err, errDeleteCompany)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: msgCompanyDeleted})
}

// SubscribeCompany handles POST /subscripe-company/:id
func (h *CompanyHandler) SubscribeCompany(c *gin.Context) {
	var req models.SubscribeCompanyRequest
	if !bindJSON(c, &req) {
		return
	}
	signed, err := h.companyService.SubscribeCompany(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errSubscribe)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: SubscriptionResponse{Token: signed}, Message: msgSubscribed})
}
