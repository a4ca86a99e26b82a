package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/jobmarket/internal/http/middleware"
	"github.com/nurpe/jobmarket/internal/model"
	"github.com/nurpe/jobmarket/internal/service"
)

// Business-rule outcomes are reported with success status and these exact
// message bodies; callers branch on content, not status code.
const (
	msgUpdateSuccessful   = "Update Successful"
	msgAlreadyPaid        = "Job has been paid already"
	msgNotEnoughBalance   = "Not enough balance to pay the job"
	msgBalanceUpdated     = "Client balance updated"
	msgUserIsContractor   = "User is a contractor"
	msgDepositCapExceeded = "Can't deposit more than 25% of unpaid jobs"
	msgNoContracts        = "No Contracts found"
	msgNoUnpaidJobs       = "No Unpaid Jobs found"
)

type Handler struct {
	contracts *service.ContractService
	billing   *service.BillingService
	reports   *service.ReportService
	log       zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	billing *service.BillingService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{contracts: contracts, billing: billing, reports: reports, log: log}
}

func (h *Handler) Register(router *gin.Engine, profileMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(profileMiddleware)
	protected.GET("/contracts/:id", h.getContract)
	protected.GET("/contracts", h.listContracts)
	protected.GET("/jobs/unpaid", h.listUnpaidJobs)
	protected.POST("/jobs/:job_id/pay", h.payJob)
	protected.GET("/jobs/:job_id/receipt", h.jobReceipt)
	protected.POST("/balances/deposit/:userId", h.deposit)
	protected.GET("/admin/best-profession", h.bestProfession)
	protected.GET("/admin/best-clients", h.bestClients)
	protected.GET("/admin/earnings/export", h.exportEarnings)
}

func (h *Handler) getContract(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	contract, err := h.contracts.GetContract(c.Request.Context(), caller, contractID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) listContracts(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	contracts, err := h.contracts.ListContracts(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(contracts) == 0 {
		c.JSON(http.StatusOK, msgNoContracts)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) listUnpaidJobs(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	jobs, err := h.contracts.ListUnpaidJobs(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusOK, msgNoUnpaidJobs)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *Handler) payJob(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	outcome, err := h.billing.PayJob(c.Request.Context(), caller, jobID)
	if err != nil {
		if isDomainErr(err) {
			h.handleError(c, err)
			return
		}
		// Commit failures surface as-is to the caller.
		h.log.Error().Err(err).Str("job_id", jobID.String()).Msg("pay job failed")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	switch outcome {
	case model.PayOutcomeAlreadyPaid:
		c.JSON(http.StatusOK, msgAlreadyPaid)
	case model.PayOutcomeInsufficientBalance:
		c.JSON(http.StatusOK, msgNotEnoughBalance)
	default:
		c.String(http.StatusOK, msgUpdateSuccessful)
	}
}

type depositRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *Handler) deposit(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.billing.Deposit(c.Request.Context(), caller, targetID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	switch outcome {
	case model.DepositOutcomeContractor:
		c.JSON(http.StatusOK, msgUserIsContractor)
	case model.DepositOutcomeCapExceeded:
		c.JSON(http.StatusOK, msgDepositCapExceeded)
	default:
		c.String(http.StatusOK, msgBalanceUpdated)
	}
}

func (h *Handler) jobReceipt(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	result, err := h.billing.Receipt(c.Request.Context(), caller, jobID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) bestProfession(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}

	row, err := h.reports.BestProfession(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) bestClients(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}

	row, err := h.reports.BestClient(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) exportEarnings(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}

	result, err := h.reports.ExportEarnings(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func isDomainErr(err error) bool {
	return errors.Is(err, service.ErrNotFound) ||
		errors.Is(err, service.ErrPermissionDenied) ||
		errors.Is(err, service.ErrInvalidInput)
}

func parsePeriod(c *gin.Context) (*time.Time, *time.Time, error) {
	from, err := parseDateParam(c.Query("start"))
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDateParam(c.Query("end"))
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDateParam(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, service.ErrInvalidInput
}
