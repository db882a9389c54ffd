package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alsyedgraphics/printshop-api/internal/application/service"
	"github.com/alsyedgraphics/printshop-api/internal/domain/billing"
	"github.com/alsyedgraphics/printshop-api/internal/domain/repository"
	"github.com/alsyedgraphics/printshop-api/internal/presentation/http/dto/response"
	"github.com/alsyedgraphics/printshop-api/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles listing invoices with pagination, search and an open-only
// filter
func (h *InvoiceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		OpenOnly:   c.Query("open") == "true",
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// itemRequest carries one draft line: the product selection plus the raw
// form inputs, forwarded as typed
type itemRequest struct {
	ProductType string `json:"product_type" binding:"required"`
	Width       string `json:"width"`
	Height      string `json:"height"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// Create handles creating an invoice from a draft
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		CustomerName  string        `json:"customer_name" binding:"required"`
		Contact       string        `json:"contact"`
		InvoiceNumber string        `json:"invoice_number"`
		Date          string        `json:"date" binding:"required"`
		Items         []itemRequest `json:"items"`
		Discount      float64       `json:"discount"`
		Paid          float64       `json:"paid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.InvoiceItemInput{
			ProductType: item.ProductType,
			Form: billing.ItemForm{
				Width:    item.Width,
				Height:   item.Height,
				Quantity: item.Quantity,
				Rate:     item.Rate,
				Amount:   item.Amount,
			},
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		CustomerName:  req.CustomerName,
		Contact:       req.Contact,
		InvoiceNumber: req.InvoiceNumber,
		Date:          date,
		Items:         items,
		Discount:      req.Discount,
		Paid:          req.Paid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice saved successfully", invoice)
}

// Get handles getting a single invoice by its number
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// AddPayment handles applying a payment against an invoice
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.ApplyPayment(c.Request.Context(), c.Param("number"), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment added successfully", invoice)
}

// ListPayments handles listing an invoice's payment history
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.invoiceService.ListPayments(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("number")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}
