package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagination-service/internal/service"
	"github.com/maxviazov/pagination-service/pkg/response"
)

type PaginationHandler struct {
	svc service.PaginationService
}

func NewPaginationHandler(svc service.PaginationService) *PaginationHandler {
	return &PaginationHandler{svc: svc}
}

func (h *PaginationHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/pagination")
	{
		g.GET("", h.describe)
		g.POST("/activate", h.activate)
	}
}

func (h *PaginationHandler) describe(c *gin.Context) {
	req, err := requestFromQuery(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	ctrl, err := h.svc.Describe(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, ctrl)
}

// activateRequest keeps page as a pointer so an omitted page (page 1) stays
// distinct from an explicit 0, which the service rejects.
type activateRequest struct {
	Page       *int   `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalItems int    `json:"total"`
	ItemName   string `json:"item"`
	Index      int    `json:"index"`
}

func (h *PaginationHandler) activate(c *gin.Context) {
	var body activateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parse details stay internal
		return
	}
	req := service.ActivateRequest{
		Request: service.Request{Page: 1, PerPage: body.PerPage, TotalItems: body.TotalItems, ItemName: body.ItemName},
		Index:   body.Index,
	}
	if body.Page != nil {
		req.Page = *body.Page
	}
	out, err := h.svc.Activate(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

// requestFromQuery reads ?page=&per_page=&total=&item=. A missing page means page 1.
func requestFromQuery(c *gin.Context) (service.Request, error) {
	req := service.Request{Page: 1, ItemName: c.Query("item")}
	var ferrs []service.FieldError
	for _, q := range []struct {
		name string
		dst  *int
	}{
		{"page", &req.Page},
		{"per_page", &req.PerPage},
		{"total", &req.TotalItems},
	} {
		raw, ok := c.GetQuery(q.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			ferrs = append(ferrs, service.FieldError{Field: q.name, Message: "must be an integer"})
			continue
		}
		*q.dst = n
	}
	if len(ferrs) > 0 {
		return service.Request{}, service.NewInvalidInput(ferrs...)
	}
	return req, nil
}
