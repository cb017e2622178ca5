package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/api/validators"
	"github.com/haneulsoft/weddingmoa-backend/internal/catalog"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// VendorsController serves the public vendor catalog.
type VendorsController struct {
	svc  catalog.Service
	logg *logger.Logger
}

func NewVendorsController(svc catalog.Service, logg *logger.Logger) *VendorsController {
	return &VendorsController{svc: svc, logg: logg}
}

// List handles GET /vendors with filtering, sorting and pagination.
func (c *VendorsController) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListVendorsQuery(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	vendors, meta, err := c.svc.List(r.Context(), input)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteList(w, vendors, meta)
}

// GetByID handles GET /vendors/{vendorID}.
func (c *VendorsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "vendorID"))
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeValidation, "업체 ID가 올바르지 않습니다."))
		return
	}

	detail, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, detail)
}

// Categories handles GET /categories.
func (c *VendorsController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.svc.Categories(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, categories)
}

// ListByCategory handles GET /categories/{slug}/vendors.
func (c *VendorsController) ListByCategory(w http.ResponseWriter, r *http.Request) {
	input, err := parseListVendorsQuery(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	slug := chi.URLParam(r, "slug")
	vendors, meta, err := c.svc.ListByCategorySlug(r.Context(), slug, input)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteList(w, vendors, meta)
}

func parseListVendorsQuery(r *http.Request) (catalog.ListVendorsInput, error) {
	values := r.URL.Query()
	var input catalog.ListVendorsInput

	if raw := strings.TrimSpace(values.Get("categoryId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, pkgerrors.New(pkgerrors.CodeValidation, "카테고리 ID가 올바르지 않습니다.")
		}
		input.CategoryID = &id
	}

	input.Location = strings.TrimSpace(values.Get("location"))
	input.TagSlugs = validators.ParseQueryCSV(values, "tags")

	if n, ok, err := validators.ParseQueryInt(values, "priceMin"); err != nil {
		return input, err
	} else if ok {
		input.PriceMin = &n
	}
	if n, ok, err := validators.ParseQueryInt(values, "priceMax"); err != nil {
		return input, err
	} else if ok {
		input.PriceMax = &n
	}

	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		field, err := enums.ParseVendorSortField(raw)
		if err != nil {
			return input, pkgerrors.New(pkgerrors.CodeValidation, "지원하지 않는 정렬 기준입니다.")
		}
		input.SortBy = field
	}
	input.SortOrder = enums.ParseSortOrder(values.Get("order"))

	if n, ok, err := validators.ParseQueryInt(values, "page"); err != nil {
		return input, err
	} else if ok {
		input.Page = n
	}
	if n, ok, err := validators.ParseQueryInt(values, "limit"); err != nil {
		return input, err
	} else if ok {
		input.Limit = n
	}

	return input, nil
}
