package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination-service/internal/config"
	"github.com/maxviazov/pagination-service/internal/control"
	"github.com/maxviazov/pagination-service/internal/pagination"
)

// paginationService validates list positions and derives pagination controls.
type paginationService struct {
	cfg      config.PaginationConfig
	validate *validator.Validate
	log      zerolog.Logger
}

func NewPaginationService(cfg config.PaginationConfig, logger zerolog.Logger) PaginationService {
	l := logger.With().Str("module", "service").Str("component", "pagination").Logger()
	return &paginationService{cfg: cfg, validate: validator.New(), log: l}
}

func (s *paginationService) Describe(ctx context.Context, req Request) (control.Control, error) {
	state, itemName, err := s.resolve(req)
	if err != nil {
		return control.Control{}, err
	}
	c := control.Build(state, itemName)
	s.log.Debug().
		Int("page", state.CurrentPage).
		Int("last_page", state.LastPage).
		Int("items", len(c.Items)).
		Bool("visible", c.Visible).
		Msg("pagination control built")
	return c, nil
}

func (s *paginationService) Activate(ctx context.Context, req ActivateRequest) (PageChange, error) {
	c, err := s.Describe(ctx, req.Request)
	if err != nil {
		return PageChange{}, err
	}
	if len(c.Items) == 0 {
		return PageChange{}, newInvalidInput([]FieldError{{Field: "index", Message: "control is hidden for a single page"}})
	}
	if req.Index < 0 || req.Index >= len(c.Items) {
		return PageChange{}, newInvalidInput([]FieldError{{
			Field:   "index",
			Message: fmt.Sprintf("must be between 0 and %d", len(c.Items)-1),
		}})
	}

	var out PageChange
	control.Activate(c.Items[req.Index], func(page int) {
		out = PageChange{Changed: true, Page: page}
	})
	s.log.Debug().Int("index", req.Index).Bool("changed", out.Changed).Int("page", out.Page).Msg("pagination item activated")
	return out, nil
}

// resolve applies defaults and validates req into a pagination state.
func (s *paginationService) resolve(req Request) (pagination.State, string, error) {
	perPage := req.PerPage
	if perPage == 0 {
		perPage = s.cfg.DefaultPerPage
	}
	itemName := strings.TrimSpace(req.ItemName)
	if itemName == "" {
		itemName = s.cfg.DefaultItemName
	}

	checks := []struct {
		field string
		value any
		tag   string
	}{
		{"page", req.Page, "min=1"},
		{"per_page", perPage, fmt.Sprintf("min=1,max=%d", s.cfg.MaxPerPage)},
		{"total", req.TotalItems, "min=0"},
		{"item", itemName, "max=64"},
	}
	var ferrs []FieldError
	for _, c := range checks {
		if err := s.validate.Var(c.value, c.tag); err != nil {
			ferrs = append(ferrs, toFieldErrors(c.field, err)...)
		}
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("pagination validation failed")
		return pagination.State{}, "", err
	}

	state := pagination.NewState(req.Page, perPage, req.TotalItems)
	if state.CurrentPage > state.LastPage {
		err := newInvalidInput([]FieldError{{
			Field:   "page",
			Message: fmt.Sprintf("must be <= %d", state.LastPage),
		}})
		s.log.Debug().Int("page", req.Page).Int("last_page", state.LastPage).Msg("page out of range")
		return pagination.State{}, "", err
	}
	return state, itemName, nil
}

func toFieldErrors(field string, err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: field, Message: "is invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: field, Message: ruleMessage(fe)})
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("length must be at least %s", fe.Param())
		}
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("length must be at most %s", fe.Param())
		}
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return "is invalid"
	}
}
