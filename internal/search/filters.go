// Package search turns user supplied filter values into a predicate tree
// that can be compiled to a single SQL condition, plus the pagination math
// for the windowed result envelope.
package search

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is the page size used when the client sends none
	DefaultLimit = 10
	// MaxLimit caps the page size a client can request
	MaxLimit = 100
)

// Filters is the transient value object describing one search request.
// Zero values / nil pointers mean the filter is not applied.
type Filters struct {
	Query           string
	Location        string
	PositionType    string
	RemotePolicy    string
	ExperienceLevel string
	CategoryID      *uuid.UUID
	SalaryMin       *float64
	SalaryMax       *float64
	Page            int
	Limit           int
}

// FromValues parses query parameters into Filters. Malformed numeric or
// uuid values are rejected rather than silently dropped. The legacy
// parameter names employmentType and isRemote are accepted as aliases.
func FromValues(values url.Values) (Filters, error) {
	f := Filters{
		Query:           values.Get("query"),
		Location:        values.Get("location"),
		PositionType:    values.Get("positionType"),
		RemotePolicy:    values.Get("remotePolicy"),
		ExperienceLevel: values.Get("experienceLevel"),
	}

	if f.PositionType == "" {
		f.PositionType = values.Get("employmentType")
	}
	if f.RemotePolicy == "" && values.Get("isRemote") != "" {
		remote, err := strconv.ParseBool(values.Get("isRemote"))
		if err != nil {
			return f, fmt.Errorf("invalid isRemote value %q", values.Get("isRemote"))
		}
		if remote {
			f.RemotePolicy = "remote"
		}
	}

	if raw := values.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("invalid categoryId value %q", raw)
		}
		f.CategoryID = &id
	}

	var err error
	if f.SalaryMin, err = parseFloat(values, "salaryMin"); err != nil {
		return f, err
	}
	if f.SalaryMax, err = parseFloat(values, "salaryMax"); err != nil {
		return f, err
	}
	if f.Page, err = parseInt(values, "page"); err != nil {
		return f, err
	}
	if f.Limit, err = parseInt(values, "limit"); err != nil {
		return f, err
	}

	f.Normalize()
	return f, nil
}

// Normalize clamps pagination to sane bounds: page >= 1 and
// 1 <= limit <= MaxLimit, defaulting to page 1 and DefaultLimit.
func (f *Filters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

// Offset is the row offset of the requested page
func (f *Filters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// HasSoftFilter reports whether any textual OR-group clause is present
func (f *Filters) HasSoftFilter() bool {
	return f.Query != "" || f.Location != ""
}

func parseFloat(values url.Values, key string) (*float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return &v, nil
}

func parseInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return v, nil
}
