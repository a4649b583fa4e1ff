// Package models describes directory queries and their paged results.
package models

import (
	"math"
	"strconv"
	"strings"

	dErrors "carenest/pkg/domain-errors"
)

type SortKey string

const (
	SortRating     SortKey = "rating"
	SortExperience SortKey = "experience"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortRating, SortExperience, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query filters listed caregivers. Listing (verified and active) is always
// applied by the store and cannot be relaxed here.
type Query struct {
	Text           string
	City           string
	Specialization string
	MinRate        *float64
	MaxRate        *float64
	Available      *bool
	Sort           SortKey
	Page           int
	Limit          int
}

// Offset is the number of rows skipped before the current page. It is only
// meaningful on a normalized query.
func (q Query) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Normalize fills defaults and rejects values that cannot be served.
func (q *Query) Normalize() error {
	q.Text = strings.TrimSpace(q.Text)
	q.City = strings.TrimSpace(q.City)
	q.Specialization = strings.TrimSpace(q.Specialization)
	if q.Sort == "" {
		q.Sort = SortRating
	}
	if !q.Sort.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "sortBy must be one of rating, experience, price-low, price-high")
	}
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.Page < 1 {
		return dErrors.New(dErrors.CodeValidation, "page must be at least 1")
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 1 {
		return dErrors.New(dErrors.CodeValidation, "limit must be at least 1")
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Page > math.MaxInt/q.Limit {
		return dErrors.New(dErrors.CodeValidation, "page is out of range")
	}
	if q.MinRate != nil && q.MaxRate != nil && *q.MinRate > *q.MaxRate {
		return dErrors.New(dErrors.CodeValidation, "minRate cannot exceed maxRate")
	}
	return nil
}

// ParseQuery reads the directory's URL parameters.
func ParseQuery(get func(string) string) (Query, error) {
	var q Query
	q.Text = get("search")
	q.City = get("location")
	if strings.TrimSpace(q.City) == "" {
		q.City = get("city")
	}
	q.Specialization = get("specialization")
	q.Sort = SortKey(strings.TrimSpace(get("sortBy")))
	if !q.Sort.IsValid() {
		q.Sort = SortRating
	}

	var err error
	if q.MinRate, err = optionalFloat(get("minRate"), "minRate"); err != nil {
		return Query{}, err
	}
	if q.MaxRate, err = optionalFloat(get("maxRate"), "maxRate"); err != nil {
		return Query{}, err
	}
	if v := strings.TrimSpace(get("available")); v != "" {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return Query{}, dErrors.New(dErrors.CodeValidation, "available must be true or false")
		}
		q.Available = &b
	}
	if q.Page, err = optionalInt(get("page"), "page"); err != nil {
		return Query{}, err
	}
	if q.Limit, err = optionalInt(get("limit"), "limit"); err != nil {
		return Query{}, err
	}
	if err := q.Normalize(); err != nil {
		return Query{}, err
	}
	return q, nil
}

func optionalFloat(v, name string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, dErrors.New(dErrors.CodeValidation, name+" must be a number")
	}
	return &f, nil
}

func optionalInt(v, name string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, name+" must be an integer")
	}
	return n, nil
}

// Page is one slice of search results.
type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}

// Pages is ceil(total/limit).
func (p Page[T]) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
