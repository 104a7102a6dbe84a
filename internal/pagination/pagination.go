// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pagination normalizes raw page/size/search inputs into a bounded
// Request and packages result pages with the derived pager metadata.
// Nothing here touches the database; every function is pure.
package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultPage is used when the caller omits the page or sends one below 1.
	DefaultPage = 1
	// DefaultSize is used when the caller omits the size or sends one outside AllowedSizes.
	DefaultSize = 10
	// MaxPage is the highest page a caller may request. Larger values are
	// clamped so that (page-1)*size stays within int for every allowed size.
	MaxPage = 10_000_000
	// windowWidth is how many page links a pager shows at once.
	windowWidth = 10
)

// AllowedSizes is the closed set of page sizes a caller may request.
var AllowedSizes = []int{10, 20, 30, 50, 100}

// SearchType selects which text columns a keyword is matched against.
type SearchType string

const (
	SearchNone           SearchType = ""
	SearchTitle          SearchType = "t"
	SearchContent        SearchType = "c"
	SearchTitleOrContent SearchType = "tc"
)

// Request is a normalized page descriptor. Build it with NewRequest or
// FromQuery; the zero value is not normalized.
type Request struct {
	Page    int        `json:"page"`
	Size    int        `json:"size"`
	Type    SearchType `json:"type,omitempty"`
	Keyword string     `json:"keyword,omitempty"`
}

// NewRequest clamps page and size to their accepted domains and trims the
// search inputs. A keyword with an unknown or missing type searches both
// title and content; an empty keyword disables text search entirely.
func NewRequest(page, size int, searchType, keyword string) Request {
	page = clampPage(page)
	if !allowedSize(size) {
		size = DefaultSize
	}

	keyword = strings.TrimSpace(keyword)
	st := SearchType(strings.ToLower(strings.TrimSpace(searchType)))
	switch {
	case keyword == "":
		st = SearchNone
	case st != SearchTitle && st != SearchContent && st != SearchTitleOrContent:
		st = SearchTitleOrContent
	}

	return Request{Page: page, Size: size, Type: st, Keyword: keyword}
}

// FromQuery reads page, size, type and keyword from URL query values.
// Malformed numbers fall back to the defaults rather than failing.
func FromQuery(q url.Values) Request {
	page, err := strconv.Atoi(strings.TrimSpace(q.Get("page")))
	if err != nil {
		page = DefaultPage
	}
	size, err := strconv.Atoi(strings.TrimSpace(q.Get("size")))
	if err != nil {
		size = DefaultSize
	}
	return NewRequest(page, size, q.Get("type"), q.Get("keyword"))
}

// Offset returns the number of rows to skip for this page.
func (r Request) Offset() int {
	return (clampPage(r.Page) - 1) * r.Size
}

// Limit returns the maximum number of rows on this page.
func (r Request) Limit() int {
	return r.Size
}

// HasKeyword reports whether a text filter applies.
func (r Request) HasKeyword() bool {
	return r.Keyword != "" && r.Type != SearchNone
}

// clampPage bounds page to [DefaultPage, MaxPage].
func clampPage(page int) int {
	switch {
	case page < 1:
		return DefaultPage
	case page > MaxPage:
		return MaxPage
	}
	return page
}

func allowedSize(size int) bool {
	for _, s := range AllowedSizes {
		if size == s {
			return true
		}
	}
	return false
}

// Bounds is the navigable window of page numbers for a result set.
//
// Prev and Next describe the requested page itself (is there a page before
// or after it). PrevWindow and NextWindow describe the decade window
// (is there a window of page links before Start or after End).
type Bounds struct {
	Start      int  `json:"start"`
	End        int  `json:"end"`
	Last       int  `json:"last"`
	Prev       bool `json:"prev"`
	Next       bool `json:"next"`
	PrevWindow bool `json:"prevWindow"`
	NextWindow bool `json:"nextWindow"`
}

// Window computes the pager bounds for a page of the given size over total
// matching rows. Pages are grouped into decades: pages 1-10 share a window,
// 11-20 the next, and so on. End is capped at the last page, so an empty
// result has Last = 0 and all four navigation flags false.
func Window(page, size, total int) Bounds {
	if size < 1 {
		size = DefaultSize
	}
	if total < 0 {
		total = 0
	}
	page = clampPage(page)

	end := ceilDiv(page, windowWidth) * windowWidth
	start := end - (windowWidth - 1)
	last := 0
	if total > 0 {
		last = ceilDiv(total, size)
	}
	if end > last {
		end = last
	}

	return Bounds{
		Start:      start,
		End:        end,
		Last:       last,
		Prev:       page > 1 && last > 0,
		Next:       page < last,
		PrevWindow: start > 1,
		NextWindow: end < last,
	}
}

// ceilDiv divides rounding up without forming a+b-1, which could overflow.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// Response is one page of results together with its pager metadata.
type Response[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int   `json:"totalCount"`
	Page        int   `json:"page"`
	Size        int   `json:"size"`
	PageNumList []int `json:"pageNumList"`
	Bounds
}

// NewResponse packages items with the metadata derived from total and req.
// Items is never nil so it always encodes as a JSON array.
func NewResponse[T any](items []T, total int, req Request) Response[T] {
	if items == nil {
		items = []T{}
	}
	b := Window(req.Page, req.Size, total)

	nums := []int{}
	for i := b.Start; i <= b.End; i++ {
		nums = append(nums, i)
	}

	return Response[T]{
		Items:       items,
		TotalCount:  total,
		Page:        req.Page,
		Size:        req.Size,
		PageNumList: nums,
		Bounds:      b,
	}
}
