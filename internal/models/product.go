// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Product is a catalog item owned by a parent category and one of its
// sub-categories. Deletion only sets Deleted. ThumbnailURL is resolved
// on read and never stored.
type Product struct {
	ID           int64          `json:"pno"`
	Name         string         `json:"pname"`
	Price        int64          `json:"price"`
	Description  string         `json:"pdesc"`
	ParentID     int64          `json:"categoryCno"`
	SubID        int64          `json:"subCategoryScno"`
	Deleted      bool           `json:"delFlag"`
	Images       []ProductImage `json:"images"`
	ThumbnailURL string         `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// ProductImage is one entry of a product's ordered image sequence.
// The image at Ord 0 is the thumbnail.
type ProductImage struct {
	Ord      int    `json:"ord"`
	FileName string `json:"fileName"`
	URL      string `json:"url,omitempty"`
}

// Thumbnail returns the representative image file name, or "" when the
// product has no images.
func (p *Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].FileName
}

// ProductSummary is the listing projection of a product: display fields
// plus the thumbnail reference, if any.
type ProductSummary struct {
	ID           int64  `json:"pno"`
	Name         string `json:"pname"`
	Price        int64  `json:"price"`
	Description  string `json:"pdesc"`
	ParentID     int64  `json:"categoryCno"`
	SubID        int64  `json:"subCategoryScno"`
	Thumbnail    string `json:"uploadFileName,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}
