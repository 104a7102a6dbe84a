// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"
)

// FAQCategory is the closed set of FAQ topics.
type FAQCategory string

const (
	FAQOrder    FAQCategory = "ORDER"
	FAQDelivery FAQCategory = "DELIVERY"
	FAQPayment  FAQCategory = "PAYMENT"
	FAQReturn   FAQCategory = "RETURN"
	FAQAccount  FAQCategory = "ACCOUNT"
	FAQEtc      FAQCategory = "ETC"
)

// FAQCategories lists every FAQ category.
var FAQCategories = []FAQCategory{FAQOrder, FAQDelivery, FAQPayment, FAQReturn, FAQAccount, FAQEtc}

// Valid reports whether c is a known FAQ category.
func (c FAQCategory) Valid() bool {
	for _, v := range FAQCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ParseFAQCategory parses a category name case-insensitively.
func ParseFAQCategory(s string) (FAQCategory, error) {
	c := FAQCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown faq category %q", s)
	}
	return c, nil
}

// FAQ is a question/answer entry. Deleted rows stay in the table and are
// hidden from every read.
type FAQ struct {
	ID        int64       `json:"fno"`
	Question  string      `json:"question"`
	Answer    string      `json:"answer"`
	ViewCount int64       `json:"viewCnt"`
	Category  FAQCategory `json:"category"`
	Deleted   bool        `json:"delFlag"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
