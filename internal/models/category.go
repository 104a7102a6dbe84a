// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and the closed enumerations shared by the catalog and FAQ packages.
package models

import (
	"fmt"
	"strings"
)

// ParentKind is the closed set of top-level category kinds.
type ParentKind string

const (
	KindFood    ParentKind = "FOOD"
	KindLiving  ParentKind = "LIVING"
	KindBeauty  ParentKind = "BEAUTY"
	KindFashion ParentKind = "FASHION"
	KindHobby   ParentKind = "HOBBY"

	// KindAll means "no filter". It is never stored.
	KindAll ParentKind = "ALL"
)

// ParentKinds lists every persistable kind, in display order.
var ParentKinds = []ParentKind{KindFood, KindLiving, KindBeauty, KindFashion, KindHobby}

// Valid reports whether k is a persistable kind. The All sentinel is not.
func (k ParentKind) Valid() bool {
	for _, v := range ParentKinds {
		if k == v {
			return true
		}
	}
	return false
}

// ParseParentKind parses a kind name case-insensitively. "ALL" is rejected
// because it is a filter sentinel, not a data value.
func ParseParentKind(s string) (ParentKind, error) {
	k := ParentKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown parent category kind %q", s)
	}
	return k, nil
}

// Theme is an orthogonal tag attached to a parent category.
type Theme string

const (
	ThemeRelaxation Theme = "RELAXATION"
	ThemeVitality   Theme = "VITALITY"
	ThemeFocus      Theme = "FOCUS"
	ThemeSleep      Theme = "SLEEP"
	ThemeComfort    Theme = "COMFORT"

	// DefaultTheme is applied when a parent category is created without one.
	DefaultTheme = ThemeRelaxation
)

// Themes lists every theme value.
var Themes = []Theme{ThemeRelaxation, ThemeVitality, ThemeFocus, ThemeSleep, ThemeComfort}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	for _, v := range Themes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseTheme parses a theme name case-insensitively.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown theme category %q", s)
	}
	return t, nil
}

// ParentCategory is the top level of the category hierarchy.
type ParentCategory struct {
	ID      int64      `json:"cno"`
	Name    string     `json:"name"`
	Kind    ParentKind `json:"category"`
	Theme   Theme      `json:"themeCategory"`
	Deleted bool       `json:"delFlag"`
}

// SubCategory belongs to exactly one ParentCategory.
type SubCategory struct {
	ID       int64  `json:"scno"`
	ParentID int64  `json:"cno"`
	Name     string `json:"name"`
	Deleted  bool   `json:"delFlag"`
}
