// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LinkVariant selects how a header link is styled.
type LinkVariant string

const (
	LinkPrimary LinkVariant = "primary"
	LinkOutline LinkVariant = "outline"
	LinkGhost   LinkVariant = "ghost"
)

// Link is a call-to-action rendered in the site header.
type Link struct {
	Label   string
	Href    string
	Variant LinkVariant
	// External links open in a new tab.
	External bool
}

// Section is a titled block of the landing page. Body may contain inline
// code spans written as `code`.
type Section struct {
	Title string
	Body  string
}

// Header is the site header view model.
type Header struct {
	Title   string
	Tagline string
	Links   []Link
}

// HomePage is the landing page view model. It only ever carries
// client-visible values.
type HomePage struct {
	Header   Header
	Sections []Section
}
