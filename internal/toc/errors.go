package toc

import "fmt"

// MalformedIDError marks a section id with a non-numeric or non-positive
// component. It is local to one TOC line: the builder skips the token and
// keeps going.
type MalformedIDError struct {
	SectionID string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("malformed section id %q: components must be positive integers", e.SectionID)
}

// DuplicateSectionError signals a section id appearing more than once in the
// TOC. Fatal: continuing would silently merge distinct sections.
type DuplicateSectionError struct {
	SectionID string
}

func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("duplicate section id %q in TOC", e.SectionID)
}

// OrphanSectionError signals a section whose derived parent never appeared
// earlier in the TOC. Fatal: the hierarchy would not be well-formed.
type OrphanSectionError struct {
	SectionID string
	ParentID  string
}

func (e *OrphanSectionError) Error() string {
	return fmt.Sprintf("section %q references parent %q which has not appeared in the TOC", e.SectionID, e.ParentID)
}
