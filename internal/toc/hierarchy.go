package toc

import (
	"strings"

	"github.com/specdex/specdex/internal/document"
)

// BuildResult holds the frozen section hierarchy. Records preserve TOC input
// order, which already reflects the authoritative document order.
type BuildResult struct {
	Records   []document.SectionRecord
	Malformed []MalformedIDError // tokens skipped for bad section ids
}

// KnownIDs returns the set of section ids keyed for header lookup.
func (r *BuildResult) KnownIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(r.Records))
	for _, rec := range r.Records {
		ids[rec.SectionID] = struct{}{}
	}
	return ids
}

// Build derives level and parent_id for each token and enforces pre-order
// well-formedness: a parent must be emitted before any of its children, and
// ids never repeat. Duplicate and orphan ids are fatal; malformed ids are
// skipped and reported in the result.
func Build(tokens []RawTOCToken, docTitle string) (*BuildResult, error) {
	res := &BuildResult{Records: make([]document.SectionRecord, 0, len(tokens))}
	seen := make(map[string]struct{}, len(tokens))

	for _, tok := range tokens {
		parts := strings.Split(tok.SectionID, ".")
		if !validComponents(parts) {
			res.Malformed = append(res.Malformed, MalformedIDError{SectionID: tok.SectionID})
			continue
		}
		if _, dup := seen[tok.SectionID]; dup {
			return nil, &DuplicateSectionError{SectionID: tok.SectionID}
		}

		parentID := ""
		if len(parts) > 1 {
			parentID = strings.Join(parts[:len(parts)-1], ".")
			if _, ok := seen[parentID]; !ok {
				return nil, &OrphanSectionError{SectionID: tok.SectionID, ParentID: parentID}
			}
		}

		seen[tok.SectionID] = struct{}{}
		res.Records = append(res.Records, document.SectionRecord{
			DocTitle:  docTitle,
			SectionID: tok.SectionID,
			Title:     tok.Title,
			Page:      tok.Page,
			Level:     len(parts),
			ParentID:  parentID,
			FullPath:  tok.SectionID + " " + tok.Title,
		})
	}

	return res, nil
}

func validComponents(parts []string) bool {
	for _, p := range parts {
		if p == "" {
			return false
		}
		allZero := true
		for _, c := range p {
			if c < '0' || c > '9' {
				return false
			}
			if c != '0' {
				allZero = false
			}
		}
		if allZero {
			return false
		}
	}
	return true
}
