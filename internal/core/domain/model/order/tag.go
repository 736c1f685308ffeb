package order

import (
	"fmt"
	"slices"

	"fulfillment/internal/pkg/errs"
)

// TagID is a platform tag identifier.
type TagID int64

// Validate rejects non-positive tag IDs.
func (t TagID) Validate() error {
	if t <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tag", fmt.Errorf("%d is not greater than 0", t))
	}
	return nil
}

// TagSet is an unordered set of tags. It remembers insertion order so that logs and
// reports are stable, but equality and membership ignore order.
//
// The zero value is an empty, usable set.
type TagSet struct {
	ids []TagID
}

// NewTagSet builds a set from ids, dropping duplicates.
func NewTagSet(ids ...TagID) TagSet {
	var s TagSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether tag is in the set.
func (s *TagSet) Has(tag TagID) bool {
	return slices.Contains(s.ids, tag)
}

// HasAny reports whether any of tags is in the set.
func (s *TagSet) HasAny(tags ...TagID) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Add inserts tag and reports whether the set changed.
func (s *TagSet) Add(tag TagID) bool {
	if s.Has(tag) {
		return false
	}
	s.ids = append(s.ids, tag)
	return true
}

// Remove deletes tag and reports whether the set changed.
func (s *TagSet) Remove(tag TagID) bool {
	i := slices.Index(s.ids, tag)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Len returns the number of tags.
func (s *TagSet) Len() int {
	return len(s.ids)
}

// Slice returns a copy of the tags in insertion order.
func (s *TagSet) Slice() []TagID {
	return slices.Clone(s.ids)
}
