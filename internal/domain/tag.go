package domain

import (
	"slices"

	"github.com/gosimple/slug"
)

// Tag is a normalised label shared by movies and cinemas. Tags compare by
// value, so "Sci Fi" and "sci-fi" are the same tag.
type Tag string

func NewTag(name string) Tag {
	return Tag(slug.Make(name))
}

// NewTags normalises names into a sorted tag list without duplicates.
func NewTags(names ...string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, NewTag(name))
	}

	return MergeTags(tags)
}

// MergeTags returns the sorted union of the given lists.
func MergeTags(lists ...[]Tag) []Tag {
	var merged []Tag
	for _, list := range lists {
		merged = append(merged, list...)
	}

	slices.Sort(merged)

	return slices.Compact(merged)
}

func (t Tag) String() string {
	return "[" + string(t) + "]"
}

func renderTags(tags []Tag) string {
	var s string
	for _, t := range tags {
		s += t.String()
	}

	return s
}
