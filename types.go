package hyperpack

import (
	"github.com/AlkiviadisAleiferis/hyperpack/model"
)

// Items is the boundary-facing item dictionary: id -> Item.
type Items map[string]model.Item

// Containers is the boundary-facing container dictionary: id -> Container.
type Containers map[string]model.Container

// toSortedItems converts m to a slice ordered by ascending ID, giving the
// internal search packages a deterministic iteration order independent of
// Go's randomized map iteration (§8 invariant 4: permutation invariance of
// identity).
func toSortedItems(m Items) []model.Item {
	ids := model.SortedIDs(map[string]model.Item(m))
	out := make([]model.Item, 0, len(ids))
	var id string
	for _, id = range ids {
		out = append(out, m[id])
	}

	return out
}

// toSortedContainers converts m to a slice ordered by ascending ID.
func toSortedContainers(m Containers) []model.Container {
	ids := model.SortedIDs(map[string]model.Container(m))
	out := make([]model.Container, 0, len(ids))
	var id string
	for _, id = range ids {
		out = append(out, m[id])
	}

	return out
}
