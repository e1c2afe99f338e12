// Package document provides the ordered block store behind one editing
// session. A Document is not safe for concurrent use; the owner serializes
// access.
package document

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/JaimeStill/mail-designer/internal/blocks"
)

// Document is an ordered sequence of blocks plus the editor's selection.
// Block order is rendering order.
type Document struct {
	blocks   []blocks.Block
	selected uuid.UUID
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// NewSeeded creates the document a new editing session starts with: a
// heading, a paragraph, and a call-to-action button.
func NewSeeded(f *blocks.Factory) *Document {
	d := New()

	heading := f.New(blocks.VariantHeading)
	heading.Payload = blocks.Heading{Content: "Welcome to Our Newsletter"}
	d.Append(heading)

	text := f.New(blocks.VariantText)
	text.Payload = blocks.Text{Content: "Thank you for subscribing! We're excited to share our latest updates, tips, and exclusive offers with you."}
	d.Append(text)

	button := f.New(blocks.VariantButton)
	button.Payload = blocks.Button{Content: "Get Started", URL: "#"}
	d.Append(button)

	return d
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Blocks returns a copy of the blocks in order.
func (d *Document) Blocks() []blocks.Block {
	return slices.Clone(d.blocks)
}

// IDs returns the block ids in order.
func (d *Document) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(d.blocks))
	for i, b := range d.blocks {
		ids[i] = b.ID
	}
	return ids
}

// Block returns the block with the given id.
func (d *Document) Block(id uuid.UUID) (blocks.Block, bool) {
	i := d.index(id)
	if i < 0 {
		return blocks.Block{}, false
	}
	return d.blocks[i], true
}

// Append adds b at the end of the document. Appending an id that is already
// present is a programming error and panics.
func (d *Document) Append(b blocks.Block) {
	if d.index(b.ID) >= 0 {
		panic(fmt.Sprintf("document: duplicate block id %s", b.ID))
	}
	d.blocks = append(d.blocks, b)
}

// Remove deletes the block with the given id and clears the selection if it
// referenced that block. Removing an absent id is a no-op; the result
// reports whether a block was removed.
func (d *Document) Remove(id uuid.UUID) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	d.blocks = slices.Delete(d.blocks, i, i+1)
	if d.selected == id {
		d.selected = uuid.Nil
	}
	return true
}

// UpdateContent merges patch into the block's content fields. An absent id
// is a no-op. A patch field that the block's variant does not carry fails
// with blocks.ErrInapplicableField and changes nothing.
func (d *Document) UpdateContent(id uuid.UUID, patch blocks.ContentPatch) error {
	i := d.index(id)
	if i < 0 {
		return nil
	}
	payload, err := patch.Apply(d.blocks[i].Payload)
	if err != nil {
		return err
	}
	d.blocks[i].Payload = payload
	return nil
}

// UpdateStyle merges patch into the block's style. An absent id is a no-op;
// the result reports whether a block was found.
func (d *Document) UpdateStyle(id uuid.UUID, patch blocks.StylePatch) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	d.blocks[i].Style.Merge(patch)
	return true
}

// Reorder replaces the block order with order, which must be a permutation
// of the current ids. Otherwise it returns ErrInvalidReorder and the
// document is unchanged.
func (d *Document) Reorder(order []uuid.UUID) error {
	if len(order) != len(d.blocks) {
		return fmt.Errorf("%w: got %d ids, document has %d", ErrInvalidReorder, len(order), len(d.blocks))
	}

	positions := make(map[uuid.UUID]int, len(d.blocks))
	for i, b := range d.blocks {
		positions[b.ID] = i
	}

	reordered := make([]blocks.Block, 0, len(order))
	seen := make(map[uuid.UUID]bool, len(order))
	for _, id := range order {
		i, ok := positions[id]
		if !ok {
			return fmt.Errorf("%w: unknown id %s", ErrInvalidReorder, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidReorder, id)
		}
		seen[id] = true
		reordered = append(reordered, d.blocks[i])
	}

	d.blocks = reordered
	return nil
}

// Move relocates one block to index, shifting the others. An absent id is a
// no-op; an index outside [0, Len) fails with ErrInvalidReorder.
func (d *Document) Move(id uuid.UUID, index int) error {
	from := d.index(id)
	if from < 0 {
		return nil
	}
	if index < 0 || index >= len(d.blocks) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidReorder, index, len(d.blocks))
	}

	order := d.IDs()
	order = slices.Delete(order, from, from+1)
	order = slices.Insert(order, index, id)
	return d.Reorder(order)
}

// Clear removes every block and the selection.
func (d *Document) Clear() {
	d.blocks = nil
	d.selected = uuid.Nil
}

// Select points the selection at id. Selecting an absent id returns false
// and leaves the selection unchanged.
func (d *Document) Select(id uuid.UUID) bool {
	if d.index(id) < 0 {
		return false
	}
	d.selected = id
	return true
}

// Deselect clears the selection.
func (d *Document) Deselect() {
	d.selected = uuid.Nil
}

// Selected returns the selected block id, if any.
func (d *Document) Selected() (uuid.UUID, bool) {
	return d.selected, d.selected != uuid.Nil
}

func (d *Document) index(id uuid.UUID) int {
	return slices.IndexFunc(d.blocks, func(b blocks.Block) bool {
		return b.ID == id
	})
}
