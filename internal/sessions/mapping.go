package sessions

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/mail-designer/internal/blocks"
)

// View is the full state of a session: its blocks in order and the
// selection.
type View struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Blocks    []blocks.Block `json:"blocks"`
	Selected  *uuid.UUID     `json:"selected"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Summary is the list projection of a session.
type Summary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	BlockCount int       `json:"block_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCommand opens a session. Unless Empty is set, the document starts
// with the welcome heading, paragraph, and button.
type CreateCommand struct {
	Name  string `json:"name"`
	Empty bool   `json:"empty"`
}

// AddBlockCommand appends a default block of the given variant.
type AddBlockCommand struct {
	Variant string `json:"variant"`
}

// ReorderCommand replaces the block order. Order must list every block id
// exactly once.
type ReorderCommand struct {
	Order []uuid.UUID `json:"order"`
}

// MoveCommand moves one block to Index.
type MoveCommand struct {
	Index int `json:"index"`
}

// SelectCommand points the selection at BlockID. A null BlockID clears it.
type SelectCommand struct {
	BlockID *uuid.UUID `json:"block_id"`
}
