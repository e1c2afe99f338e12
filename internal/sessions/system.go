// Package sessions hosts independent in-memory editing sessions, each
// owning one document, and exposes them over HTTP.
package sessions

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/pkg/lifecycle"
	"github.com/JaimeStill/mail-designer/pkg/pagination"
)

// System defines the interface for editing session operations.
type System interface {
	// List returns a page of session summaries ordered by creation time,
	// optionally filtered by name.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error)

	// Create opens a new session.
	Create(ctx context.Context, cmd CreateCommand) (*View, error)

	// Find returns the session's current state.
	Find(ctx context.Context, id uuid.UUID) (*View, error)

	// Delete closes a session and purges its archived exports.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddBlock appends a default block of the given variant.
	AddBlock(ctx context.Context, id uuid.UUID, variant blocks.Variant) (*blocks.Block, error)

	// RemoveBlock deletes a block. An absent block id is a no-op.
	RemoveBlock(ctx context.Context, id, blockID uuid.UUID) (*View, error)

	// UpdateContent merges a content patch into a block. An absent block id
	// is a no-op.
	UpdateContent(ctx context.Context, id, blockID uuid.UUID, patch blocks.ContentPatch) (*View, error)

	// UpdateStyle merges a style patch into a block. An absent block id is a
	// no-op.
	UpdateStyle(ctx context.Context, id, blockID uuid.UUID, patch blocks.StylePatch) (*View, error)

	// Reorder replaces the block order with a permutation of the current ids.
	Reorder(ctx context.Context, id uuid.UUID, order []uuid.UUID) (*View, error)

	// Move relocates one block to index.
	Move(ctx context.Context, id, blockID uuid.UUID, index int) (*View, error)

	// Select points the selection at a block, or clears it when blockID is nil.
	Select(ctx context.Context, id uuid.UUID, blockID *uuid.UUID) (*View, error)

	// Clear removes every block and the selection.
	Clear(ctx context.Context, id uuid.UUID) (*View, error)

	// Render returns the canonical email HTML.
	Render(ctx context.Context, id uuid.UUID) (string, error)

	// CodeView returns the canonical HTML formatted for display.
	CodeView(ctx context.Context, id uuid.UUID) (string, error)

	// Export builds and archives an artifact of the canonical HTML.
	Export(ctx context.Context, id uuid.UUID, format export.Format) (*export.Artifact, error)

	// Exports lists the filenames archived for a session.
	Exports(ctx context.Context, id uuid.UUID) ([]string, error)

	// Download returns a previously archived artifact.
	Download(ctx context.Context, id uuid.UUID, filename string) (*export.Artifact, error)

	// Start registers the idle session sweeper with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}
