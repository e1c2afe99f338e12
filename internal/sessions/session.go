package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/document"
)

// Session is one editing session. It exclusively owns its document; every
// access to the document holds mu.
type Session struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
	doc       *document.Document
}

func (s *Session) touch(now time.Time) {
	s.updatedAt = now
}

// view snapshots the session. Callers hold mu.
func (s *Session) view() *View {
	v := &View{
		ID:        s.ID,
		Name:      s.Name,
		Blocks:    s.doc.Blocks(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.updatedAt,
	}
	if id, ok := s.doc.Selected(); ok {
		v.Selected = &id
	}
	if v.Blocks == nil {
		v.Blocks = []blocks.Block{}
	}
	return v
}

// summary snapshots list metadata. Callers hold mu.
func (s *Session) summary() Summary {
	return Summary{
		ID:         s.ID,
		Name:       s.Name,
		BlockCount: s.doc.Len(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.updatedAt,
	}
}
