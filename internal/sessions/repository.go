package sessions

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/document"
	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/internal/render"
	"github.com/JaimeStill/mail-designer/pkg/lifecycle"
	"github.com/JaimeStill/mail-designer/pkg/pagination"
)

type repo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	factory    *blocks.Factory
	serializer render.Serializer
	exporter   *export.Exporter
	maxSess    int
	maxBlocks  int
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a session registry from a finalized Config.
func New(cfg *Config, exporter *export.Exporter, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		sessions: make(map[uuid.UUID]*Session),
		factory:  blocks.NewFactory(blocks.Defaults{PlaceholderImage: cfg.PlaceholderImage}),
		serializer: render.Serializer{
			Policy:      cfg.Policy(),
			FallbackURL: cfg.FallbackURL,
		},
		exporter:   exporter,
		maxSess:    cfg.MaxSessions,
		maxBlocks:  cfg.MaxBlocks,
		ttl:        cfg.SessionTTLDuration(),
		now:        time.Now,
		logger:     logger.With("system", "sessions"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error) {
	page.Normalize(r.pagination)

	r.mu.Lock()
	all := slices.Collect(maps.Values(r.sessions))
	r.mu.Unlock()

	summaries := make([]Summary, 0, len(all))
	for _, s := range all {
		if !page.Matches(s.Name) {
			continue
		}
		s.mu.Lock()
		summaries = append(summaries, s.summary())
		s.mu.Unlock()
	}

	slices.SortFunc(summaries, func(a, b Summary) int {
		return cmp.Or(
			a.CreatedAt.Compare(b.CreatedAt),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})

	result := pagination.Slice(summaries, page)
	return &result, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSess > 0 && len(r.sessions) >= r.maxSess {
		return nil, fmt.Errorf("%w: %d open", ErrLimitReached, len(r.sessions))
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = "Untitled template"
	}

	doc := document.New()
	if !cmd.Empty {
		doc = document.NewSeeded(r.factory)
	}

	now := r.now()
	s := &Session{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		updatedAt: now,
		doc:       doc,
	}
	r.sessions[s.ID] = s

	r.logger.Info("session created", "id", s.ID, "name", s.Name, "blocks", doc.Len())
	return s.view(), nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*View, error) {
	var v *View
	err := r.with(id, false, func(s *Session) error {
		v = s.view()
		return nil
	})
	return v, err
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	if err := r.exporter.Purge(ctx, id); err != nil {
		return fmt.Errorf("purge exports: %w", err)
	}

	r.logger.Info("session deleted", "id", id)
	return nil
}

func (r *repo) AddBlock(ctx context.Context, id uuid.UUID, variant blocks.Variant) (*blocks.Block, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	var b blocks.Block
	err := r.with(id, true, func(s *Session) error {
		if r.maxBlocks > 0 && s.doc.Len() >= r.maxBlocks {
			return fmt.Errorf("%w: %d blocks", ErrTooManyBlocks, s.doc.Len())
		}
		b = r.factory.New(variant)
		s.doc.Append(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) RemoveBlock(ctx context.Context, id, blockID uuid.UUID) (*View, error) {
	return r.mutate(id, func(d *document.Document) error {
		d.Remove(blockID)
		return nil
	})
}

func (r *repo) UpdateContent(ctx context.Context, id, blockID uuid.UUID, patch blocks.ContentPatch) (*View, error) {
	return r.mutate(id, func(d *document.Document) error {
		return d.UpdateContent(blockID, patch)
	})
}

func (r *repo) UpdateStyle(ctx context.Context, id, blockID uuid.UUID, patch blocks.StylePatch) (*View, error) {
	return r.mutate(id, func(d *document.Document) error {
		d.UpdateStyle(blockID, patch)
		return nil
	})
}

func (r *repo) Reorder(ctx context.Context, id uuid.UUID, order []uuid.UUID) (*View, error) {
	return r.mutate(id, func(d *document.Document) error {
		return d.Reorder(order)
	})
}

func (r *repo) Move(ctx context.Context, id, blockID uuid.UUID, index int) (*View, error) {
	return r.mutate(id, func(d *document.Document) error {
		return d.Move(blockID, index)
	})
}

func (r *repo) Select(ctx context.Context, id uuid.UUID, blockID *uuid.UUID) (*View, error) {
	return r.mutate(id, func(d *document.Document) error {
		if blockID == nil {
			d.Deselect()
			return nil
		}
		if !d.Select(*blockID) {
			return fmt.Errorf("%w: %s", ErrBlockNotFound, *blockID)
		}
		return nil
	})
}

func (r *repo) Clear(ctx context.Context, id uuid.UUID) (*View, error) {
	return r.mutate(id, func(d *document.Document) error {
		d.Clear()
		return nil
	})
}

func (r *repo) Render(ctx context.Context, id uuid.UUID) (string, error) {
	var out string
	err := r.with(id, false, func(s *Session) error {
		out = r.serializer.SerializeDocument(s.doc)
		return nil
	})
	return out, err
}

func (r *repo) CodeView(ctx context.Context, id uuid.UUID) (string, error) {
	canonical, err := r.Render(ctx, id)
	if err != nil {
		return "", err
	}
	return render.Format(canonical), nil
}

func (r *repo) Export(ctx context.Context, id uuid.UUID, format export.Format) (*export.Artifact, error) {
	canonical, err := r.Render(ctx, id)
	if err != nil {
		return nil, err
	}

	artifact, err := r.exporter.Build(canonical, format)
	if err != nil {
		return nil, err
	}

	if err := r.exporter.Archive(ctx, id, artifact); err != nil {
		return nil, err
	}

	// A session removed while the artifact was built has already had its
	// exports purged.
	if _, err := r.lookup(id); err != nil {
		if perr := r.exporter.Purge(ctx, id); perr != nil {
			r.logger.Error("purge orphaned export failed", "id", id, "error", perr)
		}
		return nil, err
	}

	return artifact, nil
}

func (r *repo) Exports(ctx context.Context, id uuid.UUID) ([]string, error) {
	if _, err := r.lookup(id); err != nil {
		return nil, err
	}
	return r.exporter.List(ctx, id)
}

func (r *repo) Download(ctx context.Context, id uuid.UUID, filename string) (*export.Artifact, error) {
	if _, err := r.lookup(id); err != nil {
		return nil, err
	}
	return r.exporter.Retrieve(ctx, id, filename)
}

func (r *repo) Start(lc *lifecycle.Coordinator) error {
	if r.ttl <= 0 {
		return nil
	}

	interval := min(max(r.ttl/4, time.Second), time.Minute)
	r.logger.Info("starting session sweeper", "ttl", r.ttl, "interval", interval)

	lc.OnShutdown(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-lc.Context().Done():
				r.logger.Info("session sweeper stopped")
				return
			case <-ticker.C:
				r.sweep(lc.Context())
			}
		}
	})

	return nil
}

// sweep evicts sessions idle for longer than the ttl.
func (r *repo) sweep(ctx context.Context) int {
	cutoff := r.now().Add(-r.ttl)

	var expired []uuid.UUID
	r.mu.Lock()
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := s.updatedAt.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			expired = append(expired, id)
		}
	}
	r.mu.Unlock()

	for _, id := range expired {
		if err := r.exporter.Purge(ctx, id); err != nil {
			r.logger.Error("purge expired session exports failed", "id", id, "error", err)
		}
	}
	if len(expired) > 0 {
		r.logger.Info("idle sessions evicted", "count", len(expired))
	}
	return len(expired)
}

func (r *repo) lookup(id uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// with runs fn while holding the session's lock. When touch is set and fn
// succeeds, the session's idle clock is reset.
func (r *repo) with(id uuid.UUID, touch bool, fn func(*Session) error) error {
	s, err := r.lookup(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s); err != nil {
		return err
	}
	if touch {
		s.touch(r.now())
	}
	return nil
}

// mutate applies fn to the session's document and resets the idle clock on
// success.
func (r *repo) mutate(id uuid.UUID, fn func(*document.Document) error) (*View, error) {
	s, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return nil, err
	}
	s.touch(r.now())
	return s.view(), nil
}
