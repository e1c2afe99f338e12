// Package export packages canonical email HTML into downloadable artifacts
// and archives them in blob storage.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/docker/go-units"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/JaimeStill/mail-designer/internal/render"
	"github.com/JaimeStill/mail-designer/pkg/storage"
)

// Artifact is one exported file.
type Artifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"-"`
}

// Exporter builds artifacts and stores them under exports/<session-id>/.
type Exporter struct {
	from    string
	subject string
	maxSize int64
	storage storage.System
	logger  *slog.Logger
}

// New creates an Exporter from a finalized Config.
func New(cfg *Config, store storage.System, logger *slog.Logger) *Exporter {
	return &Exporter{
		from:    cfg.From,
		subject: cfg.Subject,
		maxSize: cfg.MaxSizeBytes(),
		storage: store,
		logger:  logger.With("system", "export"),
	}
}

// Build packages canonical HTML in the given format. The html format
// returns the input bytes unmodified.
func (e *Exporter) Build(canonical string, format Format) (*Artifact, error) {
	var body []byte

	switch format {
	case FormatHTML:
		body = []byte(canonical)
	case FormatMin:
		minified, err := render.Minify(canonical)
		if err != nil {
			return nil, fmt.Errorf("minify: %w", err)
		}
		body = []byte(minified)
	case FormatText:
		body = []byte(render.PlainText(canonical))
	case FormatEML:
		msg, err := e.message(canonical)
		if err != nil {
			return nil, err
		}
		body = msg
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if e.maxSize > 0 && int64(len(body)) > e.maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %s",
			ErrTooLarge,
			units.HumanSize(float64(len(body))),
			units.HumanSize(float64(e.maxSize)),
		)
	}

	return &Artifact{
		Filename:    format.Filename(),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

// message writes a multipart/alternative message carrying the plain-text
// and HTML bodies. The message is only serialized, never sent.
func (e *Exporter) message(canonical string) ([]byte, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("Subject", e.subject)
	m.SetBody("text/plain", render.PlainText(canonical))
	m.AddAlternative("text/html", canonical)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write message: %w", err)
	}
	return buf.Bytes(), nil
}

// Archive stores a in the session's export folder, replacing any earlier
// export of the same format.
func (e *Exporter) Archive(ctx context.Context, sessionID uuid.UUID, a *Artifact) error {
	key := artifactKey(sessionID, a.Filename)
	if err := e.storage.Store(ctx, key, a.Body); err != nil {
		return fmt.Errorf("archive %s: %w", key, err)
	}
	e.logger.Info("artifact archived", "key", key, "size", len(a.Body))
	return nil
}

// Retrieve loads a previously archived artifact. Unknown filenames and
// missing artifacts fail with storage.ErrNotFound.
func (e *Exporter) Retrieve(ctx context.Context, sessionID uuid.UUID, filename string) (*Artifact, error) {
	format, ok := formatForFilename(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, filename)
	}

	body, err := e.storage.Retrieve(ctx, artifactKey(sessionID, filename))
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Filename:    filename,
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

// List returns the filenames archived for a session.
func (e *Exporter) List(ctx context.Context, sessionID uuid.UUID) ([]string, error) {
	keys, err := e.storage.List(ctx, sessionPrefix(sessionID))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = path.Base(k)
	}
	return names, nil
}

// Purge deletes every artifact archived for a session.
func (e *Exporter) Purge(ctx context.Context, sessionID uuid.UUID) error {
	keys, err := e.storage.List(ctx, sessionPrefix(sessionID))
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := e.storage.Delete(ctx, k); err != nil {
			return fmt.Errorf("purge %s: %w", k, err)
		}
	}
	if len(keys) > 0 {
		e.logger.Info("artifacts purged", "session_id", sessionID, "count", len(keys))
	}
	return nil
}

func sessionPrefix(sessionID uuid.UUID) string {
	return path.Join("exports", sessionID.String())
}

func artifactKey(sessionID uuid.UUID, filename string) string {
	return path.Join(sessionPrefix(sessionID), filename)
}
