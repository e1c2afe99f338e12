package config

import (
	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/internal/sessions"
)

var designerEnv = &sessions.Env{
	ContentPolicy:    "DESIGNER_CONTENT_POLICY",
	FallbackURL:      "DESIGNER_FALLBACK_URL",
	PlaceholderImage: "DESIGNER_PLACEHOLDER_IMAGE",
	MaxSessions:      "DESIGNER_MAX_SESSIONS",
	MaxBlocks:        "DESIGNER_MAX_BLOCKS",
	SessionTTL:       "DESIGNER_SESSION_TTL",
}

var exportEnv = &export.Env{
	From:    "EXPORT_FROM",
	Subject: "EXPORT_SUBJECT",
	MaxSize: "EXPORT_MAX_SIZE",
}

// DesignerConfig configures editing sessions and rendering.
type DesignerConfig = sessions.Config

// ExportConfig configures artifact packaging.
type ExportConfig = export.Config
