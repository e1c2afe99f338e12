package sessions

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/pkg/handlers"
	"github.com/JaimeStill/mail-designer/pkg/pagination"
	"github.com/JaimeStill/mail-designer/pkg/routes"
)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/sessions",
		Tags:        []string{"Sessions"},
		Description: "Email template editing sessions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
			{Method: "POST", Pattern: "/{id}/blocks", Handler: h.AddBlock, OpenAPI: Spec.AddBlock},
			{Method: "DELETE", Pattern: "/{id}/blocks", Handler: h.Clear, OpenAPI: Spec.Clear},
			{Method: "DELETE", Pattern: "/{id}/blocks/{block}", Handler: h.RemoveBlock, OpenAPI: Spec.RemoveBlock},
			{Method: "PUT", Pattern: "/{id}/blocks/{block}/content", Handler: h.UpdateContent, OpenAPI: Spec.UpdateContent},
			{Method: "PUT", Pattern: "/{id}/blocks/{block}/style", Handler: h.UpdateStyle, OpenAPI: Spec.UpdateStyle},
			{Method: "POST", Pattern: "/{id}/blocks/{block}/move", Handler: h.Move, OpenAPI: Spec.Move},
			{Method: "PUT", Pattern: "/{id}/order", Handler: h.Reorder, OpenAPI: Spec.Reorder},
			{Method: "POST", Pattern: "/{id}/selection", Handler: h.Select, OpenAPI: Spec.Select},
			{Method: "GET", Pattern: "/{id}/html", Handler: h.Render, OpenAPI: Spec.Render},
			{Method: "GET", Pattern: "/{id}/code", Handler: h.CodeView, OpenAPI: Spec.CodeView},
			{Method: "GET", Pattern: "/{id}/exports", Handler: h.Exports, OpenAPI: Spec.Exports},
			{Method: "POST", Pattern: "/{id}/exports", Handler: h.Export, OpenAPI: Spec.Export},
			{Method: "GET", Pattern: "/{id}/exports/{filename}", Handler: h.Download, OpenAPI: Spec.Download},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddBlock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var cmd AddBlockCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	variant, err := blocks.ParseVariant(cmd.Variant)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.AddBlock(r.Context(), id, variant)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.sys.Clear(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) RemoveBlock(w http.ResponseWriter, r *http.Request) {
	id, blockID, ok := h.blockPath(w, r)
	if !ok {
		return
	}

	result, err := h.sys.RemoveBlock(r.Context(), id, blockID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, blockID, ok := h.blockPath(w, r)
	if !ok {
		return
	}

	var patch blocks.ContentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.UpdateContent(r.Context(), id, blockID, patch)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) UpdateStyle(w http.ResponseWriter, r *http.Request) {
	id, blockID, ok := h.blockPath(w, r)
	if !ok {
		return
	}

	var raw map[string]string
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	patch, err := blocks.ParseStylePatch(raw)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.UpdateStyle(r.Context(), id, blockID, patch)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	id, blockID, ok := h.blockPath(w, r)
	if !ok {
		return
	}

	var cmd MoveCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Move(r.Context(), id, blockID, cmd.Index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var cmd ReorderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Reorder(r.Context(), id, cmd.Order)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var cmd SelectCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Select(r.Context(), id, cmd.BlockID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	out, err := h.sys.Render(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondContent(w, http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

func (h *Handler) CodeView(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	out, err := h.sys.CodeView(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondContent(w, http.StatusOK, "text/plain; charset=utf-8", []byte(out))
}

func (h *Handler) Exports(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.sys.Exports(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	artifact, err := h.sys.Export(r.Context(), id, format)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondAttachment(w, artifact.Filename, artifact.ContentType, artifact.Body)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	artifact, err := h.sys.Download(r.Context(), id, r.PathValue("filename"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondAttachment(w, artifact.Filename, artifact.ContentType, artifact.Body)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) blockPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	blockID, ok := h.pathID(w, r, "block")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return id, blockID, true
}
