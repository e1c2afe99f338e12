package sessions

import (
	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/pkg/openapi"
)

type spec struct {
	List          *openapi.Operation
	Create        *openapi.Operation
	Find          *openapi.Operation
	Delete        *openapi.Operation
	AddBlock      *openapi.Operation
	Clear         *openapi.Operation
	RemoveBlock   *openapi.Operation
	UpdateContent *openapi.Operation
	UpdateStyle   *openapi.Operation
	Move          *openapi.Operation
	Reorder       *openapi.Operation
	Select        *openapi.Operation
	Render        *openapi.Operation
	CodeView      *openapi.Operation
	Exports       *openapi.Operation
	Export        *openapi.Operation
	Download      *openapi.Operation
}

var sessionParam = openapi.PathParam("id", "Session UUID")
var blockParam = openapi.PathParam("block", "Block UUID")

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List sessions",
		Description: "Returns a paginated list of open editing sessions",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches name)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of sessions", "SessionPageResult"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create session",
		Description: "Opens an editing session. The document is seeded with a heading, paragraph, and button unless empty is set",
		RequestBody: openapi.RequestBodyJSON("CreateSessionCommand", false),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			429: openapi.ResponseRef("TooManyRequests"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get session",
		Description: "Returns the session's blocks in order and its selection",
		Parameters:  []*openapi.Parameter{sessionParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete session",
		Description: "Closes a session and removes its archived exports",
		Parameters:  []*openapi.Parameter{sessionParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Session deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AddBlock: &openapi.Operation{
		Summary:     "Add block",
		Description: "Appends a block of the given variant with default content and style",
		Parameters:  []*openapi.Parameter{sessionParam},
		RequestBody: openapi.RequestBodyJSON("AddBlockCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created block", "Block"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("Unprocessable"),
		},
	},
	Clear: &openapi.Operation{
		Summary:     "Clear canvas",
		Description: "Removes every block and the selection",
		Parameters:  []*openapi.Parameter{sessionParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	RemoveBlock: &openapi.Operation{
		Summary:     "Remove block",
		Description: "Removes a block. Removing an absent block changes nothing",
		Parameters:  []*openapi.Parameter{sessionParam, blockParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateContent: &openapi.Operation{
		Summary:     "Update block content",
		Description: "Merges content and url into a block. Fields the variant does not carry are rejected",
		Parameters:  []*openapi.Parameter{sessionParam, blockParam},
		RequestBody: openapi.RequestBodyJSON("ContentPatch", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateStyle: &openapi.Operation{
		Summary:     "Update block style",
		Description: "Merges style properties into a block. An empty value removes the property",
		Parameters:  []*openapi.Parameter{sessionParam, blockParam},
		RequestBody: openapi.RequestBodyJSON("StylePatch", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Move: &openapi.Operation{
		Summary:     "Move block",
		Description: "Moves a block to a new index, shifting the others",
		Parameters:  []*openapi.Parameter{sessionParam, blockParam},
		RequestBody: openapi.RequestBodyJSON("MoveCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Reorder: &openapi.Operation{
		Summary:     "Reorder blocks",
		Description: "Replaces the block order. The order must list every block id exactly once",
		Parameters:  []*openapi.Parameter{sessionParam},
		RequestBody: openapi.RequestBodyJSON("ReorderCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Select: &openapi.Operation{
		Summary:     "Select block",
		Description: "Points the selection at a block. A null block_id clears the selection",
		Parameters:  []*openapi.Parameter{sessionParam},
		RequestBody: openapi.RequestBodyJSON("SelectCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Render: &openapi.Operation{
		Summary:     "Render HTML",
		Description: "Returns the canonical email HTML for the session's document",
		Parameters:  []*openapi.Parameter{sessionParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseText("Canonical HTML", "text/html"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	CodeView: &openapi.Operation{
		Summary:     "Code view",
		Description: "Returns the canonical HTML with a line break between adjacent tags",
		Parameters:  []*openapi.Parameter{sessionParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseText("Formatted HTML", "text/plain"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Exports: &openapi.Operation{
		Summary:     "List exports",
		Description: "Returns the filenames archived for the session",
		Parameters:  []*openapi.Parameter{sessionParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Archived filenames", "ExportList"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Export: &openapi.Operation{
		Summary:     "Export template",
		Description: "Packages the canonical HTML, archives it, and returns it as a download",
		Parameters: []*openapi.Parameter{
			sessionParam,
			{
				Name:        "format",
				In:          "query",
				Description: "Artifact format (default html)",
				Schema:      &openapi.Schema{Type: "string", Enum: exportFormats()},
			},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseText("Exported artifact", "application/octet-stream"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("TooLarge"),
		},
	},
	Download: &openapi.Operation{
		Summary:     "Download export",
		Description: "Returns a previously archived artifact",
		Parameters: []*openapi.Parameter{
			sessionParam,
			{
				Name:     "filename",
				In:       "path",
				Required: true,
				Schema:   &openapi.Schema{Type: "string", Example: "email-template.html"},
			},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseText("Archived artifact", "application/octet-stream"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func exportFormats() []string {
	formats := export.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

func variantNames() []string {
	variants := blocks.Variants()
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = string(v)
	}
	return names
}

func styleSchema() *openapi.Schema {
	props := make(map[string]*openapi.Schema, len(blocks.Properties()))
	for _, p := range blocks.Properties() {
		props[string(p)] = &openapi.Schema{Type: "string", Description: p.CSSName()}
	}
	return &openapi.Schema{Type: "object", Properties: props}
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Block": {
			Type:     "object",
			Required: []string{"id", "variant", "style"},
			Properties: map[string]*openapi.Schema{
				"id":      {Type: "string", Format: "uuid"},
				"variant": {Type: "string", Enum: variantNames()},
				"content": {Type: "string", Description: "Text for heading, text, and button blocks"},
				"url":     {Type: "string", Description: "Link for button blocks, source for image blocks"},
				"style":   openapi.SchemaRef("Style"),
			},
		},
		"Style": styleSchema(),
		"Session": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"name":       {Type: "string"},
				"blocks":     {Type: "array", Items: openapi.SchemaRef("Block")},
				"selected":   {Type: "string", Format: "uuid", Nullable: true},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"SessionSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"block_count": {Type: "integer"},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"SessionPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("SessionSummary")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"CreateSessionCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":  {Type: "string", Example: "Spring newsletter"},
				"empty": {Type: "boolean", Description: "Start with an empty canvas"},
			},
		},
		"AddBlockCommand": {
			Type:     "object",
			Required: []string{"variant"},
			Properties: map[string]*openapi.Schema{
				"variant": {Type: "string", Enum: variantNames()},
			},
		},
		"ContentPatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"content": {Type: "string"},
				"url":     {Type: "string"},
			},
		},
		"StylePatch": {
			Type:                 "object",
			Description:          "Style properties to set. An empty string removes the property",
			AdditionalProperties: &openapi.Schema{Type: "string"},
		},
		"MoveCommand": {
			Type:     "object",
			Required: []string{"index"},
			Properties: map[string]*openapi.Schema{
				"index": {Type: "integer"},
			},
		},
		"ReorderCommand": {
			Type:     "object",
			Required: []string{"order"},
			Properties: map[string]*openapi.Schema{
				"order": {Type: "array", Items: &openapi.Schema{Type: "string", Format: "uuid"}},
			},
		},
		"SelectCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"block_id": {Type: "string", Format: "uuid", Nullable: true},
			},
		},
		"ExportList": {
			Type:  "array",
			Items: &openapi.Schema{Type: "string"},
		},
	}
}
