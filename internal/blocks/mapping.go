package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type blockJSON struct {
	ID      uuid.UUID `json:"id"`
	Variant Variant   `json:"variant"`
	Content *string   `json:"content,omitempty"`
	URL     *string   `json:"url,omitempty"`
	Style   Style     `json:"style"`
}

// MarshalJSON encodes the block with only the fields meaningful for its
// variant.
func (b Block) MarshalJSON() ([]byte, error) {
	if b.Payload == nil {
		return nil, fmt.Errorf("marshal block %s: missing payload", b.ID)
	}

	out := blockJSON{
		ID:      b.ID,
		Variant: b.Variant(),
		Style:   b.Style,
	}
	if c, ok := b.Content(); ok {
		out.Content = &c
	}
	if u, ok := b.URL(); ok {
		out.URL = &u
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a block, rejecting unknown variants and fields that
// are not meaningful for the variant.
func (b *Block) UnmarshalJSON(data []byte) error {
	var in blockJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if err := in.Variant.Validate(); err != nil {
		return err
	}

	patch := ContentPatch{Content: in.Content, URL: in.URL}
	if err := patch.Check(in.Variant); err != nil {
		return err
	}

	payload, err := patch.Apply(emptyPayload(in.Variant))
	if err != nil {
		return err
	}

	*b = Block{
		ID:      in.ID,
		Style:   in.Style,
		Payload: payload,
	}
	return nil
}

func emptyPayload(v Variant) Payload {
	switch v {
	case VariantHeading:
		return Heading{}
	case VariantText:
		return Text{}
	case VariantButton:
		return Button{}
	case VariantImage:
		return Image{}
	default:
		return Divider{}
	}
}
