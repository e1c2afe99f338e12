// Package blocks defines the email template block model: the closed set of
// block variants, their style record, and the factory that produces blocks
// with variant-specific defaults.
package blocks

import (
	"fmt"

	"github.com/google/uuid"
)

// Variant is the closed tag distinguishing block kinds.
type Variant string

// Block variants.
const (
	VariantHeading Variant = "heading"
	VariantText    Variant = "text"
	VariantImage   Variant = "image"
	VariantButton  Variant = "button"
	VariantDivider Variant = "divider"
)

// Variants returns every variant in palette order.
func Variants() []Variant {
	return []Variant{VariantHeading, VariantText, VariantImage, VariantButton, VariantDivider}
}

// Validate checks that v is one of the five block variants.
func (v Variant) Validate() error {
	switch v {
	case VariantHeading, VariantText, VariantImage, VariantButton, VariantDivider:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
}

// ParseVariant converts a variant name into a Variant.
func ParseVariant(name string) (Variant, error) {
	v := Variant(name)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// HasContent reports whether blocks of this variant carry visible text.
func (v Variant) HasContent() bool {
	return v == VariantHeading || v == VariantText || v == VariantButton
}

// HasURL reports whether blocks of this variant carry a link or source.
func (v Variant) HasURL() bool {
	return v == VariantButton || v == VariantImage
}

// Payload is the variant-specific part of a block. The set of
// implementations is closed to this package.
type Payload interface {
	Variant() Variant
	payload()
}

// Heading is a heading-level line of text.
type Heading struct {
	Content string
}

// Text is a paragraph of body copy.
type Text struct {
	Content string
}

// Button is a call-to-action link rendered as a button.
type Button struct {
	Content string
	URL     string
}

// Image is an image referenced by URL.
type Image struct {
	URL string
}

// Divider is a horizontal rule.
type Divider struct{}

func (Heading) Variant() Variant { return VariantHeading }
func (Text) Variant() Variant    { return VariantText }
func (Button) Variant() Variant  { return VariantButton }
func (Image) Variant() Variant   { return VariantImage }
func (Divider) Variant() Variant { return VariantDivider }

func (Heading) payload() {}
func (Text) payload()    {}
func (Button) payload()  {}
func (Image) payload()   {}
func (Divider) payload() {}

// Block is one typed content unit of a template.
type Block struct {
	ID      uuid.UUID
	Style   Style
	Payload Payload
}

// Variant returns the block's variant tag.
func (b Block) Variant() Variant {
	return b.Payload.Variant()
}

// Content returns the visible text for variants that carry it.
func (b Block) Content() (string, bool) {
	switch p := b.Payload.(type) {
	case Heading:
		return p.Content, true
	case Text:
		return p.Content, true
	case Button:
		return p.Content, true
	default:
		return "", false
	}
}

// URL returns the link target or image source for variants that carry one.
func (b Block) URL() (string, bool) {
	switch p := b.Payload.(type) {
	case Button:
		return p.URL, true
	case Image:
		return p.URL, true
	default:
		return "", false
	}
}

// ContentPatch is a partial update of a block's content fields. Nil fields
// are left untouched.
type ContentPatch struct {
	Content *string `json:"content,omitempty"`
	URL     *string `json:"url,omitempty"`
}

// Check reports ErrInapplicableField when the patch sets a field that is not
// meaningful for v.
func (p ContentPatch) Check(v Variant) error {
	if p.Content != nil && !v.HasContent() {
		return fmt.Errorf("%w: content on %s", ErrInapplicableField, v)
	}
	if p.URL != nil && !v.HasURL() {
		return fmt.Errorf("%w: url on %s", ErrInapplicableField, v)
	}
	return nil
}

// Apply returns the payload with the patch merged in.
func (p ContentPatch) Apply(payload Payload) (Payload, error) {
	if err := p.Check(payload.Variant()); err != nil {
		return payload, err
	}

	switch v := payload.(type) {
	case Heading:
		if p.Content != nil {
			v.Content = *p.Content
		}
		return v, nil
	case Text:
		if p.Content != nil {
			v.Content = *p.Content
		}
		return v, nil
	case Button:
		if p.Content != nil {
			v.Content = *p.Content
		}
		if p.URL != nil {
			v.URL = *p.URL
		}
		return v, nil
	case Image:
		if p.URL != nil {
			v.URL = *p.URL
		}
		return v, nil
	default:
		return payload, nil
	}
}
