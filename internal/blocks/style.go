package blocks

import (
	"fmt"
	"strings"
)

// Property names one entry of the style vocabulary, in its camelCase form.
type Property string

// Style vocabulary.
const (
	PropColor           Property = "color"
	PropBackgroundColor Property = "backgroundColor"
	PropFontSize        Property = "fontSize"
	PropFontWeight      Property = "fontWeight"
	PropTextAlign       Property = "textAlign"
	PropPadding         Property = "padding"
	PropMargin          Property = "margin"
	PropBorderRadius    Property = "borderRadius"
	PropLineHeight      Property = "lineHeight"
	PropWidth           Property = "width"
	PropDisplay         Property = "display"
	PropBorderTop       Property = "borderTop"
)

var properties = []Property{
	PropColor,
	PropBackgroundColor,
	PropFontSize,
	PropFontWeight,
	PropTextAlign,
	PropPadding,
	PropMargin,
	PropBorderRadius,
	PropLineHeight,
	PropWidth,
	PropDisplay,
	PropBorderTop,
}

// Properties returns the vocabulary in rendering order.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

// ParseProperty resolves a camelCase property name.
func ParseProperty(name string) (Property, error) {
	p := Property(name)
	if p.CSSName() == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return p, nil
}

// CSSName returns the kebab-case declaration name, or "" for names
// outside the vocabulary.
func (p Property) CSSName() string {
	switch p {
	case PropColor:
		return "color"
	case PropBackgroundColor:
		return "background-color"
	case PropFontSize:
		return "font-size"
	case PropFontWeight:
		return "font-weight"
	case PropTextAlign:
		return "text-align"
	case PropPadding:
		return "padding"
	case PropMargin:
		return "margin"
	case PropBorderRadius:
		return "border-radius"
	case PropLineHeight:
		return "line-height"
	case PropWidth:
		return "width"
	case PropDisplay:
		return "display"
	case PropBorderTop:
		return "border-top"
	default:
		return ""
	}
}

// Style holds the presentation properties of a block. Values are already in
// final unit form ("24px", "#3b82f6", "center"); an empty value is absent and
// is not rendered.
type Style struct {
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
	TextAlign       string `json:"textAlign,omitempty"`
	Padding         string `json:"padding,omitempty"`
	Margin          string `json:"margin,omitempty"`
	BorderRadius    string `json:"borderRadius,omitempty"`
	LineHeight      string `json:"lineHeight,omitempty"`
	Width           string `json:"width,omitempty"`
	Display         string `json:"display,omitempty"`
	BorderTop       string `json:"borderTop,omitempty"`
}

// Get returns the value stored for p.
func (s Style) Get(p Property) string {
	if f := s.field(p); f != nil {
		return *f
	}
	return ""
}

// Set stores value for p. Unknown properties are ignored.
func (s *Style) Set(p Property, value string) {
	if f := s.field(p); f != nil {
		*f = value
	}
}

func (s *Style) field(p Property) *string {
	switch p {
	case PropColor:
		return &s.Color
	case PropBackgroundColor:
		return &s.BackgroundColor
	case PropFontSize:
		return &s.FontSize
	case PropFontWeight:
		return &s.FontWeight
	case PropTextAlign:
		return &s.TextAlign
	case PropPadding:
		return &s.Padding
	case PropMargin:
		return &s.Margin
	case PropBorderRadius:
		return &s.BorderRadius
	case PropLineHeight:
		return &s.LineHeight
	case PropWidth:
		return &s.Width
	case PropDisplay:
		return &s.Display
	case PropBorderTop:
		return &s.BorderTop
	default:
		return nil
	}
}

// Merge applies patch key-wise. Keys absent from the patch are untouched and
// an empty patch value clears the property.
func (s *Style) Merge(patch StylePatch) {
	for p, v := range patch {
		s.Set(p, v)
	}
}

// Len reports the number of present properties.
func (s Style) Len() int {
	n := 0
	for _, p := range properties {
		if s.Get(p) != "" {
			n++
		}
	}
	return n
}

// String renders the declarations as "css-name:value;" pairs in vocabulary
// order.
func (s Style) String() string {
	var b strings.Builder
	for _, p := range properties {
		v := s.Get(p)
		if v == "" {
			continue
		}
		b.WriteString(p.CSSName())
		b.WriteByte(':')
		b.WriteString(v)
		b.WriteByte(';')
	}
	return b.String()
}

// StylePatch is a partial style update keyed by property.
type StylePatch map[Property]string

// ParseStylePatch validates raw camelCase keys into a StylePatch.
func ParseStylePatch(raw map[string]string) (StylePatch, error) {
	patch := make(StylePatch, len(raw))
	for k, v := range raw {
		p, err := ParseProperty(k)
		if err != nil {
			return nil, err
		}
		patch[p] = v
	}
	return patch, nil
}
