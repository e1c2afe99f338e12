package blocks

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultPlaceholderImage is the image source given to new image blocks.
const DefaultPlaceholderImage = "https://placehold.co/600x200"

// Defaults configures the factory's variant defaults.
type Defaults struct {
	PlaceholderImage string
}

// Factory creates blocks with fresh ids and variant-specific defaults.
type Factory struct {
	placeholder string
	newID       func() uuid.UUID
}

// NewFactory creates a block factory.
func NewFactory(d Defaults) *Factory {
	if d.PlaceholderImage == "" {
		d.PlaceholderImage = DefaultPlaceholderImage
	}
	return &Factory{
		placeholder: d.PlaceholderImage,
		newID:       uuid.New,
	}
}

// Create parses a variant name and returns a new block of that variant.
func (f *Factory) Create(variant string) (Block, error) {
	v, err := ParseVariant(variant)
	if err != nil {
		return Block{}, err
	}
	return f.New(v), nil
}

// New returns a new block of variant v. It panics if v is not a valid
// variant; use Create for untrusted input.
func (f *Factory) New(v Variant) Block {
	b := Block{ID: f.newID()}

	switch v {
	case VariantHeading:
		b.Payload = Heading{Content: "New Heading"}
		b.Style = Style{
			Color:      "#1f2937",
			FontSize:   "24px",
			FontWeight: "bold",
			TextAlign:  "center",
		}
	case VariantText:
		b.Payload = Text{Content: "Enter your text here..."}
		b.Style = Style{
			Color:      "#374151",
			FontSize:   "16px",
			TextAlign:  "left",
			LineHeight: "1.5",
		}
	case VariantButton:
		b.Payload = Button{Content: "Click Me", URL: "#"}
		b.Style = Style{
			Color:           "#ffffff",
			BackgroundColor: "#3b82f6",
			FontWeight:      "bold",
			Padding:         "12px 24px",
			BorderRadius:    "8px",
			Display:         "inline-block",
		}
	case VariantImage:
		b.Payload = Image{URL: f.placeholder}
		b.Style = Style{
			Width:   "100%",
			Display: "block",
		}
	case VariantDivider:
		b.Payload = Divider{}
		b.Style = Style{
			Margin:    "20px 0",
			BorderTop: "1px solid #e5e7eb",
		}
	default:
		panic(fmt.Sprintf("blocks: factory called with invalid variant %q", string(v)))
	}

	return b
}
