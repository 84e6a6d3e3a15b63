package menu

// DefaultListElement is the tag used to wrap each rendered item.
const DefaultListElement = "li"

// Item is a single menu entry: either a *Link or a *Raw.
type Item interface {
	// listElement returns the wrapping tag and its attributes.
	listElement() (string, Attributes)
}

// Link is a menu entry pointing to a URL, optionally with a nested menu.
type Link struct {
	// URL is the unprefixed target of the link. It is also what gets compared
	// against the current path to decide whether the entry is active.
	URL string `json:"url"`

	// Title is the link text.
	Title string `json:"title"`

	// Children is the nested menu owned by this entry, nil when there is none.
	Children *Items `json:"children,omitempty"`

	// LinkAttributes are applied to the anchor element.
	LinkAttributes Attributes `json:"link_attributes,omitempty"`

	// ListAttributes are applied to the wrapping list element.
	ListAttributes Attributes `json:"list_attributes,omitempty"`

	// ListElement is the wrapping tag, "li" when empty.
	ListElement string `json:"list_element,omitempty"`
}

func (l *Link) listElement() (string, Attributes) {
	return tagOrDefault(l.ListElement), l.ListAttributes
}

// Raw is a menu entry holding caller supplied markup that is emitted verbatim.
type Raw struct {
	HTML           string     `json:"html"`
	ListAttributes Attributes `json:"list_attributes,omitempty"`
	ListElement    string     `json:"list_element,omitempty"`
}

func (r *Raw) listElement() (string, Attributes) {
	return tagOrDefault(r.ListElement), r.ListAttributes
}

func tagOrDefault(tag string) string {
	if tag == "" {
		return DefaultListElement
	}
	return tag
}

// ItemOption configures an item appended with Add or Raw.
type ItemOption func(*itemConfig)

type itemConfig struct {
	children       *Items
	linkAttributes Attributes
	listAttributes Attributes
	listElement    string
}

// WithChildren nests the given menu below a link. It is ignored for raw items.
func WithChildren(children *Items) ItemOption {
	return func(c *itemConfig) { c.children = children }
}

// WithLinkAttributes sets the anchor attributes of a link.
// It is ignored for raw items.
func WithLinkAttributes(attrs Attributes) ItemOption {
	return func(c *itemConfig) { c.linkAttributes = attrs.Clone() }
}

// WithListAttributes sets the attributes of the wrapping list element.
func WithListAttributes(attrs Attributes) ItemOption {
	return func(c *itemConfig) { c.listAttributes = attrs.Clone() }
}

// WithListElement replaces the default "li" wrapping tag.
func WithListElement(tag string) ItemOption {
	return func(c *itemConfig) { c.listElement = tag }
}

func newItemConfig(opts []ItemOption) *itemConfig {
	c := &itemConfig{
		linkAttributes: Attributes{},
		listAttributes: Attributes{},
		listElement:    DefaultListElement,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// copyItem returns a shallow copy of item with its own attribute maps.
// Children are shared with item.
func copyItem(item Item) Item {
	switch v := item.(type) {
	case *Link:
		c := *v
		c.LinkAttributes = v.LinkAttributes.Clone()
		c.ListAttributes = v.ListAttributes.Clone()
		return &c
	case *Raw:
		c := *v
		c.ListAttributes = v.ListAttributes.Clone()
		return &c
	default:
		return item
	}
}
