package notion

// Page is a Notion page as returned by the query and update endpoints.
// Only the fields the updater needs are decoded.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// queryPayload is the body for POST /v1/databases/{id}/query.
type queryPayload struct {
	Filter   queryFilter `json:"filter"`
	PageSize int         `json:"page_size"`
}

// queryFilter matches a rich-text property by exact value.
type queryFilter struct {
	Property string         `json:"property"`
	RichText richTextEquals `json:"rich_text"`
}

type richTextEquals struct {
	Equals string `json:"equals"`
}

// queryResponse wraps the results array from a database query.
type queryResponse struct {
	Results []Page `json:"results"`
}

// PageUpdate is the body for PATCH /v1/pages/{id}.
type PageUpdate struct {
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyValue is a single property payload. Exactly one field is set.
type PropertyValue struct {
	Status *StatusValue `json:"status,omitempty"`
	URL    string       `json:"url,omitempty"`
}

// StatusValue names a status option.
type StatusValue struct {
	Name string `json:"name"`
}

// Block is a Notion block payload for the append-children endpoint.
// Exactly one of the content fields is set, matching Type.
type Block struct {
	Object    string        `json:"object"`
	Type      string        `json:"type"`
	Heading2  *BlockContent `json:"heading_2,omitempty"`
	Bulleted  *BlockContent `json:"bulleted_list_item,omitempty"`
	Paragraph *BlockContent `json:"paragraph,omitempty"`
}

// BlockContent carries the rich text of a block.
type BlockContent struct {
	RichText []RichText `json:"rich_text"`
}

// RichText is a plain text span.
type RichText struct {
	Type string   `json:"type"`
	Text TextSpan `json:"text"`
}

// TextSpan holds the literal content of a rich text span.
type TextSpan struct {
	Content string `json:"content"`
}

// appendPayload is the body for PATCH /v1/blocks/{id}/children.
type appendPayload struct {
	Children []Block `json:"children"`
}
