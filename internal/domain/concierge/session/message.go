package session

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
)

type Role string

const (
	RoleGuest     Role = "guest"
	RoleConcierge Role = "concierge"
)

type MessageType string

const (
	TypeText   MessageType = "text"
	TypeModule MessageType = "module"
)

// ModuleKind discriminates the structured payload union. Validate the kind
// before touching kind-specific fields.
type ModuleKind string

const (
	ModuleFilterPrompt    ModuleKind = "filter_prompt"
	ModuleQuickStarts     ModuleKind = "quick_starts"
	ModuleProductCarousel ModuleKind = "product_carousel"
	ModuleOrderLookup     ModuleKind = "order_lookup_form"
	ModuleOrderTimeline   ModuleKind = "order_timeline"
	ModuleReturnOptions   ModuleKind = "return_options"
	ModuleEscalationForm  ModuleKind = "escalation_form"
	ModuleInfoCard        ModuleKind = "info_card"
	ModuleCsatPrompt      ModuleKind = "csat_prompt"
)

// Module is the closed union of structured widget payloads. Exactly one
// kind-specific field is set, matching Kind.
type Module struct {
	Kind ModuleKind `json:"kind"`

	FilterPrompt    *FilterPromptModule    `json:"filterPrompt,omitempty"`
	QuickStarts     *QuickStartsModule     `json:"quickStarts,omitempty"`
	ProductCarousel *ProductCarouselModule `json:"productCarousel,omitempty"`
	OrderLookup     *OrderLookupModule     `json:"orderLookup,omitempty"`
	OrderTimeline   *OrderTimelineModule   `json:"orderTimeline,omitempty"`
	ReturnOptions   *ReturnOptionsModule   `json:"returnOptions,omitempty"`
	EscalationForm  *EscalationFormModule  `json:"escalationForm,omitempty"`
	InfoCard        *InfoCardModule        `json:"infoCard,omitempty"`
	CsatPrompt      *CsatPromptModule      `json:"csatPrompt,omitempty"`
}

type FilterPromptModule struct {
	Prompt string   `json:"prompt"`
	Facets []string `json:"facets"`
}

type QuickStartsModule struct {
	Options []QuickStartOption `json:"options"`
}

type QuickStartOption struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type ProductCarouselModule struct {
	Products []filters.ProductSummary `json:"products"`
	Applied  *filters.Filters         `json:"applied,omitempty"`
	Loosened []string                 `json:"loosened,omitempty"`
}

type OrderLookupModule struct {
	Prompt string `json:"prompt"`
}

type TimelineEntry struct {
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
	State  string `json:"state"` // complete | current | upcoming
}

type OrderTimelineModule struct {
	Reference string          `json:"reference"`
	Entries   []TimelineEntry `json:"entries"`
}

type ReturnOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type ReturnOptionsModule struct {
	Options []ReturnOption `json:"options"`
}

type EscalationFormModule struct {
	Prompt string   `json:"prompt"`
	Fields []string `json:"fields"`
}

type InfoCardModule struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CsatPromptModule struct {
	Question string   `json:"question"`
	Ratings  []string `json:"ratings"`
}

// Message is one chat turn. Type is fully determined by the payload: string
// payloads are text, module payloads are modules. The constructors are the
// only way this package produces messages, so the two never disagree.
type Message struct {
	ID        string        `json:"id"`
	Role      Role          `json:"role"`
	Type      MessageType   `json:"type"`
	Text      string        `json:"text,omitempty"`
	Module    *Module       `json:"module,omitempty"`
	Intent    intent.Intent `json:"intent,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

func NewText(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Type:      TypeText,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

func NewModule(role Role, m Module) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Type:      TypeModule,
		Module:    &m,
		Timestamp: time.Now().UTC(),
	}
}

// MarshalJSON re-derives Type from the payload so a hand-built Message can
// never serialize inconsistently.
func (m Message) MarshalJSON() ([]byte, error) {
	type alias Message
	if m.Module != nil {
		m.Type = TypeModule
	} else {
		m.Type = TypeText
	}
	return json.Marshal(alias(m))
}
