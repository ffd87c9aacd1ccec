package domain

const (
	ChannelTopic = "channel"
	PaymentTopic = "payment"

	ChannelStateError = "error"
)

type EventType int

const (
	EventTypeUndefined EventType = iota

	// Channel
	EventTypeChannelReady
	EventTypeChannelPending
	EventTypeFundingChannelStart
	EventTypeFundingChannelEnd
	EventTypeCloseChannel
	EventTypeChannel
)

const (
	// Payment
	EventTypePayment EventType = iota + 100
)

func (t EventType) String() string {
	switch t {
	case EventTypeChannelReady:
		return "channel_ready"
	case EventTypeChannelPending:
		return "channel_pending"
	case EventTypeFundingChannelStart:
		return "funding_channel_start"
	case EventTypeFundingChannelEnd:
		return "funding_channel_end"
	case EventTypeCloseChannel:
		return "close_channel"
	case EventTypeChannel:
		return "channel_event"
	case EventTypePayment:
		return "payment_event"
	default:
		return "undefined"
	}
}

// Event is a node level notification broadcast to every subscriber.
// Events carry already finalized data and are never mutated after emission.
type Event interface {
	GetTopic() string
	GetType() EventType
}

type ChannelReady struct {
	CounterpartyNodeID string `json:"counterparty_node_id"`
	ChannelID          string `json:"channel_id"`
	ChannelType        string `json:"channel_type"`
}

type ChannelPending struct {
	CounterpartyNodeID string `json:"counterparty_node_id"`
	FundingOutpoint    string `json:"funding_outpoint"`
}

type FundingChannelStart struct {
	CounterpartyNodeID string `json:"counterparty_node_id"`
	TemporaryChannelID string `json:"temporary_channel_id"`
	ChannelValue       uint64 `json:"channel_value"`
}

type FundingChannelEnd struct {
	CounterpartyNodeID string `json:"counterparty_node_id"`
	TemporaryChannelID string `json:"temporary_channel_id"`
	ChannelValue       uint64 `json:"channel_value"`
	FundingTxid        string `json:"funding_txid"`
	FundingTx          string `json:"funding_tx"`
}

// CloseChannelEvent leaves CounterpartyNodeID and FundingOutpoint empty when
// the engine did not know them.
type CloseChannelEvent struct {
	ChannelID          string `json:"channel_id"`
	Reason             string `json:"reason"`
	CounterpartyNodeID string `json:"counterparty_node_id,omitempty"`
	FundingOutpoint    string `json:"funding_outpoint,omitempty"`
}

// ChannelEvent is a generic status or error notice about channels.
type ChannelEvent struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

type PaymentEvent struct {
	State       PaymentState `json:"state"`
	PaymentHash string       `json:"payment_hash,omitempty"`
	Path        []PaymentHop `json:"path"`
}

func (e ChannelReady) GetTopic() string        { return ChannelTopic }
func (e ChannelPending) GetTopic() string      { return ChannelTopic }
func (e FundingChannelStart) GetTopic() string { return ChannelTopic }
func (e FundingChannelEnd) GetTopic() string   { return ChannelTopic }
func (e CloseChannelEvent) GetTopic() string   { return ChannelTopic }
func (e ChannelEvent) GetTopic() string        { return ChannelTopic }
func (e PaymentEvent) GetTopic() string        { return PaymentTopic }

func (e ChannelReady) GetType() EventType        { return EventTypeChannelReady }
func (e ChannelPending) GetType() EventType      { return EventTypeChannelPending }
func (e FundingChannelStart) GetType() EventType { return EventTypeFundingChannelStart }
func (e FundingChannelEnd) GetType() EventType   { return EventTypeFundingChannelEnd }
func (e CloseChannelEvent) GetType() EventType   { return EventTypeCloseChannel }
func (e ChannelEvent) GetType() EventType        { return EventTypeChannel }
func (e PaymentEvent) GetType() EventType        { return EventTypePayment }
