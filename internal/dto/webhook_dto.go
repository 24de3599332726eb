package dto

// WebhookPayload mirrors the WhatsApp Cloud API callback shape. Only the
// fields the bot reads are declared; everything else is ignored.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	Messages []WebhookMessage `json:"messages"`
}

type WebhookMessage struct {
	From string       `json:"from"`
	Text *WebhookText `json:"text"`
}

type WebhookText struct {
	Body string `json:"body"`
}

// InboundMessageJob is the queue payload between the webhook controller
// and the bot worker. RawPayload is the original callback body, kept for
// the message log.
type InboundMessageJob struct {
	From       string `json:"from"`
	Text       string `json:"text"`
	RawPayload []byte `json:"raw_payload"`
}

// FirstMessage returns the sender and text of the first message in the
// payload, if any. Status callbacks and non-text messages yield ok=false.
func (p *WebhookPayload) FirstMessage() (from string, text string, ok bool) {
	if p.Object == "" || len(p.Entry) == 0 {
		return "", "", false
	}
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Text == nil {
					continue
				}
				return msg.From, msg.Text.Body, true
			}
		}
	}
	return "", "", false
}
