package dto

import (
	"encoding/json"
	"testing"
)

func TestFirstMessage(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantFrom string
		wantText string
		wantOk   bool
	}{
		{
			name: "text message",
			payload: `{
				"object": "whatsapp_business_account",
				"entry": [{"changes": [{"value": {"messages": [
					{"from": "56912345678", "text": {"body": "hola"}}
				]}}]}]
			}`,
			wantFrom: "56912345678",
			wantText: "hola",
			wantOk:   true,
		},
		{
			name:    "status callback without messages",
			payload: `{"object": "whatsapp_business_account", "entry": [{"changes": [{"value": {}}]}]}`,
			wantOk:  false,
		},
		{
			name: "non text message is skipped",
			payload: `{
				"object": "whatsapp_business_account",
				"entry": [{"changes": [{"value": {"messages": [
					{"from": "56912345678"},
					{"from": "56912345678", "text": {"body": "②"}}
				]}}]}]
			}`,
			wantFrom: "56912345678",
			wantText: "②",
			wantOk:   true,
		},
		{
			name:    "empty body",
			payload: `{}`,
			wantOk:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p WebhookPayload
			if err := json.Unmarshal([]byte(tt.payload), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			from, text, ok := p.FirstMessage()
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if from != tt.wantFrom {
				t.Errorf("from = %q, want %q", from, tt.wantFrom)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
		})
	}
}
