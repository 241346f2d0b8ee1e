package dto

import (
	"testing"
)

func TestValidateItemRequest(t *testing.T) {
	tests := []struct {
		name string
		req  ItemRequest
		want map[string][]string
	}{
		{
			name: "valid draft",
			req:  ItemRequest{Name: "Widget", Price: 9.99},
			want: map[string][]string{},
		},
		{
			name: "empty name",
			req:  ItemRequest{Name: "", Price: 1},
			want: map[string][]string{"name": {"required"}},
		},
		{
			name: "whitespace name",
			req:  ItemRequest{Name: "   \t", Price: 1},
			want: map[string][]string{"name": {"required"}},
		},
		{
			name: "zero price",
			req:  ItemRequest{Name: "Widget", Price: 0},
			want: map[string][]string{"price": {"must be > 0"}},
		},
		{
			name: "negative price",
			req:  ItemRequest{Name: "Widget", Price: -3.5},
			want: map[string][]string{"price": {"must be > 0"}},
		},
		{
			name: "both fields invalid",
			req:  ItemRequest{Name: " ", Price: -1},
			want: map[string][]string{
				"name":  {"required"},
				"price": {"must be > 0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateItemRequest(tt.req)

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d problem fields, got %d: %v", len(tt.want), len(got), got)
			}

			for field, messages := range tt.want {
				gotMessages, ok := got[field]
				if !ok {
					t.Fatalf("expected problems for field %q, got %v", field, got)
				}
				if len(gotMessages) != len(messages) {
					t.Fatalf("field %q: expected %v, got %v", field, messages, gotMessages)
				}
				for i, msg := range messages {
					if gotMessages[i] != msg {
						t.Fatalf("field %q: expected message %q, got %q", field, msg, gotMessages[i])
					}
				}
			}
		})
	}
}
