package dto

import "testing"

func TestCheckSlotRequestHolder(t *testing.T) {
	tests := []struct {
		name string
		req  CheckSlotRequest
		want string
	}{
		{"user id only", CheckSlotRequest{UserID: "u-1"}, "u-1"},
		{"session id only", CheckSlotRequest{SessionID: "s-1"}, "s-1"},
		{"user id wins over session id", CheckSlotRequest{UserID: "u-1", SessionID: "s-1"}, "u-1"},
		{"neither", CheckSlotRequest{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Holder(); got != tt.want {
				t.Errorf("Holder() = %q, want %q", got, tt.want)
			}
		})
	}
}
