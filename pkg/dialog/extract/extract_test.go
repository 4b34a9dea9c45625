package extract

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"plain address", "contact me at a.b@co.io please", "a.b@co.io", true},
		{"uppercase domain lowered", "mail JOHN@EXAMPLE.COM today", "JOHN@example.com", true},
		{"plus tag kept", "send to dev+test@metro.example.org", "dev+test@metro.example.org", true},
		{"first of two", "a@x.com and b@y.com", "a@x.com", true},
		{"no address", "call me instead", "", false},
		{"missing tld", "broken@host", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Email(tt.input)
			if ok != tt.found {
				t.Fatalf("Email(%q) found = %v, want %v", tt.input, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"dotted", "reach me on 555.123.4567", "5551234567", true},
		{"dashed", "555-123-4567 is my number", "5551234567", true},
		{"bare ten digits", "my number is 5551234567", "5551234567", true},
		{"embedded in sentence", "it's 555.123.4567, call any time", "5551234567", true},
		{"too short", "extension 1234", "", false},
		{"no digits", "i don't have one", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Phone(tt.input)
			if ok != tt.found {
				t.Fatalf("Phone(%q) found = %v, want %v", tt.input, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"my name is", "my name is john smith", "John Smith", true},
		{"i am", "I am Jane Doe", "Jane Doe", true},
		{"contraction", "i'm bob", "Bob", true},
		{"bare name", "Alice Johnson", "Alice Johnson", true},
		{"three word cap", "maria del carmen lopez", "Maria Del Carmen", true},
		{"colon prefix", "name: sam", "Sam", true},
		{"digits rejected", "agent 007", "Agent", true},
		{"nothing usable", "42 99", "", false},
		{"empty", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(tt.input)
			if ok != tt.found {
				t.Fatalf("Name(%q) found = %v, want %v", tt.input, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
