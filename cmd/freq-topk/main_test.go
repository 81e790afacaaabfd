package main

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"freq.lopezb.com/internal/freq/topk"
)

func TestReadTokens(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  []string
	}{
		{
			name: "args win over stdin",
			args: []string{"a", "b"},
			// Stdin must not even be read when args are present.
			stdin: "ignored tokens",
			want:  []string{"a", "b"},
		},
		{
			name:  "stdin words",
			stdin: "one two  two\n\tthree one",
			want:  []string{"one", "two", "two", "three", "one"},
		},
		{
			name:  "empty stdin",
			stdin: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readTokens(tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readTokens returned error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("readTokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyAgreement(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		k      int
	}{
		{name: "distinct counts", tokens: []string{"a", "a", "a", "b", "b", "c"}, k: 2},
		{name: "boundary tie", tokens: []string{"a", "a", "b", "b", "c", "c"}, k: 2},
		{name: "k exceeds distinct", tokens: []string{"a", "b"}, k: 10},
		{name: "k zero", tokens: []string{"a", "b"}, k: 0},
		{name: "empty input", tokens: nil, k: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := verifyAgreement(tt.tokens, tt.k); err != nil {
				t.Errorf("verifyAgreement(%v, %d) = %v, want nil", tt.tokens, tt.k, err)
			}
		})
	}
}

func TestVerifyAgreementNegativeK(t *testing.T) {
	if err := verifyAgreement([]string{"a"}, -1); err == nil {
		t.Error("verifyAgreement with k=-1 returned nil, want error")
	}
}

func TestApproxList(t *testing.T) {
	items, err := approxList([]string{"a", "b", "a", "c", "a"}, 2)
	if err != nil {
		t.Fatalf("approxList returned error: %v", err)
	}
	if len(items) > 2 {
		t.Fatalf("approxList returned %d items, want at most 2", len(items))
	}
	if len(items) == 0 || items[0].Key != "a" {
		t.Errorf("approxList top item = %v, want a", items)
	}
}

// TestApproxListArgumentContract verifies that the approximate path enforces
// the same k contract as the exact engine: negative k is rejected before any
// tracking runs, and k = 0 yields no output.
func TestApproxListArgumentContract(t *testing.T) {
	if _, err := approxList([]string{"a", "b"}, -1); !errors.Is(err, topk.ErrNegativeK) {
		t.Errorf("approxList with k=-1 returned %v, want ErrNegativeK", err)
	}

	items, err := approxList([]string{"a", "b"}, 0)
	if err != nil {
		t.Fatalf("approxList with k=0 returned error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("approxList with k=0 returned %v, want empty", items)
	}
}
