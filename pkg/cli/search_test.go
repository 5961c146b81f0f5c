package cli

import (
	"strings"
	"testing"

	"github.com/sferrer-dev/petitsplats/internal/tui"
)

func TestSearchCommand(t *testing.T) {
	catalog := setupCLITest(t)

	tests := []struct {
		name       string
		args       []string
		contains   []string
		notContain []string
	}{
		{
			name:       "name match",
			args:       []string{"search", "pommes"},
			contains:   []string{"#1 Tarte aux pommes"},
			notContain: []string{"#2 ", "#3 "},
		},
		{
			name:       "words are joined",
			args:       []string{"search", "plat", "chaud"},
			contains:   []string{"#2 Soupe"},
			notContain: []string{"#4 "},
		},
		{
			name:       "parentheses are literal",
			args:       []string{"search", "(classique"},
			contains:   []string{"#3 Crème brûlée"},
			notContain: []string{"#1 "},
		},
		{
			name:       "search then tag",
			args:       []string{"search", "dessert", "-u", "moule"},
			contains:   []string{"#1 Tarte aux pommes"},
			notContain: []string{"#3 "},
		},
		{
			name:     "no match",
			args:     []string{"search", "chocolat"},
			contains: []string{tui.EmptyMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, append(tt.args, "--catalog", catalog)...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(stdout, want) {
					t.Errorf("%v output missing %q, got:\n%s", tt.args, want, stdout)
				}
			}
			for _, unwanted := range tt.notContain {
				if strings.Contains(stdout, unwanted) {
					t.Errorf("%v output should not contain %q", tt.args, unwanted)
				}
			}
		})
	}
}

func TestSearchCommandShortQuery(t *testing.T) {
	catalog := setupCLITest(t)

	stdout, stderr, err := executeCommand(t, "search", "ab", "--catalog", catalog)
	if err != nil {
		t.Fatalf("search ab error = %v", err)
	}
	if !strings.Contains(stdout, "#1 ") || !strings.Contains(stdout, "#5 ") {
		t.Errorf("search ab should list every recipe, got:\n%s", stdout)
	}
	if !strings.Contains(stderr, "shorter than 3 characters") {
		t.Errorf("search ab stderr = %q, want a warning", stderr)
	}
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	catalog := setupCLITest(t)

	if _, _, err := executeCommand(t, "search", "--catalog", catalog); err == nil {
		t.Error("search without a query should return error")
	}
}
