package bot

import (
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		command string
		args    []string
	}{
		{
			name:    "income_with_multiword_notes",
			input:   "/income 500000 salary monthly pay",
			command: "/income",
			args:    []string{"500000", "salary monthly pay"},
		},
		{
			name:    "command_only",
			input:   "/summary",
			command: "/summary",
			args:    nil,
		},
		{
			name:    "one_arg",
			input:   "/delete 42",
			command: "/delete",
			args:    []string{"42"},
		},
		{
			name:    "case_folded_command",
			input:   "/INCOME 100 Salary",
			command: "/income",
			args:    []string{"100", "Salary"},
		},
		{
			name:    "tail_keeps_internal_spacing",
			input:   "/expense 50 food  two  spaces",
			command: "/expense",
			args:    []string{"50", "food  two  spaces"},
		},
		{
			name:    "surrounding_whitespace_trimmed",
			input:   "   /help   ",
			command: "/help",
			args:    nil,
		},
		{
			name:    "empty_input",
			input:   "",
			command: "",
			args:    nil,
		},
		{
			name:    "whitespace_only",
			input:   "  \t ",
			command: "",
			args:    nil,
		},
		{
			name:    "no_slash",
			input:   "hello there",
			command: "hello",
			args:    []string{"there"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, args := ParseCommand(tt.input)
			if command != tt.command {
				t.Errorf("expected command %q, got %q", tt.command, command)
			}
			if !reflect.DeepEqual(args, tt.args) {
				t.Errorf("expected args %#v, got %#v", tt.args, args)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("known_commands", func(t *testing.T) {
		for input, kind := range map[string]Kind{
			"/income 5 a":  KindIncome,
			"/expense 5 a": KindExpense,
			"/asset 5":     KindAsset,
			"/aset 5":      KindAsset,
			"/summary":     KindSummary,
			"/report":      KindReport,
			"/help":        KindHelp,
		} {
			if cmd := Parse(input); cmd.Kind != kind {
				t.Errorf("Parse(%q): expected kind %d, got %d", input, kind, cmd.Kind)
			}
		}
	})

	t.Run("unknown_command", func(t *testing.T) {
		cmd := Parse("/bogus 1 2")
		if cmd.Kind != KindUnknown {
			t.Errorf("expected KindUnknown, got %d", cmd.Kind)
		}
		if cmd.Token != "/bogus" {
			t.Errorf("expected token /bogus, got %q", cmd.Token)
		}
	})
}
