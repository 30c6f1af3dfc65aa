package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected cliFlags
		wantArgs int
		wantErr  bool
	}{
		{
			name:     "defaults",
			args:     []string{"html2bbcode", "in.html"},
			expected: cliFlags{},
			wantArgs: 1,
		},
		{
			name:     "short flags",
			args:     []string{"html2bbcode", "-o", "out", "-w", "3", "-q", "in.html"},
			expected: cliFlags{output: "out", workers: 3, quiet: true},
			wantArgs: 1,
		},
		{
			name:     "long flags",
			args:     []string{"html2bbcode", "--output", "out", "--config", "site", "--verbose", "a.html", "b.html"},
			expected: cliFlags{output: "out", config: "site", verbose: true},
			wantArgs: 2,
		},
		{
			name:     "version flag without args",
			args:     []string{"html2bbcode", "--version"},
			expected: cliFlags{version: true},
			wantArgs: 0,
		},
		{
			name:    "unknown flag",
			args:    []string{"html2bbcode", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, args, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() unexpected error: %v", err)
			}
			if *flags != tt.expected {
				t.Errorf("parseFlags() = %+v, want %+v", *flags, tt.expected)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("parseFlags() returned %d args, want %d", len(args), tt.wantArgs)
			}
		})
	}
}
