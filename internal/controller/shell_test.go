package controller

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          []string
		requireOutputs []string
	}{
		{
			name:           "quit",
			input:          []string{"q"},
			requireOutputs: []string{"Welcome to the Library Management System", "Exiting the Library Management System."},
		},
		{
			name:           "upper case quit",
			input:          []string{"  Q "},
			requireOutputs: []string{"Exiting the Library Management System."},
		},
		{
			name:           "end of input quits",
			input:          nil,
			requireOutputs: []string{"Exiting the Library Management System."},
		},
		{
			name:           "invalid choices",
			input:          []string{"11", "", "add", "q"},
			requireOutputs: []string{"Invalid choice. Please try again."},
		},
		{
			name:           "clear redraws the menu",
			input:          []string{"clear", "q"},
			requireOutputs: []string{clearScreen + menu},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := initShellTest(t, tt.input...)
			require.NoError(t, st.service.Serve(context.Background()))

			out := st.out.String()
			for _, want := range tt.requireOutputs {
				require.Contains(t, out, want)
			}
		})
	}
}

func TestServeCountsInvalidChoices(t *testing.T) {
	t.Parallel()

	st := initShellTest(t, "0", "11", "help", "q", "1")
	require.NoError(t, st.service.Serve(context.Background()))
	require.Equal(t, 3, strings.Count(st.out.String(), "Invalid choice. Please try again."))
}

func TestServeStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := initShellTest(t, "1")
	require.NoError(t, st.service.Serve(ctx))
	require.NotContains(t, st.out.String(), choicePrompt)
}
