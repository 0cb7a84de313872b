package badge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Unlocked(t *testing.T) {
	tests := []struct {
		name      string
		taskCount int64
		want      []string
	}{
		{name: "zero tasks", taskCount: 0, want: nil},
		{name: "first task", taskCount: 1, want: []string{"first-task"}},
		{name: "below threshold", taskCount: 4, want: []string{"first-task"}},
		{name: "exactly five", taskCount: 5, want: []string{"first-task", "early-adopter"}},
		{
			name:      "everything",
			taskCount: 250,
			want: []string{
				"first-task", "early-adopter", "consistent",
				"power-user", "legendary", "unstoppable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, b := range Unlocked(tt.taskCount) {
				got = append(got, b.ID)
			}

			require.Equal(t, tt.want, got)
		})
	}
}

func Test_Evaluate(t *testing.T) {
	progress := Evaluate(7)
	require.Len(t, progress, len(All()))

	byID := map[string]Progress{}
	for _, p := range progress {
		byID[p.ID] = p
	}

	require.True(t, byID["first-task"].Unlocked)
	require.EqualValues(t, 1, byID["first-task"].Current)

	require.True(t, byID["early-adopter"].Unlocked)
	require.EqualValues(t, 5, byID["early-adopter"].Current)

	// Progress toward a locked badge is capped at the real count.
	require.False(t, byID["consistent"].Unlocked)
	require.EqualValues(t, 7, byID["consistent"].Current)

	require.False(t, byID["unstoppable"].Unlocked)
	require.EqualValues(t, 7, byID["unstoppable"].Current)
}

func Test_Evaluate_isDeterministic(t *testing.T) {
	require.Equal(t, Evaluate(42), Evaluate(42))
	require.Equal(t, All(), All())
}
