package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jirai/internal/ui/pretty"
	"github.com/yaklabco/jirai/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "nothing found",
			stats: runner.Stats{},
			want:  "No Jirai files found\n",
		},
		{
			name:  "single file written",
			stats: runner.Stats{FilesDiscovered: 1, FilesCompiled: 1, FilesWritten: 1},
			want:  "1 file compiled, 1 written\n",
		},
		{
			name: "mixed outcome",
			stats: runner.Stats{
				FilesDiscovered: 4,
				FilesCompiled:   3,
				FilesWritten:    2,
				FilesUnchanged:  1,
				FilesErrored:    1,
			},
			want: "3 files compiled, 2 written, 1 unchanged, 1 failed\n",
		},
		{
			name:  "stdout mode writes nothing",
			stats: runner.Stats{FilesDiscovered: 2, FilesCompiled: 2},
			want:  "2 files compiled\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary_Success(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesDiscovered: 5, FilesCompiled: 5, FilesWritten: 3, FilesUnchanged: 2})

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files found:       5")
	assert.Contains(t, result, "Files written:     3")
	assert.Contains(t, result, "Files unchanged:   2")
	assert.NotContains(t, result, "Files failed:")
	assert.Contains(t, result, "Compilation succeeded")
}

func TestFormatSummary_Failure(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesDiscovered: 2, FilesCompiled: 1, FilesErrored: 1})

	assert.Contains(t, result, "Files failed:      1")
	assert.Contains(t, result, "Compilation failed")
}
