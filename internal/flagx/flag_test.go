package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-l", "250", "-m", "dark"},
			owned: []string{"-l"},
			want:  []string{"-l", "250"},
		},
		{
			name:  "equals form",
			args:  []string{"-config=desk.json", "-l", "250"},
			owned: []string{"-c", "-config"},
			want:  []string{"-config=desk.json"},
		},
		{
			name:  "order preserved across owned flags",
			args:  []string{"-m", "dark", "-x", "1", "-b", "7"},
			owned: []string{"-b", "-m"},
			want:  []string{"-m", "dark", "-b", "7"},
		},
		{
			name:  "foreign flags and positionals dropped",
			args:  []string{"-x", "1", "-y=2", "positional"},
			owned: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "trailing flag without value",
			args:  []string{"-d"},
			owned: []string{"-d"},
			want:  []string{"-d"},
		},
		{
			name:  "next flag is not consumed as value",
			args:  []string{"-d", "-m", "dark"},
			owned: []string{"-d"},
			want:  []string{"-d"},
		},
		{
			name:  "empty",
			args:  []string{},
			owned: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.owned))
		})
	}
}

func TestConfigPath(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"loandesk", "-m", "dark", "-config", "/etc/loandesk.json"}
	assert.Equal(t, "/etc/loandesk.json", ConfigPath())

	os.Args = []string{"loandesk", "-c=local.json"}
	assert.Equal(t, "local.json", ConfigPath())

	os.Args = []string{"loandesk", "-m", "dark"}
	assert.Equal(t, "", ConfigPath())
}
