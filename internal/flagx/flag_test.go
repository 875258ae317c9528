package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-a", "http://api.example", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api.example"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=cfg.json", "-a=addr"},
			allowed: []string{"--config"},
			want:    []string{"--config=cfg.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-t", "5s"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x"},
			allowed: []string{"-b"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "conf.json", "-a", "addr"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"testbin"}
	assert.Equal(t, "", JsonConfigFlags())
}
