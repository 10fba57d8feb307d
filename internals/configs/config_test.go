package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_TEST_KEY", "abc")
	assert.Equal(t, "abc", GetEnv("CFG_TEST_KEY"))
	assert.Equal(t, "fallback", GetEnv("CFG_TEST_MISSING", "fallback"))
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "lista com espaços", raw: " 10.0.0.0/8 , ::1 ", want: []string{"10.0.0.0/8", "::1"}},
		{name: "entradas vazias descartadas", raw: "127.0.0.1,,", want: []string{"127.0.0.1"}},
		{name: "string vazia", raw: "", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCSV(tt.raw))
		})
	}
}
