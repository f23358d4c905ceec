package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"comma string", []string{"a, b ,c"}, []string{"a", "b", "c"}},
		{"single skill", []string{" go "}, []string{"go"}},
		{"empty entries dropped", []string{"a,, ,b"}, []string{"a", "b"}},
		{"only commas", []string{" , "}, nil},
		{"pre-split passes through", []string{" a", "b ", "c, d"}, []string{" a", "b ", "c, d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkills(tt.in))
		})
	}
}

func TestRandomInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := RandomInRange(10000, 99999)
		assert.GreaterOrEqual(t, n, 10000)
		assert.LessOrEqual(t, n, 99999)
	}
	assert.Equal(t, 7, RandomInRange(7, 7))
}
