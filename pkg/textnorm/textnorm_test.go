// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/toolshelf/pkg/textnorm"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"docker", "Docker"},
		{"gitHub", "GitHub"},
		{"  postgres ", "Postgres"},
		{"écran", "Écran"},
		{"e\u0301cran", "Écran"},
		{"", ""},
		{"   ", ""},
		{"1password", "1password"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Capitalize(tt.in))
		})
	}
}

func TestLength(t *testing.T) {
	assert.Equal(t, 5, textnorm.Length("e\u0301cran"))
	assert.Equal(t, 6, textnorm.Length("Docker"))
}
