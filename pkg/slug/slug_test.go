// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/linkdeck/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dev Tools", "dev-tools"},
		{"Café Links", "cafe-links"},
		{"  --Reading / List--  ", "reading-list"},
		{"Tiếng Việt", "tieng-viet"},
		{"AI & ML 2026", "ai-ml-2026"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}

func TestFrom_Truncates(t *testing.T) {
	result := slug.From(strings.Repeat("bookmark ", 20))

	assert.LessOrEqual(t, len(result), slug.MaxLength)
	assert.True(t, strings.HasPrefix(result, "bookmark-bookmark"))
	assert.False(t, strings.HasSuffix(result, "-"))
	assert.True(t, strings.HasSuffix(result, "bookmark"))
}

func TestFromOr(t *testing.T) {
	assert.Equal(t, "news", slug.FromOr("News", "group"))
	assert.Equal(t, "group", slug.FromOr("日本語", "group"))
	assert.Equal(t, "group", slug.FromOr("🚀🚀", "group"))
}
