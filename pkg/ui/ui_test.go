package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleNoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	out := Title("Databoard")
	assert.Equal(t, "Databoard", out, "no-color mode must not emit escape codes")
	assert.False(t, strings.Contains(out, "\x1b["))
}

func TestBannerMentionsVersion(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	assert.Contains(t, Banner(), "Databoard v")
}
