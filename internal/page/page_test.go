package page

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/models"
)

func TestNew(t *testing.T) {
	projects := []models.Project{{Title: "A", Category: "web"}}
	p := New(projects, []string{"all", "web"})

	require.Len(t, p.Controls, 2)
	assert.Equal(t, "all", p.Controls[0].Tag)
	assert.Equal(t, "All", p.Controls[0].Label)
	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, "", p.ActiveTag())
	assert.Empty(t, p.Results)
	assert.Len(t, p.Projects, 1)
}

func TestNotify(t *testing.T) {
	p := New(nil, nil)
	p.Notify("one")
	p.Notify("two")

	assert.Equal(t, []string{"one", "two"}, p.Notifications)
}

func TestControlLabel(t *testing.T) {
	assert.Equal(t, "All", ControlLabel("all"))
	assert.Equal(t, "C++", ControlLabel("cpp"))
	assert.Equal(t, "Web", ControlLabel("web"))
	assert.Equal(t, "", ControlLabel(""))
	assert.Equal(t, "Éco", ControlLabel("éco"))
	assert.True(t, utf8.ValidString(ControlLabel("ünï")))
}
