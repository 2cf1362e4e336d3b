package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains []string
		excludes []string
	}{
		{
			name:     "script removed",
			in:       `<p>hi<script>alert(1)</script></p>`,
			contains: []string{"<p>hi</p>"},
			excludes: []string{"script"},
		},
		{
			name:     "task list kept",
			in:       `<ul data-type="taskList"><li data-type="taskItem" data-checked="true">done</li></ul>`,
			contains: []string{`data-type="taskList"`, `data-checked="true"`},
		},
		{
			name:     "mention kept",
			in:       `<span data-type="mention" data-kind="Task" data-id="abc">x</span>`,
			contains: []string{`data-kind="Task"`, `data-id="abc"`},
		},
		{
			name:     "bad kind dropped",
			in:       `<span data-type="mention" data-kind="Evil" data-id="abc">x</span>`,
			excludes: []string{"Evil"},
		},
		{
			name:     "onclick dropped",
			in:       `<a href="https://vaiz.com" onclick="x()">v</a>`,
			contains: []string{`href="https://vaiz.com"`},
			excludes: []string{"onclick"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Sanitize(tt.in)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestSanitizeMarkdownUntouched(t *testing.T) {
	md := "# Title & \"quotes\"\n\n- item"
	assert.Equal(t, md, Sanitize(md))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello world", StripTags("<p>hello <b>world</b></p>"))
}

func TestProcessMentions(t *testing.T) {
	in := `<p>see <span data-type="mention" data-kind="Task" data-id="t1" data-label="Fix">Fix</span> now</p>`
	assert.Equal(t, `<p>see @Task:t1 (Fix) now</p>`, ProcessMentions(in))

	plain := `<p>nothing here</p>`
	assert.Equal(t, plain, ProcessMentions(plain))

	incomplete := `<p><span data-type="mention">x</span></p>`
	assert.Equal(t, incomplete, ProcessMentions(incomplete))
	assert.Equal(t, "", ProcessMentions(""))
}
