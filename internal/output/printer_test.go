package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterWithWriters(&out, &errOut, false)

	p.Print("hello %s", "world")
	p.Success("logged in")
	p.Notice("refresh failed")
	p.Error("boom")

	assert.Equal(t, "hello world\n[OK] logged in\n", out.String())
	assert.Contains(t, errOut.String(), "[WARN] refresh failed")
	assert.Contains(t, errOut.String(), "[ERROR] boom")
}

func TestNoticeGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterWithWriters(&out, &errOut, false)

	p.Notice("task lists left unchanged")

	assert.Empty(t, out.String())
	assert.True(t, strings.Contains(errOut.String(), "task lists left unchanged"))
}

func TestDimWithoutColors(t *testing.T) {
	p := NewPrinterWithWriters(&bytes.Buffer{}, &bytes.Buffer{}, false)
	assert.Equal(t, "cached", p.Dim("cached"))
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWithWriter(&buf, []string{"ID", "Title"})
	table.AddRow([]string{"t1", "write report"})
	table.AddRow([]string{"t2", "demo prep"})
	table.Render()

	rendered := buf.String()
	assert.Contains(t, rendered, "write report")
	assert.Contains(t, rendered, "demo prep")
}
