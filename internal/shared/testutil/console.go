// Package testutil provides in-memory implementations of the console and
// prompter interfaces for use case and CLI tests.
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/diillson/alicloud-ops/internal/shared/types"
)

// Message is one line written through a Console log method.
type Message struct {
	Level string
	Text  string
}

// Console records everything written to it.
type Console struct {
	mu       sync.Mutex
	Messages []Message
	Output   strings.Builder
	Tables   []*Table
}

func (c *Console) Print(a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Output.WriteString(fmt.Sprint(a...))
}

func (c *Console) Printf(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Output.WriteString(fmt.Sprintf(format, a...))
}

func (c *Console) Println(a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Output.WriteString(fmt.Sprintln(a...))
}

func (c *Console) log(level, format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, Message{Level: level, Text: fmt.Sprintf(format, a...)})
}

func (c *Console) LogInfo(format string, a ...interface{})    { c.log("info", format, a...) }
func (c *Console) LogWarning(format string, a ...interface{}) { c.log("warning", format, a...) }
func (c *Console) LogError(format string, a ...interface{})   { c.log("error", format, a...) }
func (c *Console) LogSuccess(format string, a ...interface{}) { c.log("success", format, a...) }

func (c *Console) Status(message string) types.StatusHandle {
	return noopStatus{}
}

func (c *Console) CreateTable() types.TableInterface {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &Table{}
	c.Tables = append(c.Tables, t)
	return t
}

// Logged returns the texts logged at level, in order.
func (c *Console) Logged(level string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, m := range c.Messages {
		if m.Level == level {
			out = append(out, m.Text)
		}
	}
	return out
}

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

// Table keeps columns and rows as strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) AddColumn(name string, options ...interface{}) {
	t.Columns = append(t.Columns, name)
}

func (t *Table) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Columns, " | "))
	b.WriteString("\n")
	for _, r := range t.Rows {
		b.WriteString(strings.Join(r, " | "))
		b.WriteString("\n")
	}
	return b.String()
}
