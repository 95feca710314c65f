package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/torvand/proplog/src/tui"

	"github.com/stretchr/testify/assert"
)

func newTestTUI(input string) (*tui.TUI, *bytes.Buffer) {
	var output bytes.Buffer

	terminal := tui.New()
	terminal.SetInput(strings.NewReader(input))
	terminal.SetOutput(&output)

	return terminal, &output
}

func TestAskYesNo(t *testing.T) {
	testCases := map[string]bool{
		"y":   true,
		"Y":   true,
		"yes": true,
		"YES": true,

		"n":  false,
		"no": false,
		"":   false,

		// nonsense answers are re-asked until a real one comes along
		"banana\ny": true,
		"banana\nn": false,
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			terminal, output := newTestTUI(input)

			result := terminal.AskYesNo("Is %s true? ", "a")

			assert.Equal(t, expected, result)
			assert.Contains(t, output.String(), "Is a true? ")
		})
	}

	t.Run("end of input means no", func(t *testing.T) {
		terminal, _ := newTestTUI("")

		assert.False(t, terminal.AskYesNo("really? "))
	})
}

func TestReadLine(t *testing.T) {
	terminal, output := newTestTUI("a && b\n")

	line, ok := terminal.ReadLine("> ")
	assert.True(t, ok)
	assert.Equal(t, "a && b", line)
	assert.Equal(t, "> ", output.String())

	_, ok = terminal.ReadLine("> ")
	assert.False(t, ok)
}
