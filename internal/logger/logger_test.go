package logger_test

import (
	"strings"
	"testing"

	"github.com/jsgen-dev/jsgen/internal/logger"
	"github.com/jsgen-dev/jsgen/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLineText(t *testing.T) {
	source := logger.Source{PrettyPath: "a.json", Contents: "one\r\ntwo\nthree"}
	test.AssertEqual(t, source.LineText(1), "one")
	test.AssertEqual(t, source.LineText(2), "two")
	test.AssertEqual(t, source.LineText(3), "three")
	test.AssertEqual(t, source.LineText(4), "")
}

func TestMsgString(t *testing.T) {
	source := &logger.Source{PrettyPath: "tree.yaml", Contents: "type: Program\nbody: [{type: Nope}]\n"}
	msg := logger.Msg{
		Kind:     logger.Error,
		Text:     `Unknown node type "Nope"`,
		Location: source.Location(2, 8, 10),
	}
	text := msg.String(logger.StderrOptions{IncludeSource: true}, logger.TerminalInfo{})
	test.AssertEqualWithDiff(t, text, `tree.yaml:2:8: error: Unknown node type "Nope"
body: [{type: Nope}]
        ~~~~~~~~~~
`)

	msg.Location = nil
	text = msg.String(logger.StderrOptions{IncludeSource: true}, logger.TerminalInfo{})
	test.AssertEqual(t, text, "error: Unknown node type \"Nope\"\n")

	msg.Kind = logger.Warning
	msg.Location = source.Location(0, 0, 0)
	text = msg.String(logger.StderrOptions{IncludeSource: true}, logger.TerminalInfo{})
	test.AssertEqual(t, text, "tree.yaml: warning: Unknown node type \"Nope\"\n")
}

func TestMsgStringWideCharacters(t *testing.T) {
	// Each of these characters is 3 bytes and 2 terminal columns wide
	source := &logger.Source{PrettyPath: "wide.yaml", Contents: "name: 漢字 x\n"}
	msg := logger.Msg{Kind: logger.Error, Text: "bad", Location: source.Location(1, 13, 1)}
	text := msg.String(logger.StderrOptions{IncludeSource: true}, logger.TerminalInfo{})
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "name: 漢字 x", lines[1])
	assert.Equal(t, strings.Repeat(" ", 11)+"^", lines[2])
}

func TestDeferLog(t *testing.T) {
	log := logger.NewDeferLog()
	log.AddMsg(logger.Msg{Kind: logger.Warning, Text: "b"})
	assert.False(t, log.HasErrors())
	log.AddError(&logger.Source{PrettyPath: "z.json"}, 0, 0, "c")
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "a"})
	assert.True(t, log.HasErrors())

	msgs := log.Done()
	require.Len(t, msgs, 3)

	// Messages without a location sort first
	assert.Equal(t, "a", msgs[0].Text)
	assert.Equal(t, "b", msgs[1].Text)
	assert.Equal(t, "c", msgs[2].Text)
	assert.Equal(t, "z.json", msgs[2].Location.File)
}
