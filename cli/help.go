// Copyright (c) 2024, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package cli

import (
	_ "embed"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/linkperf/linkperf/logger"
)

//go:embed README.md
var commandReference string

var mdLinkTarget = regexp.MustCompile(`\(#[a-z-]+\)`)

// helpEntry is the reference section of one command.
type helpEntry struct {
	summary    string
	text       []string
	definition []string
	examples   []string
}

// Help renders the command reference for the commands the grammar accepts.
type Help struct {
	termWidth uint
	commands  []string
	entries   map[string]*helpEntry
}

func newHelp() Help {
	return Help{
		termWidth: 80,
		commands:  grammarKeywords(),
		entries:   parseCommandReference(commandReference),
	}
}

// grammarKeywords returns the sorted leading keywords of all Command alternatives.
func grammarKeywords() []string {
	var keywords []string
	ct := reflect.TypeOf(Command{})
	for i := 0; i < ct.NumField(); i++ {
		alt := ct.Field(i).Type
		if alt.Kind() == reflect.Ptr {
			alt = alt.Elem()
		}
		if alt.Kind() != reflect.Struct {
			continue
		}
		if f, ok := alt.FieldByName("Cmd"); ok {
			keywords = append(keywords, strings.Trim(string(f.Tag), "\" "))
		}
	}
	sort.Strings(keywords)
	return keywords
}

// parseCommandReference splits the markdown reference into one entry per "### <command>"
// section: the first paragraph is the summary, ```shell blocks the definition and ```bash
// blocks the examples.
func parseCommandReference(md string) map[string]*helpEntry {
	entries := make(map[string]*helpEntry)
	var cur *helpEntry
	var block *[]string

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case block != nil && trimmed == "```":
			block = nil
		case block != nil:
			*block = append(*block, strings.TrimRight(line, " \t"))
		case strings.HasPrefix(trimmed, "### "):
			cur = &helpEntry{}
			entries[strings.TrimSpace(trimmed[4:])] = cur
		case strings.HasPrefix(trimmed, "#"):
			cur = nil
		case cur == nil:
		case trimmed == "```shell":
			block = &cur.definition
		case trimmed == "```bash":
			block = &cur.examples
		case trimmed != "":
			trimmed = stripMarkdown(trimmed)
			if cur.summary == "" {
				cur.summary = firstSentence(trimmed)
			}
			cur.text = append(cur.text, trimmed)
		}
	}
	return entries
}

func firstSentence(s string) string {
	if idx := strings.Index(s, ". "); idx > 0 {
		return s[:idx+1]
	}
	return s
}

func stripMarkdown(s string) string {
	s = strings.NewReplacer("\\", "", "`", "").Replace(s)
	return mdLinkTarget.ReplaceAllString(s, "")
}

// update picks up the current terminal width.
func (help *Help) update() {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		logger.Warnf("could not get terminal size: %v", err)
		return
	}
	if width >= 40 {
		help.termWidth = uint(width)
	}
}

// outputGeneralHelp lists every command with its summary.
func (help *Help) outputGeneralHelp() string {
	width := 0
	for _, c := range help.commands {
		if len(c) > width {
			width = len(c)
		}
	}

	var sb strings.Builder
	for _, c := range help.commands {
		summary := "(no help available)"
		if e, ok := help.entries[c]; ok && e.summary != "" {
			summary = e.summary
		}
		_, _ = fmt.Fprintf(&sb, "%-*s  %s\n", width, c, summary)
	}
	sb.WriteString("\nFor detailed help per command, use: 'help <command>'\n")
	return sb.String()
}

// outputCommandHelp renders the full reference of one command.
func (help *Help) outputCommandHelp(command string) string {
	e, ok := help.entries[command]
	if !ok {
		return fmt.Sprintf("No help for '%s'; type 'help' for the command list.\n", command)
	}
	help.update()

	var sb strings.Builder
	sb.WriteString(command + "\n")
	for _, para := range e.text {
		for _, line := range strings.Split(wordwrap.WrapString(para, help.termWidth-2), "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	writeBlock(&sb, "Definition:", e.definition)
	writeBlock(&sb, "Example:", e.examples)
	return sb.String()
}

func writeBlock(sb *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	sb.WriteString("\n  " + title + "\n")
	for _, line := range lines {
		sb.WriteString("    " + line + "\n")
	}
}
