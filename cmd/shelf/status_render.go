package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiBlue   = "\x1b[34m"
	bannerRule = 50
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusError
)

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusError:
		return ansiRed
	default:
		return ""
	}
}

// renderStatus colors message by kind when colorize is set.
func renderStatus(kind statusKind, message string, colorize bool) string {
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + message + ansiReset
		}
	}
	return message
}

func renderBanner(title string, colorize bool) []string {
	rule := strings.Repeat("-", bannerRule)
	line := strings.Repeat(" ", max(0, (bannerRule-len(title))/2)) + title
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{rule, line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
