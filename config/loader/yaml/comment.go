package yaml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"runtime"
	"strings"

	"github.com/0xalexb/hjarta-yaml/config/node"
)

const (
	commentPrefix  = "#"
	documentMarker = "---"
)

// SystemLineSeparator is the line separator of the running platform.
//
//nolint:gochecknoglobals // depends on the build target.
var SystemLineSeparator = systemLineSeparator()

func systemLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}

func toSystemSeparators(text string) string {
	text = strings.ReplaceAll(text, "\r\n", node.LineSeparator)

	return strings.ReplaceAll(text, node.LineSeparator, SystemLineSeparator)
}

// CommentHandler reads and writes the comment block at the top of a document.
type CommentHandler interface {
	// ExtractHeader reads the header from the start of a document.
	// It reports false when the document has no header; that is not an error.
	ExtractHeader(r *bufio.Reader) (string, bool, error)
	// ToComment turns header lines into document lines, ending with a document marker.
	ToComment(lines iter.Seq[string]) iter.Seq[string]
}

// HashCommentHandler handles "#" comment blocks terminated by a blank line or "---".
type HashCommentHandler struct{}

// ExtractHeader implements CommentHandler.
//
// The header must be an unbroken run of comment lines from the very first byte of the
// document. Any other content before the terminator means the document has no header.
// Reaching the end of the document terminates the header.
func (HashCommentHandler) ExtractHeader(r *bufio.Reader) (string, bool, error) {
	prefixed, err := beginsWithPrefix(r)
	if err != nil || !prefixed {
		return "", false, err
	}

	var header strings.Builder

	for first := true; ; first = false {
		line, readErr := readLine(r)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", false, fmt.Errorf("reading header: %w", readErr)
		}

		if line == "" && errors.Is(readErr, io.EOF) {
			break
		}

		switch {
		case first:
			header.WriteString(strings.TrimPrefix(line, " "))
		case strings.HasPrefix(strings.TrimSpace(line), commentPrefix):
			line = line[strings.Index(line, commentPrefix)+len(commentPrefix):]
			if header.Len() > 0 {
				header.WriteString(node.LineSeparator)
			}

			header.WriteString(strings.TrimPrefix(line, " "))
		case strings.TrimSpace(line) == "" || line == documentMarker:
			return headerResult(header.String())
		default:
			return "", false, nil
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	return headerResult(header.String())
}

// ToComment implements CommentHandler.
func (HashCommentHandler) ToComment(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if !yield(commentLine(line)) {
				return
			}
		}

		yield(documentMarker)
	}
}

func commentLine(line string) string {
	if strings.HasPrefix(line, " ") {
		return commentPrefix + line
	}

	return commentPrefix + " " + line
}

func headerResult(header string) (string, bool, error) {
	if header == "" {
		return "", false, nil
	}

	return header, true, nil
}

func beginsWithPrefix(r *bufio.Reader) (bool, error) {
	prefix, err := r.Peek(len(commentPrefix))
	if errors.Is(err, io.EOF) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading header: %w", err)
	}

	if string(prefix) != commentPrefix {
		return false, nil
	}

	_, err = r.Discard(len(commentPrefix))
	if err != nil {
		return false, fmt.Errorf("reading header: %w", err)
	}

	return true, nil
}

// readLine returns the next line without its line terminator.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, err //nolint:wrapcheck // callers wrap
}
