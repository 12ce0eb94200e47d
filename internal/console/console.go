// Package console implements the line-oriented terminal surface shared by
// every game: a buffered line reader plus the validated prompt helpers.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/arcadesuite/gamebox/internal/apperror"
)

var (
	titleStyle   = color.New(color.FgCyan, color.OpBold)
	successStyle = color.New(color.FgGreen, color.OpBold)
)

type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(reader io.Reader, writer io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Clear - clears the terminal screen and moves the cursor home.
func (that *Console) Clear() {
	fmt.Fprint(that.writer, "\x1b[2J\x1b[H")
}

func (that *Console) Print(args ...any) {
	fmt.Fprint(that.writer, args...)
}

func (that *Console) Println(args ...any) {
	fmt.Fprintln(that.writer, args...)
}

func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.writer, format, args...)
}

// Title - prints a game title line.
func (that *Console) Title(text string) {
	fmt.Fprintln(that.writer, titleStyle.Sprint(text))
}

// Success - prints a result announcement line.
func (that *Console) Success(text string) {
	fmt.Fprintln(that.writer, successStyle.Sprint(text))
}

// ReadLine - prints the prompt and reads one line of input, trimmed of
// surrounding whitespace. A closed input stream yields ErrInputClosed.
func (that *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(that.writer, prompt)
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		if errors.Is(err, io.EOF) {
			return "", apperror.ErrInputClosed
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// ReadToken - like ReadLine but lowercased, for menu selections.
func (that *Console) ReadToken(prompt string) (string, error) {
	line, err := that.ReadLine(prompt)
	if err != nil {
		return "", err
	}

	return strings.ToLower(line), nil
}

// Pause - blocks until the player presses Enter.
func (that *Console) Pause() error {
	_, err := that.ReadLine("Press Enter to continue...")
	return err
}
