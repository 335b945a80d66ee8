package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// GetSimpleText prints a prompt to w and reads a single line of input
// from reader. The trailing newline is trimmed. If EOF occurs after some
// input was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from
// the terminal without echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Contraseña: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// getWithDefault prompts showing the current value; an empty answer keeps it.
func getWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	label := prompt
	if current != "" {
		label = fmt.Sprintf("%s [%s]", prompt, current)
	}
	answer, err := getSimpleText(reader, label, w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// getInt prompts for an integer, keeping the current value on empty input.
func getInt(reader *bufio.Reader, prompt string, current int, w io.Writer) (int, error) {
	answer, err := getWithDefault(reader, prompt, strconv.Itoa(current), w)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return current, nil
	}
	return n, nil
}

// getFloat prompts for a number, keeping the current value on empty or
// unparsable input.
func getFloat(reader *bufio.Reader, prompt string, current float64, w io.Writer) (float64, error) {
	answer, err := getWithDefault(reader, prompt, strconv.FormatFloat(current, 'f', -1, 64), w)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return current, nil
	}
	return f, nil
}

// confirm asks a yes/no question; "s", "si" and "y" count as yes.
func confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := getSimpleText(reader, prompt+" (s/n)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
