package checkmx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrUsage is returned when neither a file nor an address was given
	ErrUsage = errors.New("no email addresses or file given")
	// ErrNoEmails is returned when the input holds no email address
	ErrNoEmails = errors.New("no email addresses found")
)

// maxLineSize is the longest line accepted from an address file
const maxLineSize = 1 << 20

// FileError is returned when the address file cannot be read
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Input is what the command line arguments stand for, a FileInput or a ListInput
type Input interface {
	isInput()
}

// FileInput is a file holding one email address per line
type FileInput struct {
	Path string
}

// ListInput is a list of email addresses given directly
type ListInput struct {
	Addresses []string
}

func (FileInput) isInput() {}
func (ListInput) isInput() {}

// ClassifyArgs tells whether args name an address file or are the addresses
// themselves. Only a single argument with a .txt or .csv suffix is a file
func ClassifyArgs(args []string) (Input, error) {
	switch {
	case len(args) == 0:
		return nil, ErrUsage
	case len(args) == 1 && (strings.HasSuffix(args[0], ".txt") || strings.HasSuffix(args[0], ".csv")):
		return FileInput{Path: args[0]}, nil
	default:
		return ListInput{Addresses: args}, nil
	}
}

// Collect returns the email addresses the command line arguments stand for
func Collect(args []string) ([]string, error) {
	in, err := ClassifyArgs(args)
	if err != nil {
		return nil, err
	}

	var emails []string
	switch in := in.(type) {
	case FileInput:
		if emails, err = ReadFile(in.Path); err != nil {
			return nil, err
		}
	case ListInput:
		emails = in.Addresses
	}

	if len(emails) == 0 {
		return nil, ErrNoEmails
	}
	return emails, nil
}

// ReadFile reads the email addresses of the file at path
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	emails, err := ReadAddresses(f)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return emails, nil
}

// ReadAddresses returns the trimmed lines of r that are not empty and contain an @
func ReadAddresses(r io.Reader) ([]string, error) {
	var emails []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && strings.Contains(line, "@") {
			emails = append(emails, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return emails, nil
}
