package handler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console reads interactive input the way stream extraction does: numbers
// are whitespace-separated tokens that may share a line, while ReadLine
// always starts from a fresh line.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	pending []string
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Discard drops any tokens left over from the current line.
func (c *Console) Discard() {
	c.pending = nil
}

// ReadLine discards the rest of the current line and returns the next one
// without its line terminator.
func (c *Console) ReadLine() (string, error) {
	c.Discard()
	return c.readRawLine()
}

func (c *Console) ReadInt(prompt string) (int, error) {
	var v int
	err := c.readNumber(prompt, func(tok string) error {
		var err error
		v, err = strconv.Atoi(tok)
		return err
	})
	return v, err
}

func (c *Console) ReadFloat(prompt string) (float64, error) {
	var v float64
	err := c.readNumber(prompt, func(tok string) error {
		var err error
		v, err = strconv.ParseFloat(tok, 64)
		return err
	})
	return v, err
}

func (c *Console) readNumber(prompt string, parse func(string) error) error {
	c.Printf("%s", prompt)
	for {
		tok, err := c.nextToken()
		if err != nil {
			return err
		}
		if err := parse(tok); err == nil {
			return nil
		}
		c.Discard()
		c.Printf("Invalid input! Please enter a number: ")
	}
}

func (c *Console) nextToken() (string, error) {
	for len(c.pending) == 0 {
		line, err := c.readRawLine()
		if err != nil {
			return "", err
		}
		c.pending = strings.Fields(line)
	}
	tok := c.pending[0]
	c.pending = c.pending[1:]
	return tok, nil
}

func (c *Console) readRawLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
