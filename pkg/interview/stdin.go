package interview

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// StdinExecutor is a plain line-oriented executor for non-TTY sessions and
// tests. Each question reads one line; empty input falls back to the
// question default.
type StdinExecutor struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewStdinExecutor reads answers from in and writes prompts to out.
// Nil arguments default to os.Stdin / os.Stdout.
func NewStdinExecutor(in io.Reader, out io.Writer) *StdinExecutor {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &StdinExecutor{reader: bufio.NewReader(in), out: out}
}

// Execute asks each question in order on its own line.
func (e *StdinExecutor) Execute(ctx context.Context, questions []Question) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, err := e.ask(q)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = value
	}
	return answers, nil
}

func (e *StdinExecutor) ask(q Question) (any, error) {
	switch q.Type {
	case QuestionConfirm:
		def, _ := q.Default.(bool)
		hint := "y/N"
		if def {
			hint = "Y/n"
		}
		line, err := e.readLine(fmt.Sprintf("%s (%s): ", q.Message, hint))
		if err != nil {
			return nil, err
		}
		if line == "" {
			return def, nil
		}
		switch strings.ToLower(line) {
		case "y", "yes", "true":
			return true, nil
		default:
			return false, nil
		}

	case QuestionSelect:
		fmt.Fprintln(e.out, q.Message)
		for i, opt := range q.Options {
			label := opt.Label
			if label == "" {
				label = opt.Value
			}
			fmt.Fprintf(e.out, "  %d) %s\n", i+1, label)
		}
		for {
			line, err := e.readLine("Your choice: ")
			if err != nil {
				return nil, err
			}
			if line == "" {
				if d, ok := q.Default.(string); ok && d != "" {
					return d, nil
				}
			}
			choice, err := strconv.Atoi(line)
			if err == nil && choice > 0 && choice <= len(q.Options) {
				return q.Options[choice-1].Value, nil
			}
			fmt.Fprintln(e.out, "Invalid option. Please try again.")
		}

	default:
		prompt := q.Message + " "
		if q.Default != nil {
			prompt = fmt.Sprintf("%s [%v]: ", q.Message, q.Default)
		}
		for {
			line, err := e.readLine(prompt)
			if err != nil {
				return nil, err
			}
			if line == "" && q.Default != nil {
				return fmt.Sprint(q.Default), nil
			}
			if q.Validate != nil {
				if err := q.Validate(line); err != nil {
					fmt.Fprintf(e.out, "Invalid input: %v\n", err)
					continue
				}
			}
			return line, nil
		}
	}
}

func (e *StdinExecutor) readLine(prompt string) (string, error) {
	fmt.Fprint(e.out, prompt)
	line, err := e.reader.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
