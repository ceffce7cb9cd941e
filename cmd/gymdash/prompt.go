package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var stdin = bufio.NewReader(os.Stdin)

func prompt(label string) string {
	line, _ := readLine(label)
	return line
}

// readLine reports false once stdin is exhausted.
func readLine(label string) (string, bool) {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		log.Debugf("read %q: %s", label, err)
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptPassword hides the input when stdin is a terminal.
func promptPassword(label string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(label)
	}

	fmt.Print(label)
	password, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		log.Debugf("read password: %s", err)
		return ""
	}
	return string(password)
}
