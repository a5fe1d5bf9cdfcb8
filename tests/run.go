package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// ./tests /path/to/bin /path/to/testdata
func main() {
	all := true

	bindir := os.Args[1]
	testsdir := os.Args[2]

	files, _ := ioutil.ReadDir(testsdir)

	for _, file := range files {
		path := filepath.Join(testsdir, file.Name())
		if err := runAndCheck(bindir, path); err != nil {
			fmt.Printf("FAIL: %s\n%s\n", path, err)
			all = false
			continue
		}
		fmt.Printf("OK: %s\n", path)
	}

	if all {
		os.Exit(0)
	}

	os.Exit(1)
}

var (
	commandRe = regexp.MustCompile(`(?m)^\$ (.*?)$`)
	exitRe    = regexp.MustCompile(`(?m)^exit: (\d+)$`)
	expectRe  = regexp.MustCompile(`(?m)^// (.*?)$`)
)

type testCase struct {
	command []string
	exit    int
	expect  string
}

// parseCase reads a test case file. The "$ " line is the command to run,
// "exit: " gives its exit code and every "// " line is one line of
// expected combined output.
func parseCase(content string) (testCase, error) {
	var tc testCase

	// Normalize newlines
	content = strings.Replace(content, "\r\n", "\n", -1)

	m := commandRe.FindStringSubmatch(content)
	if m == nil {
		return tc, errors.New("no command line")
	}
	tc.command = strings.Fields(m[1])

	m = exitRe.FindStringSubmatch(content)
	if m == nil {
		return tc, errors.New("no exit line")
	}
	tc.exit, _ = strconv.Atoi(m[1])

	var expect string
	for _, str := range expectRe.FindAllStringSubmatch(content, -1) {
		expect += str[1] + "\n"
	}
	tc.expect = strings.TrimSpace(expect)

	return tc, nil
}

func runAndCheck(bindir, path string) error {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	tc, err := parseCase(string(content))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	bin := filepath.Join(bindir, tc.command[0])
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.Command(bin, tc.command[1:]...)
	cmd.Env = append(os.Environ(), "FIB_VARIANT=", "FIB_LOG_LEVEL=")

	stdout, err := cmd.CombinedOutput()
	exit := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("runtime failure: %w\n%s", err, stdout)
		}
		exit = exitErr.ExitCode()
	}

	output := strings.TrimSpace(string(stdout))
	if exit != tc.exit {
		return fmt.Errorf("exit status %d, expected %d\n%s", exit, tc.exit, output)
	}
	if tc.expect == output {
		return nil
	}

	return fmt.Errorf("Expected:\n---\n'%s'\n---\nResult:\n---\n'%s'\n---", tc.expect, output)
}
