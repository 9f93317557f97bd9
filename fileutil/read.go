package fileutil

import (
	"bufio"
	"os"
)

// ReadBytes reads the whole file into memory.
func ReadBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadText reads the whole file into a string.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLines reads the file line by line, without trailing line
// terminators.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer CloseQuietly(f)

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
