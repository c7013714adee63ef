package internal

import (
	"os"
	"strings"
)

// SourceCode holds one input split into lines for diagnostic rendering.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads a file into a SourceCode.
func ReadSourceCode(path string) (*SourceCode, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SourceFromString(string(content)), nil
}

// SourceFromString splits raw input into a SourceCode.
func SourceFromString(src string) *SourceCode {
	return &SourceCode{Lines: strings.Split(src, "\n")}
}
