package input

import (
	"io"
	"os"

	"github.com/matzehuels/dbgview/pkg/errors"
)

// Candidates are the files tried, in order, when no input path is given.
var Candidates = []string{
	"testdata/sample_small.in",
	"pkg/input/testdata/sample_small.in",
	"../pkg/input/testdata/sample_small.in",
	"../../pkg/input/testdata/sample_small.in",
}

// Open resolves the input: the explicit path when one is given, otherwise
// the first existing candidate file, otherwise standard input. It returns
// the reader and a name describing it. The caller closes the reader.
func Open(path string) (io.ReadCloser, string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open input %s", path)
			}
			return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "open input %s", path)
		}
		return f, path, nil
	}
	for _, c := range Candidates {
		if f, err := os.Open(c); err == nil {
			return f, c, nil
		}
	}
	return io.NopCloser(os.Stdin), "<stdin>", nil
}
