package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/dbgview/pkg/errors"
	"github.com/matzehuels/dbgview/pkg/observability"
	"github.com/matzehuels/dbgview/pkg/render"
)

// formatVersion is written to every exported session.
const formatVersion = 1

type sessionJSON struct {
	Version   int            `json:"version"`
	ID        string         `json:"id"`
	StartedAt time.Time      `json:"started_at"`
	Frames    []render.Frame `json:"frames"`
}

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s *Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sessionJSON{
		Version:   formatVersion,
		ID:        s.ID,
		StartedAt: s.StartedAt,
		Frames:    s.Frames(),
	})
}

// ReadJSON reads a session written by [WriteJSON]. Labels are validated
// because they are printed to terminals verbatim.
func ReadJSON(r io.Reader) (*Session, error) {
	var in sessionJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode session")
	}
	if in.Version != formatVersion {
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported session format version %d", in.Version)
	}
	if in.ID == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "session has no id")
	}
	for i, f := range in.Frames {
		for j, b := range f.Blocks {
			if err := errors.ValidateLabel(b.Label); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "frame %d block %d", i, j)
			}
			if b.Body == nil {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "frame %d block %d has no body", i, j)
			}
		}
	}
	return &Session{ID: in.ID, StartedAt: in.StartedAt, frames: in.Frames}, nil
}

// ExportJSON writes s to path.
func ExportJSON(path string, s *Session) (err error) {
	defer func() {
		observability.Session().OnSessionExported(context.Background(), s.ID, path, err)
	}()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	if err := WriteJSON(f, s); err != nil {
		f.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	return f.Close()
}

// ImportJSON reads a session from path.
func ImportJSON(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open session %s", path)
		}
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}
