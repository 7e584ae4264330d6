package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/pattern"
)

const (
	// ProjectVersion is the only project file version understood.
	ProjectVersion = 1
	// AppVersion is recorded in every project file written.
	AppVersion = "0.1.0"
	// RecoveryFileName is the name of the recovery file inside the recovery
	// directory.
	RecoveryFileName = "recovery.tcad"
)

// ProjectFile is the on-disk form of a project.
type ProjectFile struct {
	Version    uint32          `json:"version"`
	AppVersion string          `json:"app_version"`
	Pieces     []pattern.Piece `json:"pieces"`
}

// NewProjectFile wraps pieces in a project file of the current version.
func NewProjectFile(pieces []pattern.Piece) ProjectFile {
	if pieces == nil {
		pieces = []pattern.Piece{}
	}
	return ProjectFile{
		Version:    ProjectVersion,
		AppVersion: AppVersion,
		Pieces:     pieces,
	}
}

// WriteProject writes pieces to w as an indented project file.
func WriteProject(w io.Writer, pieces []pattern.Piece) error {
	data, err := json.MarshalIndent(NewProjectFile(pieces), "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding project: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeProject reads a project file from r. Files of any version other than
// [ProjectVersion] are rejected with [tcad.ErrUnsupportedVersion].
func DecodeProject(r io.Reader) (ProjectFile, error) {
	pf, err := decodeProjectFile(r)
	if err != nil {
		return ProjectFile{}, err
	}
	if pf.Version != ProjectVersion {
		return ProjectFile{}, fmt.Errorf("store: project version %d: %w", pf.Version, tcad.ErrUnsupportedVersion)
	}
	return pf, nil
}

// decodeProjectFile parses a project file of any version.
func decodeProjectFile(r io.Reader) (ProjectFile, error) {
	var pf ProjectFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return ProjectFile{}, fmt.Errorf("store: parsing project: %w", err)
	}
	if pf.Pieces == nil {
		pf.Pieces = []pattern.Piece{}
	}
	return pf, nil
}

// ReadProject reads the project file at path.
func ReadProject(path string) (ProjectFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProjectFile{}, fmt.Errorf("store: %w", err)
	}
	defer f.Close()
	return DecodeProject(f)
}

func writeProjectFile(path string, pieces []pattern.Piece) error {
	var buf bytes.Buffer
	if err := WriteProject(&buf, pieces); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// SaveProject writes all pieces to a project file at path.
func (s *Store) SaveProject(path string) error {
	pieces := s.All()
	if err := writeProjectFile(path, pieces); err != nil {
		return err
	}
	tcad.Logger().Info("store: project saved", "path", path, "pieces", len(pieces))
	return nil
}

// LoadProject replaces all pieces with those of the project file at path and
// clears the undo history. It returns copies of the loaded pieces. On error
// the store is left unchanged.
func (s *Store) LoadProject(path string) ([]pattern.Piece, error) {
	pf, err := ReadProject(path)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.reset(pf.Pieces)
	s.mu.Unlock()
	tcad.Logger().Info("store: project loaded", "path", path, "pieces", len(pf.Pieces))
	return pf.Pieces, nil
}

// NewProject removes all pieces and clears the undo history.
func (s *Store) NewProject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(nil)
}

// SaveRecovery writes all pieces to the recovery file in dir, creating dir if
// needed. It does nothing while the store is empty.
func (s *Store) SaveRecovery(dir string) error {
	pieces := s.All()
	if len(pieces) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return writeProjectFile(filepath.Join(dir, RecoveryFileName), pieces)
}

// CheckRecovery returns the pieces in the recovery file in dir, or nil if
// there is nothing to recover. The file's version isn't checked. A recovery
// file that can't be parsed or holds no pieces is deleted.
func CheckRecovery(dir string) ([]pattern.Piece, error) {
	path := filepath.Join(dir, RecoveryFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	pf, err := decodeProjectFile(bytes.NewReader(data))
	if err != nil || len(pf.Pieces) == 0 {
		tcad.Logger().Warn("store: discarding recovery file", "path", path, "err", err)
		os.Remove(path)
		return nil, nil
	}
	return pf.Pieces, nil
}

// ClearRecovery deletes the recovery file in dir, if there is one.
func ClearRecovery(dir string) error {
	err := os.Remove(filepath.Join(dir, RecoveryFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// RestoreRecovery replaces all pieces with those of the recovery file in dir,
// clears the undo history and deletes the recovery file. It returns an error
// wrapping [tcad.ErrNotFound] if there is nothing to recover.
func (s *Store) RestoreRecovery(dir string) ([]pattern.Piece, error) {
	pieces, err := CheckRecovery(dir)
	if err != nil {
		return nil, err
	}
	if pieces == nil {
		return nil, fmt.Errorf("store: no recovery data: %w", tcad.ErrNotFound)
	}
	s.mu.Lock()
	s.reset(pieces)
	s.mu.Unlock()
	if err := ClearRecovery(dir); err != nil {
		return nil, err
	}
	return pattern.ClonePieces(pieces), nil
}
