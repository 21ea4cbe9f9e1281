package credstore

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"fabforge/playfab"
)

// File stores each key as a JSON document in Dir, readable only by the owner.
type File struct {
	Dir string
}

func NewFile(dir string) *File {
	return &File{Dir: dir}
}

func (f *File) path(key string) string {
	return filepath.Join(f.Dir, url.PathEscape(key)+".json")
}

func (f *File) Load(_ context.Context, key string) (playfab.AuthenticationContext, error) {
	var ac playfab.AuthenticationContext
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return ac, ErrNotFound
	}
	if err != nil {
		return ac, errors.WithMessagef(err, "read credentials %q", key)
	}
	if err := sonic.ConfigStd.Unmarshal(data, &ac); err != nil {
		return ac, errors.WithMessagef(err, "decode credentials %q", key)
	}
	return ac, nil
}

func (f *File) Save(_ context.Context, key string, ac playfab.AuthenticationContext) error {
	if err := os.MkdirAll(f.Dir, 0o700); err != nil {
		return errors.WithMessage(err, "create credential directory")
	}
	data, err := sonic.ConfigStd.MarshalIndent(ac, "", "  ")
	if err != nil {
		return errors.WithMessagef(err, "encode credentials %q", key)
	}

	// Replace atomically: temp file, then rename.
	tmp, err := os.CreateTemp(f.Dir, ".cred-*")
	if err != nil {
		return errors.WithMessage(err, "create temp file")
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return errors.WithMessage(err, "chmod temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WithMessage(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.WithMessage(err, "close temp file")
	}
	return errors.WithMessagef(os.Rename(tmp.Name(), f.path(key)), "store credentials %q", key)
}

func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errors.WithMessagef(err, "delete credentials %q", key)
}
