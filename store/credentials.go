package store

import (
	"fmt"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/encoding"
	"github.com/philippgille/gokv/file"
)

type credentialRecord struct {
	Token string `json:"token"`
}

// FileCredentials keeps bearer tokens in a gokv file store, one JSON
// file per session key, so a dashboard session survives a restart.
type FileCredentials struct {
	kv gokv.Store
}

func OpenFileCredentials(dir string) (*FileCredentials, error) {
	ext := "json"
	kv, err := file.NewStore(file.Options{
		Directory:         dir,
		FilenameExtension: &ext,
		Codec:             encoding.JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	return &FileCredentials{kv: kv}, nil
}

func (f *FileCredentials) Put(key, token string) error {
	return f.kv.Set(key, credentialRecord{Token: token})
}

func (f *FileCredentials) Get(key string) (string, bool, error) {
	var rec credentialRecord
	found, err := f.kv.Get(key, &rec)
	if err != nil || !found {
		return "", false, err
	}
	return rec.Token, true, nil
}

func (f *FileCredentials) Delete(key string) error {
	return f.kv.Delete(key)
}

func (f *FileCredentials) Close() error {
	return f.kv.Close()
}
