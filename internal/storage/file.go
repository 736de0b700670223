package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const (
	linksFileName = "shared_links.json"
	indexFileName = "user_links.json"
)

// linksFile and indexFile are the two persisted namespaces.
type linksFile struct {
	SchemaVersion int                 `json:"schema_version"`
	Links         map[string]linkJSON `json:"links"`
}

type indexFile struct {
	SchemaVersion int                         `json:"schema_version"`
	Users         map[string][]indexEntryJSON `json:"users"`
}

// FileStorage persists links as two JSON files in a directory. State is
// held in memory and every mutation rewrites the affected file with an
// atomic temp-file + rename, so a crash leaves either the old or the
// new payload, never a torn one.
type FileStorage struct {
	dataDir string
	logger  *zap.Logger

	mu    sync.RWMutex
	links map[string]LinkRecord
	index map[string][]IndexEntry
}

func NewFileStorage(dataDir string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dataDir, 0770); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	fs := &FileStorage{
		dataDir: dataDir,
		logger:  logger,
		links:   make(map[string]LinkRecord),
		index:   make(map[string][]IndexEntry),
	}

	if err := fs.loadLinks(); err != nil {
		return nil, err
	}
	if err := fs.loadIndex(); err != nil {
		return nil, err
	}

	return fs, nil
}

func (fs *FileStorage) loadLinks() error {
	data, err := os.ReadFile(filepath.Join(fs.dataDir, linksFileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", linksFileName, err)
	}

	var file linksFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupted, linksFileName, err)
	}
	if file.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: %s: unsupported schema version %d", ErrCorrupted, linksFileName, file.SchemaVersion)
	}

	for id, j := range file.Links {
		record, err := decodeLink(j)
		if err != nil {
			return err
		}
		fs.links[id] = record
	}
	return nil
}

func (fs *FileStorage) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(fs.dataDir, indexFileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", indexFileName, err)
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupted, indexFileName, err)
	}
	if file.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: %s: unsupported schema version %d", ErrCorrupted, indexFileName, file.SchemaVersion)
	}

	for ownerID, entries := range file.Users {
		decoded := make([]IndexEntry, 0, len(entries))
		for _, j := range entries {
			e, err := decodeIndexEntry(j)
			if err != nil {
				return err
			}
			decoded = append(decoded, e)
		}
		fs.index[ownerID] = decoded
	}
	return nil
}

// saveFile writes data to a temp file and renames it over the target.
func (fs *FileStorage) saveFile(name string, data interface{}) error {
	path := filepath.Join(fs.dataDir, name)
	tempPath := path + ".tmp"

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0660)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// saveLinks must be called with fs.mu held.
func (fs *FileStorage) saveLinks() error {
	file := linksFile{SchemaVersion: SchemaVersion, Links: make(map[string]linkJSON, len(fs.links))}
	for id, r := range fs.links {
		file.Links[id] = encodeLink(r)
	}
	return fs.saveFile(linksFileName, file)
}

// saveIndex must be called with fs.mu held.
func (fs *FileStorage) saveIndex() error {
	file := indexFile{SchemaVersion: SchemaVersion, Users: make(map[string][]indexEntryJSON, len(fs.index))}
	for ownerID, entries := range fs.index {
		encoded := make([]indexEntryJSON, 0, len(entries))
		for _, e := range entries {
			encoded = append(encoded, encodeIndexEntry(e))
		}
		file.Users[ownerID] = encoded
	}
	return fs.saveFile(indexFileName, file)
}

func (fs *FileStorage) Get(_ context.Context, id string) (*LinkRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	r, exists := fs.links[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (fs *FileStorage) Put(_ context.Context, record LinkRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prev, existed := fs.links[record.ID]
	fs.links[record.ID] = record
	if err := fs.saveLinks(); err != nil {
		// Roll back the in-memory state so it matches the file.
		if existed {
			fs.links[record.ID] = prev
		} else {
			delete(fs.links, record.ID)
		}
		return err
	}
	return nil
}

func (fs *FileStorage) Delete(_ context.Context, id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prev, existed := fs.links[id]
	if !existed {
		return ErrNotFound
	}
	delete(fs.links, id)
	if err := fs.saveLinks(); err != nil {
		fs.links[id] = prev
		return err
	}
	return nil
}

func (fs *FileStorage) List(_ context.Context) ([]LinkRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	records := make([]LinkRecord, 0, len(fs.links))
	for _, r := range fs.links {
		records = append(records, r)
	}
	return records, nil
}

func (fs *FileStorage) ReplaceAll(_ context.Context, records []LinkRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prev := fs.links
	fs.links = make(map[string]LinkRecord, len(records))
	for _, r := range records {
		fs.links[r.ID] = r
	}
	if err := fs.saveLinks(); err != nil {
		fs.links = prev
		return err
	}
	return nil
}

func (fs *FileStorage) UserIndex(_ context.Context, ownerID string) ([]IndexEntry, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	entries := fs.index[ownerID]
	out := make([]IndexEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (fs *FileStorage) AppendUserIndex(_ context.Context, ownerID string, entry IndexEntry) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.index[ownerID] = append(fs.index[ownerID], entry)
	if err := fs.saveIndex(); err != nil {
		fs.index[ownerID] = fs.index[ownerID][:len(fs.index[ownerID])-1]
		return err
	}
	return nil
}

func (fs *FileStorage) RemoveUserIndex(_ context.Context, ownerID string, linkID string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, exists := fs.index[ownerID]
	if !exists {
		return nil
	}

	kept := make([]IndexEntry, 0, len(entries))
	for _, e := range entries {
		if e.LinkID != linkID {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(fs.index, ownerID)
	} else {
		fs.index[ownerID] = kept
	}

	if err := fs.saveIndex(); err != nil {
		fs.index[ownerID] = entries
		return err
	}
	return nil
}

func (fs *FileStorage) PruneUserIndex(_ context.Context, keep map[string]struct{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prev := fs.index
	pruned := make(map[string][]IndexEntry, len(fs.index))
	for ownerID, entries := range fs.index {
		kept := make([]IndexEntry, 0, len(entries))
		for _, e := range entries {
			if _, ok := keep[e.LinkID]; ok {
				kept = append(kept, e)
			}
		}
		if len(kept) > 0 {
			pruned[ownerID] = kept
		}
	}
	fs.index = pruned

	if err := fs.saveIndex(); err != nil {
		fs.index = prev
		return err
	}
	return nil
}

func (fs *FileStorage) PingContext(_ context.Context) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, err := os.Stat(fs.dataDir)
	return err
}
