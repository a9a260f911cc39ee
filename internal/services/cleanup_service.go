package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"github.com/dapurkita/backoffice/internal/storage"
	"gorm.io/gorm"
)

// CleanupService reconciles the blob store's image folder against the
// filenames referenced by makanan rows and deletes the difference. It is
// also the best-effort per-row deleter fired when catalog rows go away;
// anything that slips through there is picked up by the next full run.
type CleanupService struct {
	db     *gorm.DB
	store  storage.ObjectStore
	prefix string
}

func NewCleanupService(db *gorm.DB, store storage.ObjectStore, prefix string) *CleanupService {
	return &CleanupService{db: db, store: store, prefix: prefix}
}

// Preview reports what a cleanup run would delete, without deleting.
func (s *CleanupService) Preview(ctx context.Context) (*dto.CleanupPreview, error) {
	keys, err := s.store.List(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage objects: %w", err)
	}

	used, err := s.referencedFilenames()
	if err != nil {
		return nil, err
	}

	orphans := s.orphanedNames(keys, used)
	return &dto.CleanupPreview{
		TotalFiles:        len(keys),
		UsedFiles:         len(used),
		OrphanedFiles:     len(orphans),
		OrphanedFileNames: orphans,
	}, nil
}

// Cleanup deletes every orphaned file in one batched removal. Individual
// delete failures are collected, not fatal; a listing or database failure
// aborts the whole run.
func (s *CleanupService) Cleanup(ctx context.Context) (*dto.CleanupResult, error) {
	keys, err := s.store.List(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage objects: %w", err)
	}

	used, err := s.referencedFilenames()
	if err != nil {
		return nil, err
	}

	var orphanKeys []string
	for _, key := range keys {
		name := keyName(key)
		if name == "" {
			continue
		}
		if !used[name] {
			orphanKeys = append(orphanKeys, key)
		}
	}

	result := &dto.CleanupResult{
		Message:      "Storage cleanup completed",
		DeletedFiles: []string{},
		Errors:       []string{},
	}
	if len(orphanKeys) == 0 {
		return result, nil
	}

	deleted, errs := s.store.Remove(ctx, orphanKeys)
	for _, key := range deleted {
		result.DeletedFiles = append(result.DeletedFiles, keyName(key))
	}
	for _, e := range errs {
		result.Errors = append(result.Errors, e.Error())
	}
	result.TotalDeleted = len(result.DeletedFiles)

	slog.Info("storage cleanup completed",
		"deleted", result.TotalDeleted, "errors", len(result.Errors))
	return result, nil
}

// RemoveImageURLs deletes the files behind the given foto URLs,
// best-effort: every file is attempted, failures are logged and swallowed
// so the caller's database delete is never blocked.
func (s *CleanupService) RemoveImageURLs(ctx context.Context, urls []string) {
	var keys []string
	for _, u := range urls {
		name, ok := storage.ExtractFilename(u)
		if !ok {
			slog.Warn("skipping foto URL with no extractable filename", "url", u)
			continue
		}
		keys = append(keys, s.prefix+"/"+name)
	}
	if len(keys) == 0 {
		return
	}

	_, errs := s.store.Remove(ctx, keys)
	for _, e := range errs {
		slog.Error("best-effort image delete failed", "error", e)
	}
}

// Status reports bucket reachability and object count.
func (s *CleanupService) Status(ctx context.Context, bucket string) *dto.StorageStatus {
	status := &dto.StorageStatus{Bucket: bucket}
	keys, err := s.store.List(ctx, s.prefix)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Reachable = true
	status.FileCount = len(keys)
	return status
}

// referencedFilenames collects every filename referenced by any makanan
// foto list, keyed for set-difference against the listing.
func (s *CleanupService) referencedFilenames() (map[string]bool, error) {
	var rows []models.Makanan
	if err := s.db.Select("foto").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load makanan rows: %w", err)
	}

	used := make(map[string]bool)
	for _, row := range rows {
		for _, u := range row.FotoURLs() {
			name, ok := storage.ExtractFilename(u)
			if !ok {
				slog.Warn("skipping foto URL with no extractable filename", "url", u)
				continue
			}
			used[name] = true
		}
	}
	return used, nil
}

func (s *CleanupService) orphanedNames(keys []string, used map[string]bool) []string {
	orphans := []string{}
	for _, key := range keys {
		name := keyName(key)
		if name == "" {
			continue
		}
		if !used[name] {
			orphans = append(orphans, name)
		}
	}
	return orphans
}

// keyName returns the trailing segment of a listed object key. Every
// listed object is a cleanup candidate, extension or not; the dot
// requirement in ExtractFilename applies only to foto URLs.
func keyName(key string) string {
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		return key[i+1:]
	}
	return key
}
