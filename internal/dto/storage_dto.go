package dto

// CleanupPreview is the dry-run report of the reconciliation job.
type CleanupPreview struct {
	TotalFiles        int      `json:"totalFiles"`
	UsedFiles         int      `json:"usedFiles"`
	OrphanedFiles     int      `json:"orphanedFiles"`
	OrphanedFileNames []string `json:"orphanedFileNames"`
}

// CleanupResult reports what a reconciliation run actually deleted.
type CleanupResult struct {
	Message      string   `json:"message"`
	TotalDeleted int      `json:"totalDeleted"`
	DeletedFiles []string `json:"deletedFiles"`
	Errors       []string `json:"errors"`
}

type StorageStatus struct {
	Bucket    string `json:"bucket"`
	Reachable bool   `json:"reachable"`
	FileCount int    `json:"fileCount"`
	Error     string `json:"error,omitempty"`
}

type UploadResponse struct {
	URLs []string `json:"urls"`
}
