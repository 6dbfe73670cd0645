package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/client"
	"coboard-api/internal/domain"
	"coboard-api/internal/dto"
	"coboard-api/internal/metrics"
	"coboard-api/internal/repository"
	"coboard-api/internal/response"
	"coboard-api/internal/util"
)

// FileService defines the interface for file upload and download logic
type FileService interface {
	Upload(ctx context.Context, filename string, content io.Reader, sOwner, aOwner *string, postID *uint) (*dto.UploadFileResponse, error)
	Download(ctx context.Context, fileID uint) (*DownloadResult, error)
}

// DownloadResult carries a stored file's content stream and the metadata
// needed to serve it. The caller must close Content.
type DownloadResult struct {
	Content  io.ReadCloser
	Size     int64
	MimeType string
	Filename string
}

// fileServiceImpl is the implementation of FileService
type fileServiceImpl struct {
	fileRepo repository.FileRepository
	storage  client.ObjectStorage
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewFileService creates a new instance of FileService
func NewFileService(
	fileRepo repository.FileRepository,
	storage client.ObjectStorage,
	m *metrics.Metrics,
	logger *zap.Logger,
) FileService {
	return &fileServiceImpl{
		fileRepo: fileRepo,
		storage:  storage,
		metrics:  m,
		logger:   logger,
	}
}

// Upload stores a file and its metadata. The object is stored under a temp
// name first because the final name embeds the database ID:
// {file_id}_{owner}_{filename}. The metadata row is created in between and
// its path updated once the object has its final name.
func (s *fileServiceImpl) Upload(ctx context.Context, filename string, content io.Reader, sOwner, aOwner *string, postID *uint) (*dto.UploadFileResponse, error) {
	if filename == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Filename is required", "")
	}

	extension := strings.TrimPrefix(filepath.Ext(filename), ".")

	start := time.Now()
	tempPath, err := s.storage.SaveTemp(ctx, filename, content)
	s.metrics.RecordStorageOperation("save_temp", time.Since(start), err)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store file", err.Error())
	}

	file := &domain.File{
		Filename:  filename,
		Path:      "",
		Extension: extension,
		SOwner:    sOwner,
		AOwner:    aOwner,
		PostID:    postID,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create file record", err.Error())
	}

	owner := file.OwnerKey()
	uniqueName := fmt.Sprintf("%d_%s_%s", file.FileID, owner, filename)

	start = time.Now()
	finalPath, err := s.storage.Promote(ctx, tempPath, uniqueName)
	s.metrics.RecordStorageOperation("promote", time.Since(start), err)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to finalize file", err.Error())
	}

	if err := s.fileRepo.UpdatePath(ctx, file.FileID, finalPath); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update file path", err.Error())
	}

	s.logger.Info("File uploaded",
		zap.Uint("file_id", file.FileID),
		zap.String("filename", filename),
		zap.String("owner", owner),
	)

	return &dto.UploadFileResponse{
		Filename: uniqueName,
		FilePath: finalPath,
	}, nil
}

// Download opens a stored file for streaming, resolving its MIME type from
// the recorded extension
func (s *fileServiceImpl) Download(ctx context.Context, fileID uint) (*DownloadResult, error) {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "File not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch file", err.Error())
	}

	start := time.Now()
	content, size, err := s.storage.Open(ctx, file.Path)
	s.metrics.RecordStorageOperation("open", time.Since(start), err)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeNotFound, "File not found in storage", err.Error())
	}

	return &DownloadResult{
		Content:  content,
		Size:     size,
		MimeType: util.MimeTypeForExtension(file.Extension),
		Filename: file.Filename,
	}, nil
}
