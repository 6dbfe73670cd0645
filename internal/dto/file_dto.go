package dto

import "coboard-api/internal/domain"

// FileResponse represents stored file metadata
type FileResponse struct {
	FileID    uint    `json:"file_id"`
	Filename  string  `json:"filename"`
	Path      string  `json:"path"`
	Extension string  `json:"extension"`
	SOwner    *string `json:"s_owner"`
	AOwner    *string `json:"a_owner"`
	PostID    *uint   `json:"post_id"`
}

// NewFileResponse converts a file record to its wire form
func NewFileResponse(f *domain.File) FileResponse {
	return FileResponse{
		FileID:    f.FileID,
		Filename:  f.Filename,
		Path:      f.Path,
		Extension: f.Extension,
		SOwner:    f.SOwner,
		AOwner:    f.AOwner,
		PostID:    f.PostID,
	}
}

// NewFileResponses converts a slice of file records
func NewFileResponses(files []domain.File) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for i := range files {
		out = append(out, NewFileResponse(&files[i]))
	}
	return out
}

// UploadFileResponse represents the result of an upload: the stored object
// name and its path
type UploadFileResponse struct {
	Filename string `json:"filename"`
	FilePath string `json:"file_path"`
}

// SendMailRequest represents the request to mail a user their password
type SendMailRequest struct {
	ReceiverEmail string `json:"receiver_email" binding:"required,email"`
	PW            string `json:"pw" binding:"required"`
}
