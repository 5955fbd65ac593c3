package meeting

// UploadRequest is the multipart form for POST /v1/meetings/upload. The
// transcript file arrives as the "file" form part.
type UploadRequest struct {
	Title string `form:"title" validate:"required,max=255"`
}
