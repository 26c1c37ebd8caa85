package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Upload validation constants.
const (
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeZip         = "application/zip"
	MimeOctetStream = "application/octet-stream"

	MaxResumeSize = 10 << 20 // 10 MiB
	MaxAvatarSize = 5 << 20
)

var (
	AllowedResumeExtensions = []string{".pdf", ".doc", ".docx"}
	AllowedImageExtensions  = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

	// docx files sniff as zip containers, legacy doc as octet-stream
	AllowedResumeMimeTypes = []string{MimePDF, MimeZip, MimeOctetStream}
	AllowedImageMimeTypes  = []string{MimeImage}
)
