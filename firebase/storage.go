package firebase

import "mime/multipart"

// StorageClient abstracts Firebase Storage operations for dependency injection and testing.
type StorageClient interface {
	UploadImage(file multipart.File, filename, contentType, folder string) (string, error)
	UploadFromURL(imageURL, folder string) (string, error)
}

// FirebaseStorageClient is the real implementation that delegates to package-level functions.
type FirebaseStorageClient struct{}

func NewStorageClient() StorageClient {
	return &FirebaseStorageClient{}
}

func (f *FirebaseStorageClient) UploadImage(file multipart.File, filename, contentType, folder string) (string, error) {
	return UploadImage(file, filename, contentType, folder)
}

func (f *FirebaseStorageClient) UploadFromURL(imageURL, folder string) (string, error) {
	return UploadFromURL(imageURL, folder)
}
