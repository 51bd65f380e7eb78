package handlers

import "mime/multipart"

type mockStorage struct {
	UploadImageFn   func(file multipart.File, filename, contentType, folder string) (string, error)
	UploadFromURLFn func(imageURL, folder string) (string, error)
	UploadCallCount int
	UploadedFolders []string
	UploadedURLs    []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		UploadedFolders: []string{},
		UploadedURLs:    []string{},
	}
}

func (m *mockStorage) UploadImage(file multipart.File, filename, contentType, folder string) (string, error) {
	m.UploadCallCount++
	m.UploadedFolders = append(m.UploadedFolders, folder)
	if m.UploadImageFn != nil {
		return m.UploadImageFn(file, filename, contentType, folder)
	}
	return "https://storage.googleapis.com/test-bucket/" + folder + "/" + filename, nil
}

func (m *mockStorage) UploadFromURL(imageURL, folder string) (string, error) {
	m.UploadCallCount++
	m.UploadedFolders = append(m.UploadedFolders, folder)
	m.UploadedURLs = append(m.UploadedURLs, imageURL)
	if m.UploadFromURLFn != nil {
		return m.UploadFromURLFn(imageURL, folder)
	}
	return "https://storage.googleapis.com/test-bucket/" + folder + "/rehosted_image.jpg", nil
}
