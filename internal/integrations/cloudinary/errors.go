package cloudinary

import "errors"

var (
	// ErrUploadFailed возвращается, когда хранилище отклонило загрузку
	ErrUploadFailed = errors.New("cloudinary client: upload failed")

	// ErrDeleteFailed возвращается, когда хранилище отклонило удаление
	ErrDeleteFailed = errors.New("cloudinary client: delete failed")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("cloudinary client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cloudinary client: internal error")
)
