package cloudinary

// UploadResult результат успешной загрузки файла
type UploadResult struct {
	// URL долговременная ссылка на файл
	URL string
	// PublicID идентификатор для последующего удаления
	PublicID string
}

// uploadResponse ответ Cloudinary на загрузку
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// destroyResponse ответ Cloudinary на удаление
type destroyResponse struct {
	Result string `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}
