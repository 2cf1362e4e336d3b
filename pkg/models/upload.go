package models

// UploadedFile файл, загруженный в хранилище Vaiz
type UploadedFile struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Name          string `json:"name"`
	Ext           string `json:"ext"`
	Type          string `json:"type"`
	Size          int64  `json:"size"`
	Dimension     []int  `json:"dimension,omitempty"`
	Mime          string `json:"mime,omitempty"`
	DominantColor any    `json:"dominantColor,omitempty"`
}

type UploadFileResponse struct {
	File UploadedFile `json:"file"`
}

// TaskFile вложение задачи
type TaskFile struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	Ext       string `json:"ext"`
	ID        string `json:"id"`
	Type      string `json:"type"`
	Dimension []int  `json:"dimension,omitempty"`
	Size      int64  `json:"size,omitempty"`
}

// TaskFileFromUpload конвертирует загруженный файл во вложение задачи.
func TaskFileFromUpload(f UploadedFile) TaskFile {
	return TaskFile{
		URL:       f.URL,
		Name:      f.Name,
		Ext:       f.Ext,
		ID:        f.ID,
		Type:      f.Type,
		Dimension: f.Dimension,
		Size:      f.Size,
	}
}
