package models

// Upload — изображение, загруженное из админки для услуги или категории.
// URL подставляется в поле image формы.
type Upload struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
